package controller

import (
	"github.com/iwootapp/iwoot/internal/service"
	pkgdto "github.com/iwootapp/iwoot/pkg/dto"
	"github.com/iwootapp/iwoot/pkg/errs"
	"github.com/iwootapp/iwoot/pkg/utils"
	"github.com/labstack/echo/v4"
)

type LookupController struct {
	service service.LookupService
}

func CreateLookupController(e *echo.Group, service service.LookupService, isLoggedIn echo.MiddlewareFunc) {
	c := LookupController{
		service: service,
	}
	e.GET("/products/lookup", c.Lookup, isLoggedIn)
}

// Lookup is best-effort enrichment for the product form: ?q= runs a
// barcode/name lookup against the external product database, ?url= guesses a
// name from a store URL without any network call. A miss is a success
// response with null data.
func (c *LookupController) Lookup(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	if rawURL := e.QueryParam("url"); rawURL != "" {
		result, err := c.service.LookupByURL(rawURL)
		if err != nil {
			return pkgdto.WriteErrorResponse(e, err, nil)
		}

		return pkgdto.WriteSuccessResponse(e, "", result)
	}

	result, err := c.service.Lookup(e.Request().Context(), e.QueryParam("q"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", result)
}
