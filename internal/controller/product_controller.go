package controller

import (
	"github.com/iwootapp/iwoot/internal/dto"
	"github.com/iwootapp/iwoot/internal/service"
	pkgdto "github.com/iwootapp/iwoot/pkg/dto"
	"github.com/iwootapp/iwoot/pkg/errs"
	"github.com/iwootapp/iwoot/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}
	e.GET("/products", c.GetProducts, isLoggedIn)
	e.POST("/products", c.AddProduct, isLoggedIn)
	e.GET("/products/:id", c.GetProduct, isLoggedIn)
	e.PUT("/products/:id", c.UpdateProduct, isLoggedIn)
	e.DELETE("/products/:id", c.DeleteProduct, isLoggedIn)
	e.POST("/products/:id/prices", c.AddPriceObservation, isLoggedIn)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	data, err := c.service.GetProducts(e.Request().Context(), ownerID, e.QueryParam("type"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "successfully retrieved products record", data)
}

func (c *ProductController) GetProduct(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	product, err := c.service.GetProduct(e.Request().Context(), ownerID, e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	if product == nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotFound, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", product)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	id, err := c.service.AddProduct(e.Request().Context(), ownerID, payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", map[string]string{"id": id})
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	payload := dto.ProductUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	err = c.service.UpdateProduct(e.Request().Context(), ownerID, e.Param("id"), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", nil)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	err := c.service.DeleteProduct(e.Request().Context(), ownerID, e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", nil)
}

func (c *ProductController) AddPriceObservation(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	payload := dto.PriceObservationRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddPriceObservation").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	err = c.service.AddPriceObservation(e.Request().Context(), ownerID, e.Param("id"), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", nil)
}
