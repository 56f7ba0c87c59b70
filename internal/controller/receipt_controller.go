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

type ReceiptController struct {
	service service.ReceiptService
}

func CreateReceiptController(e *echo.Group, service service.ReceiptService, isLoggedIn echo.MiddlewareFunc) {
	c := ReceiptController{
		service: service,
	}
	e.GET("/receipts", c.GetReceipts, isLoggedIn)
	e.POST("/receipts", c.AddReceipt, isLoggedIn)
	e.GET("/receipts/:id", c.GetReceipt, isLoggedIn)
	e.PUT("/receipts/:id", c.UpdateReceipt, isLoggedIn)
	e.DELETE("/receipts/:id", c.DeleteReceipt, isLoggedIn)
	e.GET("/products/:id/receipts", c.GetReceiptsByProduct, isLoggedIn)
}

func (c *ReceiptController) GetReceipts(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	data, err := c.service.GetReceipts(e.Request().Context(), ownerID)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "successfully retrieved receipts record", data)
}

func (c *ReceiptController) GetReceipt(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	receipt, err := c.service.GetReceipt(e.Request().Context(), ownerID, e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	if receipt == nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotFound, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", receipt)
}

func (c *ReceiptController) GetReceiptsByProduct(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	data, err := c.service.GetReceiptsByProduct(e.Request().Context(), ownerID, e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "successfully retrieved receipts record", data)
}

func (c *ReceiptController) AddReceipt(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	payload := dto.ReceiptRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddReceipt").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	id, err := c.service.AddReceipt(e.Request().Context(), ownerID, payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", map[string]string{"id": id})
}

func (c *ReceiptController) UpdateReceipt(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	payload := dto.ReceiptUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateReceipt").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	err = c.service.UpdateReceipt(e.Request().Context(), ownerID, e.Param("id"), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", nil)
}

func (c *ReceiptController) DeleteReceipt(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	err := c.service.DeleteReceipt(e.Request().Context(), ownerID, e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", nil)
}
