package controller

import (
	"bytes"
	"net/http"

	"github.com/iwootapp/iwoot/internal/service"
	pkgdto "github.com/iwootapp/iwoot/pkg/dto"
	"github.com/iwootapp/iwoot/pkg/errs"
	"github.com/iwootapp/iwoot/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UploadController struct {
	service service.UploadService
}

func CreateUploadController(e *echo.Group, service service.UploadService, isLoggedIn echo.MiddlewareFunc) {
	c := UploadController{
		service: service,
	}
	e.POST("/uploads", c.Upload, isLoggedIn)
	e.GET("/uploads/*", c.Download, isLoggedIn)
	e.DELETE("/uploads/*", c.Delete, isLoggedIn)
}

func (c *UploadController) Upload(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	fileHeader, err := e.FormFile("file")
	if err != nil {
		log.Error().Err(err).Str("component", "Upload").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	source, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("component", "Upload").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrInternalServer, nil)
	}
	defer source.Close()

	ref, err := c.service.Upload(
		e.Request().Context(),
		ownerID,
		fileHeader.Filename,
		fileHeader.Header.Get(echo.HeaderContentType),
		fileHeader.Size,
		source,
	)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", map[string]string{"ref": ref})
}

func (c *UploadController) Download(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	var buf bytes.Buffer
	contentType, err := c.service.Download(e.Request().Context(), ownerID, e.Param("*"), &buf)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return e.Blob(http.StatusOK, contentType, buf.Bytes())
}

func (c *UploadController) Delete(e echo.Context) error {
	ownerID, _ := utils.ExtractTokenUser(e)
	if ownerID == "" {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	err := c.service.Delete(e.Request().Context(), ownerID, e.Param("*"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", nil)
}
