package resource

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"filehost/internal/domain/application"
	"filehost/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) UploadSingle(c *gin.Context) {
	appName := c.Query("applicationName")
	if appName == "" {
		response.Error(c, http.StatusBadRequest, "missing_required_fields", "Please provide all required fields")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		fileHeader = nil // no payload; the service reports which check failed first
	}

	res, err := h.service.Upload(c.Request.Context(), appName, fileHeader)
	switch {
	case errors.Is(err, application.ErrNotFound):
		response.Error(c, http.StatusBadRequest, "application_not_found",
			fmt.Sprintf("Application with name %s not found", appName))
	case errors.Is(err, ErrFileNotFound):
		response.Error(c, http.StatusBadRequest, "file_not_found", "Please provide a file")
	case err != nil:
		response.Internal(c, err)
	default:
		response.Success(c, http.StatusCreated, "File uploaded successfully", res)
	}
}

func (h *Handler) GetByUUID(c *gin.Context) {
	id := c.Param("uuid")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "missing_required_fields", "Please provide all required fields")
		return
	}

	res, err := h.service.GetByUUID(c.Request.Context(), id)
	switch {
	case errors.Is(err, ErrFileNotFound):
		response.Error(c, http.StatusNotFound, "file_not_found",
			fmt.Sprintf("File with uuid %s not found", id))
	case err != nil:
		response.Internal(c, err)
	default:
		response.Success(c, http.StatusOK, "File details retrieved successfully", res)
	}
}

func (h *Handler) DeleteByUUID(c *gin.Context) {
	id := c.Param("uuid")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "missing_required_fields", "Please provide all required fields")
		return
	}

	err := h.service.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, ErrFileNotFound):
		response.Error(c, http.StatusNotFound, "file_not_found",
			fmt.Sprintf("File with uuid %s not found", id))
	case err != nil:
		response.Internal(c, err)
	default:
		response.Success(c, http.StatusOK, "File deleted successfully", nil)
	}
}
