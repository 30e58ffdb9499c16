package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"filehost/internal/pkg/response"
)

type RegisterRequest struct {
	DeveloperEmail  string `json:"developerEmail"`
	ApplicationName string `json:"applicationName"`
	Origin          string `json:"origin"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "missing_required_fields", "Please provide all required fields")
		return
	}
	if req.DeveloperEmail == "" || req.ApplicationName == "" || req.Origin == "" {
		response.Error(c, http.StatusBadRequest, "missing_required_fields", "Please provide all required fields")
		return
	}

	err := h.service.Register(c.Request.Context(), req.DeveloperEmail, req.ApplicationName, req.Origin)

	var taken *AlreadyRegisteredError
	switch {
	case errors.As(err, &taken):
		response.Error(c, http.StatusBadRequest, "application_already_registered",
			fmt.Sprintf("Application with name %s already registered by %s", req.ApplicationName, taken.OwnerEmail))
	case err != nil:
		response.Internal(c, err)
	default:
		response.Success(c, http.StatusCreated,
			fmt.Sprintf("Application with name %s registered successfully", req.ApplicationName), nil)
	}
}
