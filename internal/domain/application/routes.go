package application

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	apps := r.Group("/applications")
	{
		apps.POST("", h.Register)
	}
}
