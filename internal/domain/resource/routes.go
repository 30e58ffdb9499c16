package resource

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	resources := r.Group("/resources")
	{
		resources.POST("/upload/single", h.UploadSingle)
		resources.GET("/:uuid", h.GetByUUID)
		resources.DELETE("/:uuid", h.DeleteByUUID)
	}
}
