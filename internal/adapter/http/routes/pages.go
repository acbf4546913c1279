package routes

import (
	"plumbing_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPageRoutes(router *gin.Engine, h *handlers.PageHandler) {
	router.GET("/", h.ShowRequestForm)
	router.POST("/", h.SubmitRequestForm)
	router.GET("/services", h.ShowServices)
	router.GET("/contact", h.ShowContact)
	router.POST("/contact", h.SubmitContact)
}
