package routes

import (
	"github.com/gin-gonic/gin"

	"sqlpractice/internal/handlers"
)

type PageRoutes struct {
	handler *handlers.PageHandler
}

func NewPageRoutes(handler *handlers.PageHandler) *PageRoutes {
	return &PageRoutes{handler: handler}
}

func (r *PageRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/", r.handler.Index)
	router.POST("/run", r.handler.RunQuery)
	router.POST("/reset", r.handler.ResetDatabase)
}
