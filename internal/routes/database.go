package routes

import (
	"github.com/gin-gonic/gin"

	"sqlpractice/internal/handlers"
)

type DatabaseRoutes struct {
	handler *handlers.DatabaseHandler
}

func NewDatabaseRoutes(handler *handlers.DatabaseHandler) *DatabaseRoutes {
	return &DatabaseRoutes{handler: handler}
}

func (r *DatabaseRoutes) RegisterRoutes(router *gin.RouterGroup) {
	db := router.Group("/database")
	{
		db.POST("/reset", r.handler.ResetDatabase)
	}
}
