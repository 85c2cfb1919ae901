package routes

import (
	"github.com/gin-gonic/gin"

	"sqlpractice/internal/handlers"
)

type SchemaRoutes struct {
	handler        *handlers.SchemaHandler
	catalogHandler *handlers.CatalogHandler
}

func NewSchemaRoutes(handler *handlers.SchemaHandler, catalogHandler *handlers.CatalogHandler) *SchemaRoutes {
	return &SchemaRoutes{handler: handler, catalogHandler: catalogHandler}
}

func (r *SchemaRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/schema", r.handler.GetSchema)
	router.GET("/examples", r.catalogHandler.ListExamples)
	router.GET("/exercises", r.catalogHandler.ListExercises)
}
