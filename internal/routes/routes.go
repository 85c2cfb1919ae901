package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sqlpractice/internal/handlers"
)

type Handlers struct {
	Page     *handlers.PageHandler
	Query    *handlers.QueryHandler
	Schema   *handlers.SchemaHandler
	Database *handlers.DatabaseHandler
	Catalog  *handlers.CatalogHandler
}

// RegisterRoutes mounts the page routes at the root and the JSON API under
// /api/v1. apiMiddleware runs on the API group only.
func RegisterRoutes(router *gin.Engine, h Handlers, apiMiddleware ...gin.HandlerFunc) {
	pageRoutes := NewPageRoutes(h.Page)
	pageRoutes.RegisterRoutes(router)

	api := router.Group("/api/v1")
	api.Use(apiMiddleware...)

	queryRoutes := NewQueryRoutes(h.Query)
	queryRoutes.RegisterRoutes(api)

	schemaRoutes := NewSchemaRoutes(h.Schema, h.Catalog)
	schemaRoutes.RegisterRoutes(api)

	databaseRoutes := NewDatabaseRoutes(h.Database)
	databaseRoutes.RegisterRoutes(api)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
