package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sqlpractice/internal/responses"
	"sqlpractice/internal/services"
)

type SchemaHandler struct {
	schemaService *services.SchemaService
}

func NewSchemaHandler(schemaService *services.SchemaService) *SchemaHandler {
	return &SchemaHandler{
		schemaService: schemaService,
	}
}

// GetSchema handles GET /api/v1/schema
func (h *SchemaHandler) GetSchema(c *gin.Context) {
	tables, err := h.schemaService.Summary(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to read table info")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"tables": tables,
	}, "Table info retrieved successfully")
}
