package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sqlpractice/internal/catalog"
	"sqlpractice/internal/responses"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListExamples handles GET /api/v1/examples
func (h *CatalogHandler) ListExamples(c *gin.Context) {
	responses.Success(c, http.StatusOK, catalog.Examples(), "")
}

// ListExercises handles GET /api/v1/exercises
func (h *CatalogHandler) ListExercises(c *gin.Context) {
	responses.Success(c, http.StatusOK, catalog.Exercises(), "")
}
