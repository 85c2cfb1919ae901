package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sqlpractice/internal/responses"
	"sqlpractice/internal/services"
)

type DatabaseHandler struct {
	databaseService *services.DatabaseService
}

func NewDatabaseHandler(databaseService *services.DatabaseService) *DatabaseHandler {
	return &DatabaseHandler{databaseService: databaseService}
}

// ResetDatabase handles POST /api/v1/database/reset
func (h *DatabaseHandler) ResetDatabase(c *gin.Context) {
	if err := h.databaseService.Reset(c.Request.Context()); err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to reset the sample database")
		return
	}
	responses.Success(c, http.StatusOK, nil, msgResetDone)
}
