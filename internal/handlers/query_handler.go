package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"sqlpractice/internal/models"
	"sqlpractice/internal/responses"
	"sqlpractice/internal/services"
)

type QueryHandler struct {
	queryService *services.QueryService
}

func NewQueryHandler(queryService *services.QueryService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

// ExecuteQuery handles POST /api/v1/query/execute
func (h *QueryHandler) ExecuteQuery(c *gin.Context) {
	var req services.ExecuteQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: query is required")
		return
	}

	result, err := h.queryService.ExecuteQuery(c.Request.Context(), &req)
	if err != nil {
		var qerr *services.QueryError
		switch {
		case isValidationError(err):
			responses.Fail(c, http.StatusBadRequest, err, userMessage(err))
		case errors.As(err, &qerr):
			responses.JSON(c, http.StatusUnprocessableEntity, responses.StatusError, result, "Failed to execute query", err)
		default:
			responses.Fail(c, http.StatusInternalServerError, err, "Failed to execute query")
		}
		return
	}

	responses.Success(c, http.StatusOK, result, rowsMessage(result))
}

func rowsMessage(result *models.QueryResult) string {
	if result.Truncated {
		return fmt.Sprintf(msgTruncatedRowsFmt, result.RowCount)
	}
	return fmt.Sprintf(msgReturnedRowsFmt, result.RowCount)
}
