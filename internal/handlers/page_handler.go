package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sqlpractice/internal/catalog"
	"sqlpractice/internal/logging"
	"sqlpractice/internal/models"
	"sqlpractice/internal/services"
)

const (
	pageTitle   = "🧠 SQL Practice App (Beginner) — SQLite"
	pageCaption = "powered by Adarsh Dessai the Software Architect"
)

type pageData struct {
	Title           string
	Caption         string
	Examples        []catalog.Example
	SelectedExample string
	SQL             string
	Exercises       []string
	Tables          []models.TableInfo
	Result          *models.QueryResult
	Success         string
	Warning         string
	Error           string
}

// PageHandler serves the browser UI.
type PageHandler struct {
	queryService    *services.QueryService
	schemaService   *services.SchemaService
	databaseService *services.DatabaseService
}

func NewPageHandler(queryService *services.QueryService, schemaService *services.SchemaService, databaseService *services.DatabaseService) *PageHandler {
	return &PageHandler{
		queryService:    queryService,
		schemaService:   schemaService,
		databaseService: databaseService,
	}
}

// Index handles GET /. The example query parameter preloads that example
// into the query box.
func (h *PageHandler) Index(c *gin.Context) {
	data := h.newPageData()

	if label := c.Query("example"); label != "" {
		if query, ok := catalog.Lookup(label); ok {
			data.SelectedExample = label
			data.SQL = query
		}
	}

	h.render(c, data)
}

// RunQuery handles POST /run
func (h *PageHandler) RunQuery(c *gin.Context) {
	data := h.newPageData()

	var req services.ExecuteQueryRequest
	if err := c.ShouldBind(&req); err != nil {
		data.Error = err.Error()
		h.render(c, data)
		return
	}
	data.SQL = req.Query

	result, err := h.queryService.ExecuteQuery(c.Request.Context(), &req)
	switch {
	case errors.Is(err, services.ErrEmptyQuery):
		data.Warning = userMessage(err)
	case err != nil:
		data.Error = userMessage(err)
	default:
		data.Result = result
		data.Success = rowsMessage(result)
	}

	h.render(c, data)
}

// ResetDatabase handles POST /reset. The query box keeps its text.
func (h *PageHandler) ResetDatabase(c *gin.Context) {
	data := h.newPageData()
	data.SQL = c.PostForm("sql")

	if err := h.databaseService.Reset(c.Request.Context()); err != nil {
		logging.WithComponent("page").Error("reset failed", "error", err)
		data.Error = err.Error()
	} else {
		data.Success = msgResetDone
	}

	h.render(c, data)
}

func (h *PageHandler) newPageData() *pageData {
	return &pageData{
		Title:     pageTitle,
		Caption:   pageCaption,
		Examples:  catalog.Examples(),
		Exercises: catalog.Exercises(),
	}
}

// render loads the table info after the request's own work so the panel
// reflects a reset done in the same request.
func (h *PageHandler) render(c *gin.Context, data *pageData) {
	tables, err := h.schemaService.Summary(c.Request.Context())
	if err != nil {
		logging.WithComponent("page").Error("failed to read table info", "error", err)
		if data.Error == "" {
			data.Error = err.Error()
		}
	}
	data.Tables = tables

	c.HTML(http.StatusOK, "index.html", data)
}
