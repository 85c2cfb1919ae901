package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sqlpractice/internal/config"
	"sqlpractice/internal/database"
	"sqlpractice/internal/handlers"
	"sqlpractice/internal/logging"
	"sqlpractice/internal/middlewares"
	"sqlpractice/internal/repositories"
	"sqlpractice/internal/routes"
	"sqlpractice/internal/services"
	"sqlpractice/internal/utils"
	"sqlpractice/internal/views"
)

const readPoolSize = 4

type Server struct {
	httpServer *http.Server
	db         *gorm.DB
	readDB     *sql.DB
}

// NewServer prepares the practice database, creating and seeding it on
// first run, and builds the http server around it.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, _, err := database.EnsureDatabaseExists(ctx, cfg.DBFile)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare practice database: %w", err)
	}

	readDB, err := database.OpenReadOnly(cfg.DBFile, readPoolSize)
	if err != nil {
		database.Close(db)
		return nil, err
	}

	router := NewRouter(cfg, db, readDB)

	// Create and configure the HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.QueryTimeout + 30*time.Second,
	}

	return &Server{
		httpServer: httpServer,
		db:         db,
		readDB:     readDB,
	}, nil
}

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB, readDB *sql.DB) *gin.Engine {
	// Queries share the lock, a reset takes it exclusively.
	mu := &sync.RWMutex{}

	// Dependency injection
	queryRepo := repositories.NewQueryRepository(readDB)
	schemaRepo := repositories.NewSchemaRepository(db)

	queryService := services.NewQueryService(queryRepo, mu, cfg.QueryTimeout, cfg.MaxRows)
	schemaService := services.NewSchemaService(schemaRepo, mu, database.PracticeTables)
	databaseService := services.NewDatabaseService(db, mu)

	h := routes.Handlers{
		Page:     handlers.NewPageHandler(queryService, schemaService, databaseService),
		Query:    handlers.NewQueryHandler(queryService),
		Schema:   handlers.NewSchemaHandler(schemaService),
		Database: handlers.NewDatabaseHandler(databaseService),
		Catalog:  handlers.NewCatalogHandler(),
	}

	// Initialize Gin router
	router := gin.Default()
	if err := router.SetTrustedProxies(nil); err != nil {
		logging.WithComponent("server").Warn("failed to reset trusted proxies", "error", err)
	}
	router.SetHTMLTemplate(views.Templates())
	// Preflight requests match no route, so CORS has to run on the engine.
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	routes.RegisterRoutes(router, h,
		middlewares.RequestID,
		middlewares.AccessLog,
	)

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(origins) == 0 || utils.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AllowHeaders = append(c.AllowHeaders, middlewares.RequestIDHeader)
	c.ExposeHeaders = []string{middlewares.RequestIDHeader}
	return c
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) ListenAndServe() error {
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting requests, waits for in-flight ones and closes
// the database handles.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)

	if cerr := s.readDB.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	database.Close(s.db)

	return err
}
