// Package api exposes the journal over a local HTTP interface: the
// calculation panel, trade history CRUD, statistics, checklist state
// and CSV export. Handlers translate between JSON and the pure core
// packages; no domain logic lives here.
package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/journal"
)

const (
	ServiceName    = "tradebook"
	ServiceVersion = "1.0.0"

	RequestIDContextKey = "request_id"
	RequestIDHeaderKey  = "X-Request-ID"
)

// Handler carries the store and settings into the route handlers.
type Handler struct {
	store  journal.Store
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// NewHandler wires a handler around an open store. A nil logger falls
// back to slog.Default.
func NewHandler(store journal.Store, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:  store,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// StartServer runs the HTTP server on the configured address.
func (h *Handler) StartServer() error {
	router := h.SetupRoutes()
	return router.Run(h.cfg.Server.Addr)
}

// SetupRoutes configures all API routes.
func (h *Handler) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(requestIDMiddleware())
	router.Use(ginLoggerMiddleware())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.POST("/api/calc", h.CalculateTrade)
	router.GET("/api/instruments", h.ListInstruments)

	router.GET("/api/trades", h.ListTrades)
	router.POST("/api/trades", h.CreateTrade)
	router.PATCH("/api/trades/:id", h.UpdateTrade)
	router.DELETE("/api/trades/:id", h.DeleteTrade)
	router.GET("/api/trades/export", h.ExportCSV)

	router.GET("/api/stats", h.GetStatistics)

	router.GET("/api/checklist", h.GetChecklist)
	router.POST("/api/checklist/:id/toggle", h.ToggleChecklistItem)
	router.DELETE("/api/checklist", h.ResetChecklist)

	router.GET("/api/draft", h.GetDraft)
	router.PUT("/api/draft", h.PutDraft)
	router.POST("/api/journal/text", h.RenderJournalText)

	router.GET("/health", h.HealthCheck)

	return router
}
