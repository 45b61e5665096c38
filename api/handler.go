package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rustyeddy/tradebook/calc"
	"github.com/rustyeddy/tradebook/checklist"
	"github.com/rustyeddy/tradebook/instrument"
	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/pkg/id"
)

// CalculateTrade handles POST /api/calc: one trade's raw numbers in,
// the derived metric set and any advisory warnings out. Warnings never
// suppress the results; the client decides how to style them.
func (h *Handler) CalculateTrade(c *gin.Context) {
	var req calcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleValidationError(c, err)
		return
	}

	inputs, err := req.toInputs(h.cfg)
	if err != nil {
		h.handleValidationError(c, err)
		return
	}

	results, err := calc.Calculate(inputs)
	if err != nil {
		h.handleError(c, err, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results":  results,
		"warnings": calc.ValidateInputs(inputs),
	})
}

// ListInstruments handles GET /api/instruments.
func (h *Handler) ListInstruments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"instruments": instrument.Active(),
		"default":     instrument.Default,
	})
}

// ListTrades handles GET /api/trades with optional filter params.
func (h *Handler) ListTrades(c *gin.Context) {
	trades, filters, err := h.filteredTrades(c)
	if err != nil {
		h.handleError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trades":     trades,
		"filters":    filters,
		"setupTypes": journal.SetupTypes(trades),
		"tags":       journal.TagSet(trades),
	})
}

// CreateTrade handles POST /api/trades. New trades always start
// Pending with an unset R:R; the outcome is filled in later from the
// history view.
func (h *Handler) CreateTrade(c *gin.Context) {
	var req newTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleValidationError(c, err)
		return
	}
	if err := req.validate(); err != nil {
		h.handleValidationError(c, err)
		return
	}

	trade := req.toTrade(id.New(), h.now())
	if err := h.store.SaveTrade(trade); err != nil {
		h.handleError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, trade)
}

// UpdateTrade handles PATCH /api/trades/:id with a partial update of
// outcome, R:R ratio and notes.
func (h *Handler) UpdateTrade(c *gin.Context) {
	var upd journal.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		h.handleValidationError(c, err)
		return
	}
	if err := validateUpdate(upd); err != nil {
		h.handleValidationError(c, err)
		return
	}

	tradeID := c.Param("id")
	if err := h.store.UpdateTrade(tradeID, upd); err != nil {
		h.handleError(c, err, http.StatusNotFound, err.Error())
		return
	}

	trade, err := h.store.GetTrade(tradeID)
	if err != nil {
		h.handleError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, trade)
}

// DeleteTrade handles DELETE /api/trades/:id. Deletion is the explicit
// confirmation step; there is no undo.
func (h *Handler) DeleteTrade(c *gin.Context) {
	if err := h.store.DeleteTrade(c.Param("id")); err != nil {
		h.handleError(c, err, http.StatusNotFound, err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportCSV handles GET /api/trades/export, streaming the filtered
// history as a CSV attachment.
func (h *Handler) ExportCSV(c *gin.Context) {
	trades, _, err := h.filteredTrades(c)
	if err != nil {
		h.handleError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(trades) == 0 {
		h.handleError(c, errNoTrades, http.StatusNotFound, "No trades to export")
		return
	}

	filename := journal.ExportFilename(h.cfg.Trading.ExportBasename, h.now())
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := journal.WriteCSV(c.Writer, trades); err != nil {
		h.logger.Error("csv export failed", slog.String("error", err.Error()))
	}
}

// GetStatistics handles GET /api/stats over the (optionally filtered)
// history.
func (h *Handler) GetStatistics(c *gin.Context) {
	trades, _, err := h.filteredTrades(c)
	if err != nil {
		h.handleError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, journal.Statistics(trades))
}

// GetChecklist handles GET /api/checklist: the static sections plus
// the user's completion state and progress counts.
func (h *Handler) GetChecklist(c *gin.Context) {
	state, err := h.store.LoadChecklist()
	if err != nil {
		h.handleError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sections": checklist.Sections,
		"state":    state,
		"progress": checklist.ProgressOf(state),
	})
}

// ToggleChecklistItem handles POST /api/checklist/:id/toggle.
func (h *Handler) ToggleChecklistItem(c *gin.Context) {
	state, err := h.store.LoadChecklist()
	if err != nil {
		h.handleError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}

	checked := checklist.State(state).Toggle(c.Param("id"))
	if err := h.store.SaveChecklist(state); err != nil {
		h.handleError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       c.Param("id"),
		"checked":  checked,
		"progress": checklist.ProgressOf(state),
	})
}

// ResetChecklist handles DELETE /api/checklist, unchecking everything.
func (h *Handler) ResetChecklist(c *gin.Context) {
	if err := h.store.SaveChecklist(map[string]bool{}); err != nil {
		h.handleError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetDraft handles GET /api/draft. A missing draft returns the seeded
// default form rather than 404 so the client always has something to
// render.
func (h *Handler) GetDraft(c *gin.Context) {
	draft, ok, err := h.store.LoadDraft()
	if err != nil {
		h.handleError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !ok {
		draft = journal.DefaultEntry(h.now())
	}
	c.JSON(http.StatusOK, draft)
}

// PutDraft handles PUT /api/draft, replacing the stored draft.
func (h *Handler) PutDraft(c *gin.Context) {
	var draft journal.Entry
	if err := c.ShouldBindJSON(&draft); err != nil {
		h.handleValidationError(c, err)
		return
	}
	if err := h.store.SaveDraft(draft); err != nil {
		h.handleError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// RenderJournalText handles POST /api/journal/text, returning the
// plain-text rendering of an entry for download or clipboard copy.
func (h *Handler) RenderJournalText(c *gin.Context) {
	var entry journal.Entry
	if err := c.ShouldBindJSON(&entry); err != nil {
		h.handleValidationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": journal.FormatEntryText(entry)})
}

// HealthCheck handles GET /health requests.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"service":   ServiceName,
		"version":   ServiceVersion,
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) filteredTrades(c *gin.Context) ([]journal.Trade, journal.Filters, error) {
	trades, err := h.store.ListTrades()
	if err != nil {
		return nil, journal.Filters{}, err
	}

	filters := filtersFromQuery(c)
	return journal.Filter(trades, filters), filters, nil
}

// handleError logs the error and sends the HTTP response.
func (h *Handler) handleError(c *gin.Context, err error, statusCode int, userMessage string) {
	requestID := "unknown"
	if v, ok := c.Get(RequestIDContextKey); ok {
		if s, ok := v.(string); ok {
			requestID = s
		}
	}

	h.logger.Error("API error",
		slog.String("request_id", requestID),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("error", err.Error()),
		slog.Int("status_code", statusCode),
	)

	c.JSON(statusCode, gin.H{
		"error":      userMessage,
		"request_id": requestID,
	})
}

func (h *Handler) handleValidationError(c *gin.Context, err error) {
	h.handleError(c, err, http.StatusBadRequest, err.Error())
}
