package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/meufluxo/internal/core/cashflow"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	portssvc "github.com/SscSPs/meufluxo/internal/core/ports/services"
	"github.com/SscSPs/meufluxo/internal/dto"
	"github.com/SscSPs/meufluxo/internal/middleware"
	"github.com/gin-gonic/gin"
)

// insightsHandler serves every derived view of the transaction snapshot.
type insightsHandler struct {
	insightsService portssvc.InsightsSvcFacade
	loc             *time.Location
	clock           func() time.Time
}

func newInsightsHandler(is portssvc.InsightsSvcFacade, loc *time.Location) *insightsHandler {
	if loc == nil {
		loc = time.Local
	}
	return &insightsHandler{
		insightsService: is,
		loc:             loc,
		clock:           time.Now,
	}
}

// RegisterInsightsRoutes registers the read-only view routes.
func RegisterInsightsRoutes(rg *gin.RouterGroup, insightsService portssvc.InsightsSvcFacade, loc *time.Location) {
	h := newInsightsHandler(insightsService, loc)

	rg.GET("/transactions", h.listTransactions)
	stats := rg.Group("/stats")
	{
		stats.GET("/comparison", h.getComparison)
		stats.GET("/:period", h.getPeriodStats)
	}
	rg.GET("/categories/stats", h.getCategoryStats)
	rg.GET("/timeline", h.getTimeline)
	rg.GET("/alerts", h.getAlerts)
	rg.GET("/upcoming", h.getUpcoming)
	rg.GET("/reminders", h.getReminders)
	rg.GET("/dashboard", h.getDashboard)
}

// bindView binds the shared view query parameters into q. It writes the error response and
// returns false when they are invalid.
func (h *insightsHandler) bindView(c *gin.Context, q any, view func() dto.ViewQuery) (portssvc.ViewParams, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := c.ShouldBindQuery(q); err != nil {
		logger.Warn("Failed to bind view query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return portssvc.ViewParams{}, false
	}
	params, err := view().ToViewParams(h.clock().In(h.loc), h.loc)
	if err != nil {
		respondError(c, err, "view")
		return portssvc.ViewParams{}, false
	}
	return params, true
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the filtered snapshot ordered by date, with recurring transactions expanded
// @Tags transactions
// @Produce json
// @Param search query string false "Case-insensitive text matched against description and category"
// @Param type query string false "Transaction type" Enums(all, entrada, saida)
// @Param category query string false "Category name or all"
// @Param dateFrom query string false "First day (YYYY-MM-DD), inclusive"
// @Param dateTo query string false "Last day (YYYY-MM-DD), inclusive"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Stored records are malformed"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *insightsHandler) listTransactions(c *gin.Context) {
	var q dto.ListTransactionsQuery
	params, ok := h.bindView(c, &q, func() dto.ViewQuery { return q.ViewQuery })
	if !ok {
		return
	}

	txns, nextToken, err := h.insightsService.ListTransactions(c.Request.Context(), params, q.Limit, q.NextToken)
	if err != nil {
		respondError(c, err, "transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, nextToken))
}

// getPeriodStats godoc
// @Summary Period totals
// @Description Totals of the filtered transactions dated in the current week (from Monday), month or year
// @Tags stats
// @Produce json
// @Param period path string true "Period" Enums(week, month, year)
// @Param search query string false "Text filter"
// @Param type query string false "Transaction type" Enums(all, entrada, saida)
// @Param category query string false "Category name or all"
// @Param dateFrom query string false "First day (YYYY-MM-DD)"
// @Param dateTo query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} dto.PeriodStatsResponse
// @Failure 400 {object} map[string]string "Unknown period or invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Stored records are malformed"
// @Failure 500 {object} map[string]string "Failed to compute stats"
// @Security BearerAuth
// @Router /stats/{period} [get]
func (h *insightsHandler) getPeriodStats(c *gin.Context) {
	period, err := cashflow.ParsePeriod(c.Param("period"))
	if err != nil {
		respondError(c, err, "stats")
		return
	}
	var q dto.ViewQuery
	params, ok := h.bindView(c, &q, func() dto.ViewQuery { return q })
	if !ok {
		return
	}

	stats, err := h.insightsService.PeriodStats(c.Request.Context(), period, params)
	if err != nil {
		respondError(c, err, "stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodStatsResponse(period, *stats))
}

// getComparison godoc
// @Summary Month over month comparison
// @Description Compares the current month with the previous one. A change is null when the previous month was zero
// @Tags stats
// @Produce json
// @Param search query string false "Text filter"
// @Param type query string false "Transaction type" Enums(all, entrada, saida)
// @Param category query string false "Category name or all"
// @Success 200 {object} dto.ComparisonResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Stored records are malformed"
// @Failure 500 {object} map[string]string "Failed to compute comparison"
// @Security BearerAuth
// @Router /stats/comparison [get]
func (h *insightsHandler) getComparison(c *gin.Context) {
	var q dto.ViewQuery
	params, ok := h.bindView(c, &q, func() dto.ViewQuery { return q })
	if !ok {
		return
	}

	comparison, err := h.insightsService.Comparison(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "comparison")
		return
	}
	c.JSON(http.StatusOK, dto.ToComparisonResponse(*comparison))
}

// getCategoryStats godoc
// @Summary Expenses by category
// @Description Expense totals per category for the current month or year, measured against the budgets of that period
// @Tags categories
// @Produce json
// @Param period query string false "Budget period" Enums(month, year) default(month)
// @Param search query string false "Text filter"
// @Param type query string false "Transaction type" Enums(all, entrada, saida)
// @Param category query string false "Category name or all"
// @Success 200 {array} dto.CategoryStatResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Stored records are malformed"
// @Failure 500 {object} map[string]string "Failed to compute category stats"
// @Security BearerAuth
// @Router /categories/stats [get]
func (h *insightsHandler) getCategoryStats(c *gin.Context) {
	var q dto.CategoryStatsQuery
	params, ok := h.bindView(c, &q, func() dto.ViewQuery { return q.ViewQuery })
	if !ok {
		return
	}

	stats, err := h.insightsService.CategoryStats(c.Request.Context(), domain.BudgetPeriod(q.Period), params)
	if err != nil {
		respondError(c, err, "category stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryStatResponses(stats))
}

// getTimeline godoc
// @Summary Projected balance timeline
// @Description Upcoming transactions within the horizon with the running balance after each one
// @Tags projection
// @Produce json
// @Param horizonDays query int false "Look-ahead in days" default(30)
// @Param search query string false "Text filter"
// @Param type query string false "Transaction type" Enums(all, entrada, saida)
// @Param category query string false "Category name or all"
// @Success 200 {array} dto.TimelineEntryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Stored records are malformed"
// @Failure 500 {object} map[string]string "Failed to compute timeline"
// @Security BearerAuth
// @Router /timeline [get]
func (h *insightsHandler) getTimeline(c *gin.Context) {
	var q dto.ViewQuery
	params, ok := h.bindView(c, &q, func() dto.ViewQuery { return q })
	if !ok {
		return
	}

	entries, err := h.insightsService.Timeline(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "timeline")
		return
	}
	c.JSON(http.StatusOK, dto.ToTimelineResponses(entries))
}

// getAlerts godoc
// @Summary Upcoming transaction alerts
// @Description Transactions due within the alert window, minus the dismissed ones
// @Tags projection
// @Produce json
// @Param windowDays query int false "Alert window in days" default(3)
// @Param dismissed query []string false "Dismissed alert ids, repeated or comma separated" collectionFormat(csv)
// @Success 200 {array} dto.AlertResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Stored records are malformed"
// @Failure 500 {object} map[string]string "Failed to compute alerts"
// @Security BearerAuth
// @Router /alerts [get]
func (h *insightsHandler) getAlerts(c *gin.Context) {
	var q dto.ViewQuery
	params, ok := h.bindView(c, &q, func() dto.ViewQuery { return q })
	if !ok {
		return
	}

	alerts, err := h.insightsService.Alerts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "alerts")
		return
	}
	c.JSON(http.StatusOK, dto.ToAlertResponses(alerts))
}

// getUpcoming godoc
// @Summary Upcoming income and expenses
// @Description Every transaction dated after now, split by type with totals
// @Tags projection
// @Produce json
// @Success 200 {object} dto.UpcomingResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Stored records are malformed"
// @Failure 500 {object} map[string]string "Failed to compute upcoming"
// @Security BearerAuth
// @Router /upcoming [get]
func (h *insightsHandler) getUpcoming(c *gin.Context) {
	var q dto.ViewQuery
	params, ok := h.bindView(c, &q, func() dto.ViewQuery { return q })
	if !ok {
		return
	}

	summary, err := h.insightsService.Upcoming(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "upcoming")
		return
	}
	c.JSON(http.StatusOK, dto.ToUpcomingResponse(*summary))
}

// getReminders godoc
// @Summary Pending reminders
// @Description Transactions with a reminder that is due and has not been sent yet
// @Tags projection
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Stored records are malformed"
// @Failure 500 {object} map[string]string "Failed to list reminders"
// @Security BearerAuth
// @Router /reminders [get]
func (h *insightsHandler) getReminders(c *gin.Context) {
	var q dto.ViewQuery
	params, ok := h.bindView(c, &q, func() dto.ViewQuery { return q })
	if !ok {
		return
	}

	pending, err := h.insightsService.PendingReminders(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "reminders")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(pending))
}

// getDashboard godoc
// @Summary Dashboard
// @Description Every view of the filtered snapshot in one payload. The reference time is rounded
// @Description down to the minute so results can be reused for a minute; a transaction dated between
// @Description that minute and the exact request time counts as upcoming here and not on /timeline.
// @Tags dashboard
// @Produce json
// @Param search query string false "Text filter"
// @Param type query string false "Transaction type" Enums(all, entrada, saida)
// @Param category query string false "Category name or all"
// @Param dateFrom query string false "First day (YYYY-MM-DD)"
// @Param dateTo query string false "Last day (YYYY-MM-DD)"
// @Param horizonDays query int false "Timeline look-ahead in days" default(30)
// @Param windowDays query int false "Alert window in days" default(3)
// @Param dismissed query []string false "Dismissed alert ids" collectionFormat(csv)
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Stored records are malformed"
// @Failure 500 {object} map[string]string "Failed to compute dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *insightsHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.ViewQuery
	params, ok := h.bindView(c, &q, func() dto.ViewQuery { return q })
	if !ok {
		return
	}

	dashboard, err := h.insightsService.Dashboard(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "dashboard")
		return
	}
	logger.Info("Dashboard served", slog.Int("timeline_entries", len(dashboard.Timeline)), slog.Int("alerts", len(dashboard.Alerts)))
	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}
