package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/minhvu/soquy/soquy-backend/internal/period"
	"github.com/minhvu/soquy/soquy-backend/internal/service"
)

// SummaryHandler handles period summary HTTP requests
type SummaryHandler struct {
	summaryService *service.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryService *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// CategorySummaryResponse is a single category's share of a period
type CategorySummaryResponse struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Type         string `json:"type"`
	Amount       string `json:"amount"`
	Count        int    `json:"count"`
	Percentage   string `json:"percentage"`
}

// DateRangeResponse echoes the resolved period boundaries
type DateRangeResponse struct {
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Granularity string `json:"granularity"`
	Label       string `json:"label"`
}

// SummaryTotalsResponse carries the period's grand totals
type SummaryTotalsResponse struct {
	TotalIncome      string `json:"totalIncome"`
	TotalExpenses    string `json:"totalExpenses"`
	NetBalance       string `json:"netBalance"`
	TransactionCount int    `json:"transactionCount"`
}

// SummaryResponse is the full period summary payload
type SummaryResponse struct {
	Summary    SummaryTotalsResponse     `json:"summary"`
	ByCategory []CategorySummaryResponse `json:"byCategory"`
	DateRange  DateRangeResponse         `json:"dateRange"`
}

func summaryToResponse(ps *service.PeriodSummary) SummaryResponse {
	byCategory := make([]CategorySummaryResponse, len(ps.Summary.ByCategory))
	for i, cs := range ps.Summary.ByCategory {
		byCategory[i] = CategorySummaryResponse{
			CategoryID:   cs.CategoryID.String(),
			CategoryName: cs.CategoryName,
			Type:         string(cs.Type),
			Amount:       cs.Amount.String(),
			Count:        cs.Count,
			Percentage:   cs.Percentage.String(),
		}
	}

	return SummaryResponse{
		Summary: SummaryTotalsResponse{
			TotalIncome:      ps.Summary.TotalIncome.String(),
			TotalExpenses:    ps.Summary.TotalExpenses.String(),
			NetBalance:       ps.Summary.NetBalance.String(),
			TransactionCount: ps.Summary.TransactionCount,
		},
		ByCategory: byCategory,
		DateRange: DateRangeResponse{
			StartDate:   ps.DateRange.Start.Format(time.RFC3339),
			EndDate:     ps.DateRange.End.Format(time.RFC3339),
			Granularity: string(ps.DateRange.Granularity),
			Label:       period.Label(ps.DateRange.Start, ps.DateRange.End, ps.DateRange.Granularity),
		},
	}
}

// GetSummary handles GET /api/v1/transactions/summary.
//
// Two query shapes are accepted: an explicit startDate/endDate pair, or a
// reference date plus a granularity (day, week, month) that the server
// resolves to period boundaries. With no parameters it summarizes the
// current month.
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	g := period.GranularityMonth
	if s := c.QueryParam("granularity"); s != "" {
		parsed, err := period.ParseGranularity(s)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "granularity", Message: "Must be one of: day, week, month"},
			})
		}
		g = parsed
	}

	startParam := c.QueryParam("startDate")
	endParam := c.QueryParam("endDate")
	if startParam != "" || endParam != "" {
		if startParam == "" || endParam == "" {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "startDate", Message: "startDate and endDate must be provided together"},
			})
		}
		start, err := parseDateParam(startParam)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "startDate", Message: "Must be an ISO date"},
			})
		}
		end, err := parseDateParam(endParam)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "endDate", Message: "Must be an ISO date"},
			})
		}
		if end.Before(start) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "endDate", Message: "endDate must not be before startDate"},
			})
		}

		summary, err := h.summaryService.SummarizeRange(start, end, g)
		if err != nil {
			return NewInternalError(c, "Failed to compute summary")
		}
		return c.JSON(http.StatusOK, summaryToResponse(summary))
	}

	reference := time.Now()
	if s := c.QueryParam("date"); s != "" {
		parsed, err := parseDateParam(s)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "date", Message: "Must be an ISO date"},
			})
		}
		reference = parsed
	}

	summary, err := h.summaryService.SummarizePeriod(reference, g)
	if err != nil {
		return NewInternalError(c, "Failed to compute summary")
	}
	return c.JSON(http.StatusOK, summaryToResponse(summary))
}
