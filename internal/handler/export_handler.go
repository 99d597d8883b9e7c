package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/minhvu/soquy/soquy-backend/internal/domain"
	"github.com/minhvu/soquy/soquy-backend/internal/service"
)

// ExportHandler serves CSV downloads of filtered transactions
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportTransactions handles GET /api/v1/transactions/export. It accepts the
// same query parameters as the transaction list and streams the matching
// rows as a UTF-8 CSV attachment.
func (h *ExportHandler) ExportTransactions(c echo.Context) error {
	filters, err := parseTransactionFilters(c)
	if err != nil {
		return err
	}

	result, err := h.exportService.ExportCSV(filters)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "No transactions match the given filters")
		}
		return NewInternalError(c, "Failed to export transactions")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, result.Filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(result.Content))
}
