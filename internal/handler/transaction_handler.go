package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/minhvu/soquy/soquy-backend/internal/domain"
	"github.com/minhvu/soquy/soquy-backend/internal/service"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest represents the create/update transaction request body
type TransactionRequest struct {
	Amount      string  `json:"amount"`
	Type        string  `json:"type"`
	CategoryID  string  `json:"categoryId"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID           string  `json:"id"`
	Amount       string  `json:"amount"`
	Type         string  `json:"type"`
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName,omitempty"`
	CategoryType string  `json:"categoryType,omitempty"`
	Date         string  `json:"date"`
	Description  *string `json:"description,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// PaginatedTransactionsResponse wraps a page of transactions
type PaginatedTransactionsResponse struct {
	Data       []TransactionResponse `json:"data"`
	Page       int32                 `json:"page"`
	PageSize   int32                 `json:"pageSize"`
	TotalItems int64                 `json:"totalItems"`
	TotalPages int32                 `json:"totalPages"`
}

func transactionToResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Amount:      t.Amount.String(),
		Type:        string(t.Type),
		CategoryID:  t.CategoryID.String(),
		Date:        t.Date.Format(time.RFC3339),
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

func transactionWithCategoryToResponse(t *domain.TransactionWithCategory) TransactionResponse {
	resp := transactionToResponse(&t.Transaction)
	resp.CategoryName = t.CategoryName
	resp.CategoryType = string(t.CategoryType)
	return resp
}

// parseDateParam accepts the date forms clients send: a plain calendar date
// or a full RFC 3339 timestamp.
func parseDateParam(s string) (time.Time, error) {
	if d, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (h *TransactionHandler) bindInput(c echo.Context) (*service.CreateTransactionInput, error) {
	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return nil, NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "categoryId", Message: "Must be a valid category id"},
		})
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := parseDateParam(req.Date)
		if err != nil {
			return nil, NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "date", Message: "Must be an ISO date (YYYY-MM-DD)"},
			})
		}
		date = parsed
	}

	return &service.CreateTransactionInput{
		Amount:      amount,
		Type:        domain.TransactionType(req.Type),
		CategoryID:  categoryID,
		Date:        date,
		Description: req.Description,
	}, nil
}

func transactionServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be positive"},
		})
	case errors.Is(err, domain.ErrAmountPrecision):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount may have at most two decimal places"},
		})
	case errors.Is(err, domain.ErrInvalidTransactionType):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "type", Message: "Type must be one of: income, expense"},
		})
	case errors.Is(err, domain.ErrDescriptionTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "description", Message: "Description must be 500 characters or less"},
		})
	case errors.Is(err, domain.ErrCategoryNotFound):
		return NewNotFoundError(c, "Category not found")
	case errors.Is(err, domain.ErrTransactionNotFound):
		return NewNotFoundError(c, "Transaction not found")
	case errors.Is(err, domain.ErrDuplicateTransaction):
		return NewConflictError(c, "A similar transaction was recorded moments ago")
	default:
		return NewInternalError(c, "Failed to process transaction")
	}
}

// CreateTransaction handles POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	transaction, err := h.transactionService.CreateTransaction(*input)
	if err != nil {
		return transactionServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, transactionToResponse(transaction))
}

// GetTransaction handles GET /api/v1/transactions/:id
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction id", nil)
	}

	transaction, err := h.transactionService.GetTransaction(id)
	if err != nil {
		return transactionServiceError(c, err)
	}

	return c.JSON(http.StatusOK, transactionWithCategoryToResponse(transaction))
}

// parseTransactionFilters reads the shared list/export query parameters
func parseTransactionFilters(c echo.Context) (*domain.TransactionFilters, error) {
	filters := &domain.TransactionFilters{}

	if s := c.QueryParam("type"); s != "" {
		t := domain.TransactionType(s)
		if !t.IsValid() {
			return nil, NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "type", Message: "Type must be one of: income, expense"},
			})
		}
		filters.Type = &t
	}
	if s := c.QueryParam("categoryId"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "categoryId", Message: "Must be a valid category id"},
			})
		}
		filters.CategoryID = &id
	}
	if s := c.QueryParam("startDate"); s != "" {
		d, err := parseDateParam(s)
		if err != nil {
			return nil, NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "startDate", Message: "Must be an ISO date"},
			})
		}
		filters.StartDate = &d
	}
	if s := c.QueryParam("endDate"); s != "" {
		d, err := parseDateParam(s)
		if err != nil {
			return nil, NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "endDate", Message: "Must be an ISO date"},
			})
		}
		filters.EndDate = &d
	}
	if s := c.QueryParam("minAmount"); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "minAmount", Message: "Must be a valid decimal number"},
			})
		}
		filters.MinAmount = &d
	}
	if s := c.QueryParam("maxAmount"); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "maxAmount", Message: "Must be a valid decimal number"},
			})
		}
		filters.MaxAmount = &d
	}
	filters.Search = c.QueryParam("search")

	if s := c.QueryParam("page"); s != "" {
		page, err := strconv.ParseInt(s, 10, 32)
		if err != nil || page < 1 {
			return nil, NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "page", Message: "Must be a positive integer"},
			})
		}
		filters.Page = int32(page)
	}
	if s := c.QueryParam("limit"); s != "" {
		limit, err := strconv.ParseInt(s, 10, 32)
		if err != nil || limit < 1 {
			return nil, NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "limit", Message: "Must be a positive integer"},
			})
		}
		filters.PageSize = int32(limit)
	}

	return filters, nil
}

// GetTransactions handles GET /api/v1/transactions
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	filters, err := parseTransactionFilters(c)
	if err != nil {
		return err
	}

	result, err := h.transactionService.GetTransactions(filters)
	if err != nil {
		return NewInternalError(c, "Failed to list transactions")
	}

	data := make([]TransactionResponse, len(result.Data))
	for i, tx := range result.Data {
		data[i] = transactionWithCategoryToResponse(tx)
	}

	return c.JSON(http.StatusOK, PaginatedTransactionsResponse{
		Data:       data,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

// UpdateTransaction handles PUT /api/v1/transactions/:id
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction id", nil)
	}

	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	transaction, err := h.transactionService.UpdateTransaction(id, service.UpdateTransactionInput{
		Amount:      input.Amount,
		Type:        input.Type,
		CategoryID:  input.CategoryID,
		Date:        input.Date,
		Description: input.Description,
	})
	if err != nil {
		return transactionServiceError(c, err)
	}

	return c.JSON(http.StatusOK, transactionToResponse(transaction))
}

// DeleteTransaction handles DELETE /api/v1/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction id", nil)
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		return transactionServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
