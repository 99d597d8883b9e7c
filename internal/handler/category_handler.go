package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/minhvu/soquy/soquy-backend/internal/domain"
	"github.com/minhvu/soquy/soquy-backend/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents the create/update category request body
type CategoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	TransactionCount *int64 `json:"transactionCount,omitempty"`
}

func categoryToResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:   cat.ID.String(),
		Name: cat.Name,
		Type: string(cat.Type),
	}
}

func categoryServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is required"},
		})
	case errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name must be 50 characters or less"},
		})
	case errors.Is(err, domain.ErrInvalidTransactionType):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "type", Message: "Type must be one of: income, expense"},
		})
	case errors.Is(err, domain.ErrCategoryNotFound):
		return NewNotFoundError(c, "Category not found")
	case errors.Is(err, domain.ErrCategoryNameTaken):
		return NewConflictError(c, "A category with this name already exists")
	case errors.Is(err, domain.ErrCategoryInUse):
		return NewConflictError(c, "Category still has transactions")
	default:
		return NewInternalError(c, "Failed to process category")
	}
}

// CreateCategory handles POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.CreateCategory(req.Name, domain.TransactionType(req.Type))
	if err != nil {
		return categoryServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, categoryToResponse(category))
}

// GetCategories handles GET /api/v1/categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	var typeFilter *domain.TransactionType
	if s := c.QueryParam("type"); s != "" {
		t := domain.TransactionType(s)
		if !t.IsValid() {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "type", Message: "Type must be one of: income, expense"},
			})
		}
		typeFilter = &t
	}

	categories, err := h.categoryService.GetCategories(typeFilter)
	if err != nil {
		return NewInternalError(c, "Failed to list categories")
	}

	resp := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		resp[i] = categoryToResponse(cat)
	}

	return c.JSON(http.StatusOK, resp)
}

// GetCategory handles GET /api/v1/categories/:id
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid category id", nil)
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		return categoryServiceError(c, err)
	}

	resp := categoryToResponse(&category.Category)
	resp.TransactionCount = &category.TransactionCount
	return c.JSON(http.StatusOK, resp)
}

// UpdateCategory handles PUT /api/v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid category id", nil)
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.UpdateCategory(id, req.Name, domain.TransactionType(req.Type))
	if err != nil {
		return categoryServiceError(c, err)
	}

	return c.JSON(http.StatusOK, categoryToResponse(category))
}

// DeleteCategory handles DELETE /api/v1/categories/:id
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid category id", nil)
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		return categoryServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
