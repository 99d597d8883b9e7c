package testutil

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minhvu/soquy/soquy-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[uuid.UUID]*domain.Category
	Counts     map[uuid.UUID]int64
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[uuid.UUID]*domain.Category),
		Counts:     make(map[uuid.UUID]int64),
	}
}

// AddCategory seeds a category, assigning an ID when missing
func (m *MockCategoryRepository) AddCategory(category *domain.Category) *domain.Category {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}
	m.Categories[category.ID] = category
	return category
}

// Create creates a new category
func (m *MockCategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	return m.AddCategory(category), nil
}

// GetByID retrieves a category by ID
func (m *MockCategoryRepository) GetByID(id uuid.UUID) (*domain.Category, error) {
	if category, ok := m.Categories[id]; ok {
		return category, nil
	}
	return nil, domain.ErrCategoryNotFound
}

// GetByName retrieves a category by exact name
func (m *MockCategoryRepository) GetByName(name string) (*domain.Category, error) {
	for _, category := range m.Categories {
		if category.Name == name {
			return category, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// GetAll retrieves all categories, optionally filtered by type, name ascending
func (m *MockCategoryRepository) GetAll(typeFilter *domain.TransactionType) ([]*domain.Category, error) {
	var result []*domain.Category
	for _, category := range m.Categories {
		if typeFilter != nil && category.Type != *typeFilter {
			continue
		}
		result = append(result, category)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Update updates an existing category
func (m *MockCategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	if _, ok := m.Categories[category.ID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	m.Categories[category.ID] = category
	return category, nil
}

// Delete removes a category
func (m *MockCategoryRepository) Delete(id uuid.UUID) error {
	if _, ok := m.Categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	return nil
}

// TransactionCount returns the seeded transaction count for a category
func (m *MockCategoryRepository) TransactionCount(id uuid.UUID) (int64, error) {
	return m.Counts[id], nil
}

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions []*domain.TransactionWithCategory
	ListErr      error
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

// AddTransaction seeds a transaction, assigning an ID when missing
func (m *MockTransactionRepository) AddTransaction(tx *domain.TransactionWithCategory) *domain.TransactionWithCategory {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	m.Transactions = append(m.Transactions, tx)
	return tx
}

// Create creates a new transaction
func (m *MockTransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	transaction.ID = uuid.New()
	transaction.CreatedAt = time.Now()
	transaction.UpdatedAt = transaction.CreatedAt
	m.Transactions = append(m.Transactions, &domain.TransactionWithCategory{Transaction: *transaction})
	return transaction, nil
}

// GetByID retrieves a transaction by ID
func (m *MockTransactionRepository) GetByID(id uuid.UUID) (*domain.TransactionWithCategory, error) {
	for _, tx := range m.Transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) matches(tx *domain.TransactionWithCategory, filters *domain.TransactionFilters) bool {
	if filters == nil {
		return true
	}
	if filters.Type != nil && tx.Type != *filters.Type {
		return false
	}
	if filters.CategoryID != nil && tx.CategoryID != *filters.CategoryID {
		return false
	}
	if filters.StartDate != nil && tx.Date.Before(*filters.StartDate) {
		return false
	}
	if filters.EndDate != nil && tx.Date.After(*filters.EndDate) {
		return false
	}
	if filters.MinAmount != nil && tx.Amount.LessThan(*filters.MinAmount) {
		return false
	}
	if filters.MaxAmount != nil && tx.Amount.GreaterThan(*filters.MaxAmount) {
		return false
	}
	if filters.Search != "" {
		needle := strings.ToLower(filters.Search)
		description := ""
		if tx.Description != nil {
			description = strings.ToLower(*tx.Description)
		}
		if !strings.Contains(description, needle) &&
			!strings.Contains(strings.ToLower(tx.CategoryName), needle) {
			return false
		}
	}
	return true
}

func (m *MockTransactionRepository) filtered(filters *domain.TransactionFilters) []*domain.TransactionWithCategory {
	var result []*domain.TransactionWithCategory
	for _, tx := range m.Transactions {
		if m.matches(tx, filters) {
			result = append(result, tx)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result
}

// List retrieves transactions matching the filters with pagination
func (m *MockTransactionRepository) List(filters *domain.TransactionFilters) (*domain.PaginatedTransactions, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	all := m.filtered(filters)

	page := int32(1)
	pageSize := int32(domain.DefaultPageSize)
	if filters != nil {
		if filters.Page > 0 {
			page = filters.Page
		}
		if filters.PageSize > 0 {
			pageSize = filters.PageSize
			if pageSize > domain.MaxPageSize {
				pageSize = domain.MaxPageSize
			}
		}
	}

	start := int((page - 1) * pageSize)
	if start > len(all) {
		start = len(all)
	}
	end := start + int(pageSize)
	if end > len(all) {
		end = len(all)
	}

	totalPages := int32((int64(len(all)) + int64(pageSize) - 1) / int64(pageSize))

	return &domain.PaginatedTransactions{
		Data:       all[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalItems: int64(len(all)),
		TotalPages: totalPages,
	}, nil
}

// ListAll retrieves all transactions matching the filters without pagination
func (m *MockTransactionRepository) ListAll(filters *domain.TransactionFilters) ([]*domain.TransactionWithCategory, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.filtered(filters), nil
}

// Update replaces a transaction's fields
func (m *MockTransactionRepository) Update(transaction *domain.Transaction) (*domain.Transaction, error) {
	for _, tx := range m.Transactions {
		if tx.ID == transaction.ID {
			transaction.UpdatedAt = time.Now()
			tx.Transaction = *transaction
			return transaction, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

// Delete removes a transaction
func (m *MockTransactionRepository) Delete(id uuid.UUID) error {
	for i, tx := range m.Transactions {
		if tx.ID == id {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

// ExistsSimilar reports whether a transaction with the same amount and
// category exists within the window around the given date
func (m *MockTransactionRepository) ExistsSimilar(amount decimal.Decimal, categoryID uuid.UUID, date time.Time, window time.Duration) (bool, error) {
	for _, tx := range m.Transactions {
		if tx.CategoryID == categoryID && tx.Amount.Equal(amount) {
			diff := tx.Date.Sub(date)
			if diff < 0 {
				diff = -diff
			}
			if diff <= window {
				return true, nil
			}
		}
	}
	return false, nil
}

// CountByCategory counts transactions referencing a category
func (m *MockTransactionRepository) CountByCategory(categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, tx := range m.Transactions {
		if tx.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}
