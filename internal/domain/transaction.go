package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether the transaction type is one of the two enumerated values.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Date        time.Time       `json:"date"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TransactionWithCategory is a transaction with its category resolved,
// the shape consumed by the summary engine and the CSV exporter.
type TransactionWithCategory struct {
	Transaction
	CategoryName string          `json:"categoryName"`
	CategoryType TransactionType `json:"categoryType"`
}

type TransactionFilters struct {
	Type       *TransactionType
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Page       int32
	PageSize   int32
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type PaginatedTransactions struct {
	Data       []*TransactionWithCategory `json:"data"`
	Page       int32                      `json:"page"`
	PageSize   int32                      `json:"pageSize"`
	TotalItems int64                      `json:"totalItems"`
	TotalPages int32                      `json:"totalPages"`
}

// DuplicateWindow is how close two otherwise-identical transactions must be
// in time to be treated as an accidental double submission.
const DuplicateWindow = time.Minute

type TransactionRepository interface {
	Create(transaction *Transaction) (*Transaction, error)
	GetByID(id uuid.UUID) (*TransactionWithCategory, error)
	List(filters *TransactionFilters) (*PaginatedTransactions, error)
	ListAll(filters *TransactionFilters) ([]*TransactionWithCategory, error)
	Update(transaction *Transaction) (*Transaction, error)
	Delete(id uuid.UUID) error
	ExistsSimilar(amount decimal.Decimal, categoryID uuid.UUID, date time.Time, window time.Duration) (bool, error)
	CountByCategory(categoryID uuid.UUID) (int64, error)
}
