package domain

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Type      TransactionType `json:"type"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CategoryWithCount carries the number of transactions referencing the
// category, used by the detail endpoint and the delete guard.
type CategoryWithCount struct {
	Category
	TransactionCount int64 `json:"transactionCount"`
}

type CategoryRepository interface {
	Create(category *Category) (*Category, error)
	GetByID(id uuid.UUID) (*Category, error)
	GetByName(name string) (*Category, error)
	GetAll(typeFilter *TransactionType) ([]*Category, error)
	Update(category *Category) (*Category, error)
	Delete(id uuid.UUID) error
	TransactionCount(id uuid.UUID) (int64, error)
}
