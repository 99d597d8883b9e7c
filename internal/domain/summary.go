package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategorySummary is one row of the dashboard category breakdown: the total,
// transaction count and share of its type's grand total for a single category.
type CategorySummary struct {
	CategoryID   uuid.UUID       `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Type         TransactionType `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Count        int             `json:"count"`
	Percentage   decimal.Decimal `json:"percentage"`
}

// Summary is the result of aggregating a period's transactions.
// NetBalance is signed; a negative balance is meaningful, not an error.
type Summary struct {
	TotalIncome      decimal.Decimal    `json:"totalIncome"`
	TotalExpenses    decimal.Decimal    `json:"totalExpenses"`
	NetBalance       decimal.Decimal    `json:"netBalance"`
	TransactionCount int                `json:"transactionCount"`
	ByCategory       []*CategorySummary `json:"byCategory"`
}
