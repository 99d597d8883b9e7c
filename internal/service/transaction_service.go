package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/minhvu/soquy/soquy-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// TransactionService handles transaction business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository, categoryRepo domain.CategoryRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// CreateTransactionInput contains the fields for creating a transaction
type CreateTransactionInput struct {
	Amount      decimal.Decimal
	Type        domain.TransactionType
	CategoryID  uuid.UUID
	Date        time.Time
	Description *string
}

// CreateTransaction validates and creates a new transaction. Submitting the
// same amount and category within a minute of an existing transaction is
// rejected as an accidental double submission.
func (s *TransactionService) CreateTransaction(input CreateTransactionInput) (*domain.Transaction, error) {
	if err := validateTransactionInput(input.Amount, input.Type, input.Description); err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.GetByID(input.CategoryID); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}

	duplicate, err := s.transactionRepo.ExistsSimilar(input.Amount, input.CategoryID, input.Date, domain.DuplicateWindow)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, domain.ErrDuplicateTransaction
	}

	transaction := &domain.Transaction{
		Amount:      input.Amount,
		Type:        input.Type,
		CategoryID:  input.CategoryID,
		Date:        input.Date,
		Description: input.Description,
	}

	return s.transactionRepo.Create(transaction)
}

// GetTransaction retrieves a transaction with its category resolved
func (s *TransactionService) GetTransaction(id uuid.UUID) (*domain.TransactionWithCategory, error) {
	return s.transactionRepo.GetByID(id)
}

// GetTransactions retrieves transactions matching the filters, newest first
func (s *TransactionService) GetTransactions(filters *domain.TransactionFilters) (*domain.PaginatedTransactions, error) {
	return s.transactionRepo.List(filters)
}

// UpdateTransactionInput contains the fields for updating a transaction
type UpdateTransactionInput struct {
	Amount      decimal.Decimal
	Type        domain.TransactionType
	CategoryID  uuid.UUID
	Date        time.Time
	Description *string
}

// UpdateTransaction validates and replaces a transaction's mutable fields
func (s *TransactionService) UpdateTransaction(id uuid.UUID, input UpdateTransactionInput) (*domain.Transaction, error) {
	if err := validateTransactionInput(input.Amount, input.Type, input.Description); err != nil {
		return nil, err
	}

	existing, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.GetByID(input.CategoryID); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}

	updated := existing.Transaction
	updated.Amount = input.Amount
	updated.Type = input.Type
	updated.CategoryID = input.CategoryID
	updated.Date = input.Date
	updated.Description = input.Description

	return s.transactionRepo.Update(&updated)
}

// DeleteTransaction removes a transaction
func (s *TransactionService) DeleteTransaction(id uuid.UUID) error {
	if _, err := s.transactionRepo.GetByID(id); err != nil {
		return err
	}
	return s.transactionRepo.Delete(id)
}

func validateTransactionInput(amount decimal.Decimal, txType domain.TransactionType, description *string) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if amount.Exponent() < -2 && !amount.Equal(amount.Round(2)) {
		return domain.ErrAmountPrecision
	}
	if !txType.IsValid() {
		return domain.ErrInvalidTransactionType
	}
	if description != nil && len([]rune(*description)) > domain.MaxDescriptionLength {
		return domain.ErrDescriptionTooLong
	}
	return nil
}
