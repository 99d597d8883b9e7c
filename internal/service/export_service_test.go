package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/minhvu/soquy/soquy-backend/internal/domain"
	"github.com/minhvu/soquy/soquy-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

func TestExportCSV_EmptyIsNotFound(t *testing.T) {
	s := NewExportService(testutil.NewMockTransactionRepository())

	if _, err := s.ExportCSV(nil); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty export, got %v", err)
	}
}

func TestExportCSV(t *testing.T) {
	transactionRepo := testutil.NewMockTransactionRepository()
	s := NewExportService(transactionRepo)

	description := "Bữa trưa"
	transactionRepo.AddTransaction(&domain.TransactionWithCategory{
		Transaction: domain.Transaction{
			Amount:      decimal.NewFromInt(45000),
			Type:        domain.TransactionTypeExpense,
			CategoryID:  uuid.New(),
			Date:        time.Date(2025, time.December, 18, 12, 0, 0, 0, time.Local),
			Description: &description,
		},
		CategoryName: "Ăn uống",
		CategoryType: domain.TransactionTypeExpense,
	})

	result, err := s.ExportCSV(nil)
	if err != nil {
		t.Fatalf("ExportCSV returned error: %v", err)
	}
	if result.Count != 1 {
		t.Errorf("count = %d, want 1", result.Count)
	}
	if !strings.Contains(result.Content, "18/12/2025,Chi tiêu,Ăn uống,45.000,Bữa trưa") {
		t.Errorf("CSV missing expected row:\n%s", result.Content)
	}
	if !strings.HasPrefix(result.Filename, "transactions_") || !strings.HasSuffix(result.Filename, ".csv") {
		t.Errorf("unexpected filename %q", result.Filename)
	}
}

func TestExportCSV_AppliesFilters(t *testing.T) {
	transactionRepo := testutil.NewMockTransactionRepository()
	s := NewExportService(transactionRepo)

	food := uuid.New()
	salary := uuid.New()
	day := time.Date(2025, time.December, 18, 12, 0, 0, 0, time.Local)

	transactionRepo.AddTransaction(&domain.TransactionWithCategory{
		Transaction: domain.Transaction{
			Amount: decimal.NewFromInt(45000), Type: domain.TransactionTypeExpense,
			CategoryID: food, Date: day,
		},
		CategoryName: "Ăn uống",
	})
	transactionRepo.AddTransaction(&domain.TransactionWithCategory{
		Transaction: domain.Transaction{
			Amount: decimal.NewFromInt(20000000), Type: domain.TransactionTypeIncome,
			CategoryID: salary, Date: day,
		},
		CategoryName: "Lương",
	})

	income := domain.TransactionTypeIncome
	result, err := s.ExportCSV(&domain.TransactionFilters{Type: &income})
	if err != nil {
		t.Fatalf("ExportCSV returned error: %v", err)
	}
	if result.Count != 1 {
		t.Errorf("count = %d, want 1", result.Count)
	}
	if strings.Contains(result.Content, "Ăn uống") {
		t.Error("filtered export still contains the expense row")
	}
	if !strings.Contains(result.Content, "20.000.000") {
		t.Error("export missing the income amount")
	}
}
