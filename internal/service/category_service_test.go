package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/minhvu/soquy/soquy-backend/internal/domain"
	"github.com/minhvu/soquy/soquy-backend/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	tests := []struct {
		name         string
		categoryName string
		categoryType domain.TransactionType
		wantErr      error
	}{
		{"valid expense category", "Ăn uống", domain.TransactionTypeExpense, nil},
		{"valid income category", "Lương", domain.TransactionTypeIncome, nil},
		{"empty name", "", domain.TransactionTypeExpense, domain.ErrNameRequired},
		{"whitespace only name", "   ", domain.TransactionTypeExpense, domain.ErrNameRequired},
		{"name too long", strings.Repeat("a", 51), domain.TransactionTypeExpense, domain.ErrNameTooLong},
		{"invalid type", "Khác", "transfer", domain.ErrInvalidTransactionType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCategoryService(testutil.NewMockCategoryRepository())

			category, err := s.CreateCategory(tt.categoryName, tt.categoryType)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateCategory error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && category.ID == uuid.Nil {
				t.Error("created category has no ID")
			}
		})
	}
}

func TestCreateCategory_TrimsName(t *testing.T) {
	s := NewCategoryService(testutil.NewMockCategoryRepository())

	category, err := s.CreateCategory("  Ăn uống  ", domain.TransactionTypeExpense)
	if err != nil {
		t.Fatalf("CreateCategory returned error: %v", err)
	}
	if category.Name != "Ăn uống" {
		t.Errorf("name = %q, want trimmed", category.Name)
	}
}

func TestCreateCategory_FiftyRuneNameAllowed(t *testing.T) {
	s := NewCategoryService(testutil.NewMockCategoryRepository())

	// Rune count matters, not byte count: 50 Vietnamese characters are fine.
	name := strings.Repeat("ă", 50)
	if _, err := s.CreateCategory(name, domain.TransactionTypeExpense); err != nil {
		t.Errorf("50-rune name rejected: %v", err)
	}
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	s := NewCategoryService(testutil.NewMockCategoryRepository())

	if _, err := s.CreateCategory("Ăn uống", domain.TransactionTypeExpense); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := s.CreateCategory("Ăn uống", domain.TransactionTypeIncome); !errors.Is(err, domain.ErrCategoryNameTaken) {
		t.Errorf("expected ErrCategoryNameTaken, got %v", err)
	}
}

func TestGetCategories_TypeFilter(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	s := NewCategoryService(categoryRepo)

	seedCategory(categoryRepo, "Lương", domain.TransactionTypeIncome)
	seedCategory(categoryRepo, "Ăn uống", domain.TransactionTypeExpense)
	seedCategory(categoryRepo, "Di chuyển", domain.TransactionTypeExpense)

	expense := domain.TransactionTypeExpense
	categories, err := s.GetCategories(&expense)
	if err != nil {
		t.Fatalf("GetCategories returned error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(categories))
	}
	for _, c := range categories {
		if c.Type != domain.TransactionTypeExpense {
			t.Errorf("category %q has type %s", c.Name, c.Type)
		}
	}

	all, err := s.GetCategories(nil)
	if err != nil {
		t.Fatalf("GetCategories(nil) returned error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d categories, want 3", len(all))
	}
}

func TestGetCategory_IncludesTransactionCount(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	s := NewCategoryService(categoryRepo)

	category := seedCategory(categoryRepo, "Ăn uống", domain.TransactionTypeExpense)
	categoryRepo.Counts[category.ID] = 7

	got, err := s.GetCategory(category.ID)
	if err != nil {
		t.Fatalf("GetCategory returned error: %v", err)
	}
	if got.TransactionCount != 7 {
		t.Errorf("transactionCount = %d, want 7", got.TransactionCount)
	}
}

func TestUpdateCategory_RenameToExistingName(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	s := NewCategoryService(categoryRepo)

	seedCategory(categoryRepo, "Ăn uống", domain.TransactionTypeExpense)
	target := seedCategory(categoryRepo, "Di chuyển", domain.TransactionTypeExpense)

	if _, err := s.UpdateCategory(target.ID, "Ăn uống", domain.TransactionTypeExpense); !errors.Is(err, domain.ErrCategoryNameTaken) {
		t.Errorf("expected ErrCategoryNameTaken, got %v", err)
	}

	// Keeping its own name is not a conflict.
	if _, err := s.UpdateCategory(target.ID, "Di chuyển", domain.TransactionTypeIncome); err != nil {
		t.Errorf("self-rename failed: %v", err)
	}
}

func TestDeleteCategory_RefusedWhileInUse(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	s := NewCategoryService(categoryRepo)

	category := seedCategory(categoryRepo, "Ăn uống", domain.TransactionTypeExpense)
	categoryRepo.Counts[category.ID] = 1

	if err := s.DeleteCategory(category.ID); !errors.Is(err, domain.ErrCategoryInUse) {
		t.Errorf("expected ErrCategoryInUse, got %v", err)
	}

	categoryRepo.Counts[category.ID] = 0
	if err := s.DeleteCategory(category.ID); err != nil {
		t.Errorf("delete of unused category failed: %v", err)
	}
}

func TestDeleteCategory_NotFound(t *testing.T) {
	s := NewCategoryService(testutil.NewMockCategoryRepository())

	if err := s.DeleteCategory(uuid.New()); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}
