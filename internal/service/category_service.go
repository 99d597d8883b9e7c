package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/minhvu/soquy/soquy-backend/internal/domain"
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory validates and creates a new category. Names are unique
// across both types.
func (s *CategoryService) CreateCategory(name string, categoryType domain.TransactionType) (*domain.Category, error) {
	name, err := validateCategoryName(name)
	if err != nil {
		return nil, err
	}
	if !categoryType.IsValid() {
		return nil, domain.ErrInvalidTransactionType
	}

	if _, err := s.categoryRepo.GetByName(name); err == nil {
		return nil, domain.ErrCategoryNameTaken
	} else if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}

	category := &domain.Category{
		Name: name,
		Type: categoryType,
	}

	return s.categoryRepo.Create(category)
}

// GetCategories retrieves all categories, optionally filtered by type,
// ordered by name
func (s *CategoryService) GetCategories(typeFilter *domain.TransactionType) ([]*domain.Category, error) {
	if typeFilter != nil && !typeFilter.IsValid() {
		return nil, domain.ErrInvalidTransactionType
	}
	return s.categoryRepo.GetAll(typeFilter)
}

// GetCategory retrieves a category with its transaction count
func (s *CategoryService) GetCategory(id uuid.UUID) (*domain.CategoryWithCount, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	count, err := s.categoryRepo.TransactionCount(id)
	if err != nil {
		return nil, err
	}

	return &domain.CategoryWithCount{Category: *category, TransactionCount: count}, nil
}

// UpdateCategory validates and updates a category's name and type
func (s *CategoryService) UpdateCategory(id uuid.UUID, name string, categoryType domain.TransactionType) (*domain.Category, error) {
	name, err := validateCategoryName(name)
	if err != nil {
		return nil, err
	}
	if !categoryType.IsValid() {
		return nil, domain.ErrInvalidTransactionType
	}

	existing, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if name != existing.Name {
		other, err := s.categoryRepo.GetByName(name)
		if err == nil && other.ID != id {
			return nil, domain.ErrCategoryNameTaken
		}
		if err != nil && !errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, err
		}
	}

	existing.Name = name
	existing.Type = categoryType
	return s.categoryRepo.Update(existing)
}

// DeleteCategory removes a category. Deletion is refused while any
// transaction still references it.
func (s *CategoryService) DeleteCategory(id uuid.UUID) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return err
	}

	count, err := s.categoryRepo.TransactionCount(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoryInUse
	}

	return s.categoryRepo.Delete(id)
}

func validateCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrNameRequired
	}
	if len([]rune(name)) > domain.MaxCategoryNameLength {
		return "", domain.ErrNameTooLong
	}
	return name, nil
}
