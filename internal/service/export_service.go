package service

import (
	"github.com/minhvu/soquy/soquy-backend/internal/domain"
	"github.com/minhvu/soquy/soquy-backend/internal/export"
)

// ExportService produces downloadable CSV documents from filtered,
// unpaginated transaction lists.
type ExportService struct {
	transactionRepo domain.TransactionRepository
}

// NewExportService creates a new ExportService
func NewExportService(transactionRepo domain.TransactionRepository) *ExportService {
	return &ExportService{transactionRepo: transactionRepo}
}

// ExportResult is a rendered CSV document and its download filename.
type ExportResult struct {
	Content  string
	Filename string
	Count    int
}

// ExportCSV fetches every transaction matching the filters and renders the
// CSV document. Returns domain.ErrNotFound when nothing matches, so the
// handler can answer 404 instead of serving an empty file.
func (s *ExportService) ExportCSV(filters *domain.TransactionFilters) (*ExportResult, error) {
	transactions, err := s.transactionRepo.ListAll(filters)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, domain.ErrNotFound
	}

	return &ExportResult{
		Content:  export.GenerateCSV(transactions),
		Filename: export.GenerateFilename("transactions"),
		Count:    len(transactions),
	}, nil
}
