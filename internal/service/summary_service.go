package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/minhvu/soquy/soquy-backend/internal/domain"
	"github.com/minhvu/soquy/soquy-backend/internal/period"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// SummaryService reduces a period's transactions into the dashboard summary:
// grand totals, net balance and a per-category breakdown with percentage
// shares. The reduction is pure; fetching the transactions for a period is
// the repository's job.
type SummaryService struct {
	transactionRepo domain.TransactionRepository
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(transactionRepo domain.TransactionRepository) *SummaryService {
	return &SummaryService{transactionRepo: transactionRepo}
}

// Summarize aggregates the given transactions into per-category totals and
// running grand totals. Percentages are shares of the grand total of the
// category's own type, rounded to two decimal places; when that grand total
// is zero the percentage is zero. Categories are ordered by amount
// descending, ties keeping first-seen order.
func (s *SummaryService) Summarize(transactions []*domain.TransactionWithCategory) *domain.Summary {
	summary := &domain.Summary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		ByCategory:    []*domain.CategorySummary{},
	}

	buckets := make(map[uuid.UUID]*domain.CategorySummary)

	for _, tx := range transactions {
		summary.TransactionCount++

		if tx.Type == domain.TransactionTypeIncome {
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
		} else {
			summary.TotalExpenses = summary.TotalExpenses.Add(tx.Amount)
		}

		if bucket, ok := buckets[tx.CategoryID]; ok {
			bucket.Amount = bucket.Amount.Add(tx.Amount)
			bucket.Count++
			continue
		}

		bucket := &domain.CategorySummary{
			CategoryID:   tx.CategoryID,
			CategoryName: tx.CategoryName,
			Type:         tx.Type,
			Amount:       tx.Amount,
			Count:        1,
		}
		buckets[tx.CategoryID] = bucket
		summary.ByCategory = append(summary.ByCategory, bucket)
	}

	summary.NetBalance = summary.TotalIncome.Sub(summary.TotalExpenses)

	for _, bucket := range summary.ByCategory {
		total := summary.TotalExpenses
		if bucket.Type == domain.TransactionTypeIncome {
			total = summary.TotalIncome
		}

		if total.IsZero() {
			bucket.Percentage = decimal.Zero
			continue
		}
		bucket.Percentage = bucket.Amount.Div(total).Mul(oneHundred).Round(2)
	}

	sort.SliceStable(summary.ByCategory, func(i, j int) bool {
		return summary.ByCategory[i].Amount.GreaterThan(summary.ByCategory[j].Amount)
	})

	return summary
}

// PeriodSummary contains the aggregation result together with the period
// boundaries it was computed for, the shape of the summary endpoint response.
type PeriodSummary struct {
	Summary   *domain.Summary
	DateRange period.DateRange
}

// SummarizeRange fetches the transactions inside [start, end] and reduces
// them. The end boundary is normalized to end-of-day before querying.
func (s *SummaryService) SummarizeRange(start, end time.Time, g period.Granularity) (*PeriodSummary, error) {
	end = period.EndOfDay(end)

	transactions, err := s.transactionRepo.ListAll(&domain.TransactionFilters{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	return &PeriodSummary{
		Summary:   s.Summarize(transactions),
		DateRange: period.DateRange{Start: start, End: end, Granularity: g},
	}, nil
}

// SummarizePeriod resolves the period containing the reference date and
// aggregates its transactions.
func (s *SummaryService) SummarizePeriod(reference time.Time, g period.Granularity) (*PeriodSummary, error) {
	r := period.Range(reference, g)

	transactions, err := s.transactionRepo.ListAll(&domain.TransactionFilters{
		StartDate: &r.Start,
		EndDate:   &r.End,
	})
	if err != nil {
		return nil, err
	}

	return &PeriodSummary{Summary: s.Summarize(transactions), DateRange: r}, nil
}
