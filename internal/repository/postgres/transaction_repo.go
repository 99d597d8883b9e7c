package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minhvu/soquy/soquy-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `t.id, t.amount, t.type, t.category_id, t.date, t.description,
	t.created_at, t.updated_at, c.name, c.type`

// Create creates a new transaction
func (r *TransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(transaction.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO transactions (amount, type, category_id, date, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, amount, type, category_id, date, description, created_at, updated_at`,
		amount, string(transaction.Type), transaction.CategoryID, transaction.Date, transaction.Description)

	return scanTransaction(row)
}

// GetByID retrieves a transaction with its category resolved
func (r *TransactionRepository) GetByID(id uuid.UUID) (*domain.TransactionWithCategory, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx,
		`SELECT `+transactionColumns+`
		 FROM transactions t
		 JOIN categories c ON c.id = t.category_id
		 WHERE t.id = $1`, id)

	tx, err := scanTransactionWithCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return tx, nil
}

// buildFilterClause translates filters into a WHERE clause. The returned
// args slice lines up with the $n placeholders embedded in the clause.
func buildFilterClause(filters *domain.TransactionFilters) (string, []any) {
	if filters == nil {
		return "", nil
	}

	var conditions []string
	var args []any

	add := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filters.Type != nil {
		add("t.type = $%d", string(*filters.Type))
	}
	if filters.CategoryID != nil {
		add("t.category_id = $%d", *filters.CategoryID)
	}
	if filters.StartDate != nil {
		add("t.date >= $%d", *filters.StartDate)
	}
	if filters.EndDate != nil {
		add("t.date <= $%d", *filters.EndDate)
	}
	if filters.MinAmount != nil {
		add("t.amount >= $%d", filters.MinAmount.String())
	}
	if filters.MaxAmount != nil {
		add("t.amount <= $%d", filters.MaxAmount.String())
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		conditions = append(conditions, fmt.Sprintf(
			"(t.description ILIKE $%d OR c.name ILIKE $%d)", len(args), len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List retrieves transactions matching the filters, newest first, paginated
func (r *TransactionRepository) List(filters *domain.TransactionFilters) (*domain.PaginatedTransactions, error) {
	ctx := context.Background()

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

	where, args := buildFilterClause(filters)

	var total int64
	countQuery := `SELECT COUNT(*) FROM transactions t JOIN categories c ON c.id = t.category_id` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, err
	}

	query := `SELECT ` + transactionColumns + `
		 FROM transactions t
		 JOIN categories c ON c.id = t.category_id` + where +
		fmt.Sprintf(` ORDER BY t.date DESC, t.created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []*domain.TransactionWithCategory{}
	for rows.Next() {
		tx, err := scanTransactionWithCategory(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	totalPages := int32((total + int64(pageSize) - 1) / int64(pageSize))

	return &domain.PaginatedTransactions{
		Data:       transactions,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// ListAll retrieves every transaction matching the filters, newest first.
// Used by the summary and export paths, which must not paginate.
func (r *TransactionRepository) ListAll(filters *domain.TransactionFilters) ([]*domain.TransactionWithCategory, error) {
	ctx := context.Background()

	where, args := buildFilterClause(filters)
	query := `SELECT ` + transactionColumns + `
		 FROM transactions t
		 JOIN categories c ON c.id = t.category_id` + where +
		` ORDER BY t.date DESC, t.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []*domain.TransactionWithCategory{}
	for rows.Next() {
		tx, err := scanTransactionWithCategory(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

// Update replaces a transaction's mutable fields
func (r *TransactionRepository) Update(transaction *domain.Transaction) (*domain.Transaction, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(transaction.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx,
		`UPDATE transactions
		 SET amount = $2, type = $3, category_id = $4, date = $5, description = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING id, amount, type, category_id, date, description, created_at, updated_at`,
		transaction.ID, amount, string(transaction.Type), transaction.CategoryID,
		transaction.Date, transaction.Description)

	updated, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// ExistsSimilar reports whether a transaction with the same amount and
// category was recorded within the window around the given date
func (r *TransactionRepository) ExistsSimilar(amount decimal.Decimal, categoryID uuid.UUID, date time.Time, window time.Duration) (bool, error) {
	ctx := context.Background()

	num, err := decimalToPgNumeric(amount)
	if err != nil {
		return false, fmt.Errorf("invalid amount: %w", err)
	}

	var exists bool
	err = r.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE category_id = $1 AND amount = $2 AND date BETWEEN $3 AND $4
		 )`,
		categoryID, num, date.Add(-window), date.Add(window)).Scan(&exists)
	return exists, err
}

// CountByCategory counts transactions referencing a category
func (r *TransactionRepository) CountByCategory(categoryID uuid.UUID) (int64, error) {
	ctx := context.Background()

	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions WHERE category_id = $1`, categoryID).Scan(&count)
	return count, err
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	var amount pgtype.Numeric
	var date, createdAt, updatedAt pgtype.Timestamptz

	if err := row.Scan(&t.ID, &amount, &t.Type, &t.CategoryID, &date, &t.Description,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	t.Amount = pgNumericToDecimal(amount)
	t.Date = date.Time
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time
	return &t, nil
}

func scanTransactionWithCategory(row pgx.Row) (*domain.TransactionWithCategory, error) {
	var t domain.TransactionWithCategory
	var amount pgtype.Numeric
	var date, createdAt, updatedAt pgtype.Timestamptz

	if err := row.Scan(&t.ID, &amount, &t.Type, &t.CategoryID, &date, &t.Description,
		&createdAt, &updatedAt, &t.CategoryName, &t.CategoryType); err != nil {
		return nil, err
	}

	t.Amount = pgNumericToDecimal(amount)
	t.Date = date.Time
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time
	return &t, nil
}
