package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campus-kit/complaint-service/internal/domain"
)

// ComplaintFilter captures listing parameters. A nil AuthorID means the
// caller is unscoped (admin view).
type ComplaintFilter struct {
	AuthorID   *string
	Statuses   []domain.ComplaintStatus
	Priorities []domain.ComplaintPriority
	Categories []domain.ComplaintCategory
	SearchTerm *string
	Limit      int
	Offset     int
}

// ComplaintRepository encapsulates complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id string) (*domain.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) (*domain.Complaint, error)
	ListWithFilter(ctx context.Context, filter ComplaintFilter) ([]domain.Complaint, error)
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (author_account_id, title, description, category, priority, status, location, deadline)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		complaint.AuthorID,
		complaint.Title,
		complaint.Description,
		complaint.Category,
		complaint.Priority,
		complaint.Status,
		complaint.Location,
		complaint.Deadline,
	).Scan(&complaint.ID, &complaint.CreatedAt, &complaint.UpdatedAt)
}

func (r *complaintRepository) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	const query = `
        SELECT id, author_account_id, title, description, category, priority, status, location, deadline, created_at, updated_at
        FROM complaints WHERE id=$1`

	var complaint domain.Complaint
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&complaint.ID,
		&complaint.AuthorID,
		&complaint.Title,
		&complaint.Description,
		&complaint.Category,
		&complaint.Priority,
		&complaint.Status,
		&complaint.Location,
		&complaint.Deadline,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &complaint, nil
}

// UpdateStatus persists a new status and returns the stored row. Last
// writer wins; there is no version check at this boundary.
func (r *complaintRepository) UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	const query = `
        UPDATE complaints SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING id, author_account_id, title, description, category, priority, status, location, deadline, created_at, updated_at`

	var complaint domain.Complaint
	if err := r.pool.QueryRow(ctx, query, status, id).Scan(
		&complaint.ID,
		&complaint.AuthorID,
		&complaint.Title,
		&complaint.Description,
		&complaint.Category,
		&complaint.Priority,
		&complaint.Status,
		&complaint.Location,
		&complaint.Deadline,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) ListWithFilter(ctx context.Context, filter ComplaintFilter) ([]domain.Complaint, error) {
	base := `SELECT id, author_account_id, title, description, category, priority, status, location, deadline, created_at, updated_at
             FROM complaints`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.AuthorID != nil {
		args = append(args, *filter.AuthorID)
		clauses = append(clauses, fmt.Sprintf("author_account_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if len(filter.Priorities) > 0 {
		placeholders := make([]string, len(filter.Priorities))
		for i, pr := range filter.Priorities {
			args = append(args, pr)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("priority IN (%s)", strings.Join(placeholders, ",")))
	}
	if len(filter.Categories) > 0 {
		placeholders := make([]string, len(filter.Categories))
		for i, cat := range filter.Categories {
			args = append(args, cat)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("category IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(title) LIKE %s OR LOWER(description) LIKE %s)", placeholder, placeholder))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func scanComplaints(rows pgx.Rows) ([]domain.Complaint, error) {
	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := rows.Scan(
			&complaint.ID,
			&complaint.AuthorID,
			&complaint.Title,
			&complaint.Description,
			&complaint.Category,
			&complaint.Priority,
			&complaint.Status,
			&complaint.Location,
			&complaint.Deadline,
			&complaint.CreatedAt,
			&complaint.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, complaint)
	}
	return result, rows.Err()
}
