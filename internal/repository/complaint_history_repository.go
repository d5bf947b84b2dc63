package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campus-kit/complaint-service/internal/domain"
)

// ComplaintHistoryRepository persists the status-change audit trail.
type ComplaintHistoryRepository interface {
	Create(ctx context.Context, entry *domain.ComplaintHistory) error
	ListByComplaint(ctx context.Context, complaintID string, limit, offset int) ([]domain.ComplaintHistory, error)
}

type complaintHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintHistoryRepository instantiates repository.
func NewComplaintHistoryRepository(pool *pgxpool.Pool) ComplaintHistoryRepository {
	return &complaintHistoryRepository{pool: pool}
}

func (r *complaintHistoryRepository) Create(ctx context.Context, entry *domain.ComplaintHistory) error {
	const query = `
        INSERT INTO complaint_history (complaint_id, actor_account_id, old_status, new_status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		entry.ComplaintID,
		entry.ActorID,
		entry.OldStatus,
		entry.NewStatus,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *complaintHistoryRepository) ListByComplaint(ctx context.Context, complaintID string, limit, offset int) ([]domain.ComplaintHistory, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
        SELECT id, complaint_id, actor_account_id, old_status, new_status, created_at
        FROM complaint_history
        WHERE complaint_id=$1
        ORDER BY created_at ASC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, complaintID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ComplaintHistory
	for rows.Next() {
		var entry domain.ComplaintHistory
		if err := rows.Scan(
			&entry.ID,
			&entry.ComplaintID,
			&entry.ActorID,
			&entry.OldStatus,
			&entry.NewStatus,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
