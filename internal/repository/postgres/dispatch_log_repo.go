package postgres

import (
	"context"
	"database/sql"

	"weddinginvites/internal/domain"
)

type dispatchLogRepository struct {
	DB *sql.DB
}

// NewDispatchLogRepository returns an append-only store for terminal dispatch job states.
func NewDispatchLogRepository(db *sql.DB) domain.DispatchLogRepository {
	return &dispatchLogRepository{DB: db}
}

func (r *dispatchLogRepository) Record(ctx context.Context, e *domain.DispatchLogEntry) error {
	query := `
		INSERT INTO dispatch_log (job_id, recipient, subject, state, error, fire_at, done_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query, e.JobID, e.Recipient, e.Subject, string(e.State), e.Error, e.FireAt, e.DoneAt)
	return err
}
