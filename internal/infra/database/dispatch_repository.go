package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type DispatchJobRepository struct {
	DB *sql.DB
}

func NewDispatchJobRepository(db *sql.DB) *DispatchJobRepository {
	return &DispatchJobRepository{DB: db}
}

const dispatchColumns = `
	id, channel, recipient, COALESCE(subject, ''), content, status, attempts,
	COALESCE(last_error, ''), COALESCE(lead_id, ''), COALESCE(user_id, ''),
	created_at, completed_at
`

func (r *DispatchJobRepository) Insert(ctx context.Context, job *entity.DispatchJob) error {
	query := `
		INSERT INTO dispatch_jobs (id, channel, recipient, subject, content, status, attempts, lead_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.Channel,
		job.Recipient,
		nullString(job.Subject),
		job.Content,
		job.Status,
		job.Attempts,
		nullString(job.LeadID),
		nullString(job.UserID),
		job.CreatedAt,
	)

	return err
}

func (r *DispatchJobRepository) FindByID(ctx context.Context, id string) (*entity.DispatchJob, error) {
	query := `SELECT ` + dispatchColumns + ` FROM dispatch_jobs WHERE id = $1`

	job, err := scanDispatchJob(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}

	return job, nil
}

// Claim increments attempts only while the job is still pending, which makes
// it the single exclusive owner of this delivery attempt. A terminal job is
// returned unclaimed so the caller can report its final state as a no-op.
func (r *DispatchJobRepository) Claim(ctx context.Context, id string) (*entity.DispatchJob, bool, error) {
	query := `
		UPDATE dispatch_jobs
		SET attempts = attempts + 1
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + dispatchColumns

	job, err := scanDispatchJob(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		job, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, false, err
		}
		return job, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return job, true, nil
}

// Finalize is guarded on status = pending: once sent or failed, the row can
// never be rewritten.
func (r *DispatchJobRepository) Finalize(ctx context.Context, id, status, lastError string, completedAt time.Time) error {
	query := `
		UPDATE dispatch_jobs
		SET status = $2, last_error = $3, completed_at = $4
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.DB.ExecContext(ctx, query, id, status, nullString(lastError), completedAt)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrJobNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDispatchJob(row rowScanner) (*entity.DispatchJob, error) {
	job := &entity.DispatchJob{}
	var completedAt sql.NullTime

	err := row.Scan(
		&job.ID, &job.Channel, &job.Recipient, &job.Subject, &job.Content,
		&job.Status, &job.Attempts, &job.LastError, &job.LeadID, &job.UserID,
		&job.CreatedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}

	if completedAt.Valid {
		job.CompletedAt = &completedAt.Time
	}

	return job, nil
}
