package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

const contactColumns = `
	id, lead_id, type, recipient, COALESCE(subject, ''), content, status, user_id, created_at
`

func (r *ContactRepository) Insert(ctx context.Context, record *entity.ContactRecord) error {
	query := `
		INSERT INTO contact_records (id, lead_id, type, recipient, subject, content, status, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.LeadID,
		record.Type,
		record.Recipient,
		nullString(record.Subject),
		record.Content,
		record.Status,
		record.UserID,
		record.CreatedAt,
	)

	return err
}

func (r *ContactRepository) FindAll(ctx context.Context) ([]*entity.ContactRecord, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_records ORDER BY created_at ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanContactRecords(rows)
}

func (r *ContactRepository) FindByLead(ctx context.Context, leadID string) ([]*entity.ContactRecord, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_records WHERE lead_id = $1 ORDER BY created_at ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanContactRecords(rows)
}

func (r *ContactRepository) PurgeForLead(ctx context.Context, leadID string) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM contact_records WHERE lead_id = $1`,
		leadID,
	)
	return err
}

func scanContactRecords(rows *sql.Rows) ([]*entity.ContactRecord, error) {
	records := []*entity.ContactRecord{}
	for rows.Next() {
		rec := &entity.ContactRecord{}
		if err := rows.Scan(
			&rec.ID, &rec.LeadID, &rec.Type, &rec.Recipient,
			&rec.Subject, &rec.Content, &rec.Status, &rec.UserID, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
