package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type MembershipRepository struct {
	DB *sql.DB
}

func NewMembershipRepository(db *sql.DB) *MembershipRepository {
	return &MembershipRepository{DB: db}
}

// Upsert is an upsert-by-composite-key on (collection, lead_id, user_id).
// On conflict the no-op SET makes RETURNING yield the existing row, so the
// caller gets the original id and createdAt back instead of a duplicate.
func (r *MembershipRepository) Upsert(ctx context.Context, m *entity.Membership) error {
	query := `
		INSERT INTO lead_memberships (id, collection, lead_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (collection, lead_id, user_id)
		DO UPDATE SET lead_id = EXCLUDED.lead_id
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(ctx, query,
		m.ID,
		m.Collection,
		m.LeadID,
		m.UserID,
		m.CreatedAt,
	).Scan(&m.ID, &m.CreatedAt)
}

// Insert restores a snapshotted membership verbatim. A duplicate key means
// the row is already back, which is fine for a rollback.
func (r *MembershipRepository) Insert(ctx context.Context, m *entity.Membership) error {
	query := `
		INSERT INTO lead_memberships (id, collection, lead_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		m.ID, m.Collection, m.LeadID, m.UserID, m.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil
		}
		return err
	}

	return nil
}

// FindByCollection lists a collection's memberships joined with their leads,
// oldest first.
func (r *MembershipRepository) FindByCollection(ctx context.Context, collection string) ([]*entity.Membership, error) {
	query := `
		SELECT m.id, m.collection, m.lead_id, m.user_id, m.created_at,
		       l.id, l.name, l.email,
		       COALESCE(l.company, ''), COALESCE(l.phone, ''), COALESCE(l.position, ''),
		       l.status, COALESCE(l.source, ''), COALESCE(l.notes, ''),
		       l.created_at, l.updated_at
		FROM lead_memberships m
		JOIN leads l ON l.id = m.lead_id
		WHERE m.collection = $1
		ORDER BY m.created_at ASC, m.id ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memberships := []*entity.Membership{}
	for rows.Next() {
		m := &entity.Membership{Lead: &entity.Lead{}}
		if err := rows.Scan(
			&m.ID, &m.Collection, &m.LeadID, &m.UserID, &m.CreatedAt,
			&m.Lead.ID, &m.Lead.Name, &m.Lead.Email,
			&m.Lead.Company, &m.Lead.Phone, &m.Lead.Position,
			&m.Lead.Status, &m.Lead.Source, &m.Lead.Notes,
			&m.Lead.CreatedAt, &m.Lead.UpdatedAt,
		); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}

	return memberships, rows.Err()
}

// FindByLead returns the lead's memberships across both collections. Used as
// the cascade snapshot, so no join is needed.
func (r *MembershipRepository) FindByLead(ctx context.Context, leadID string) ([]*entity.Membership, error) {
	query := `
		SELECT id, collection, lead_id, user_id, created_at
		FROM lead_memberships
		WHERE lead_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memberships := []*entity.Membership{}
	for rows.Next() {
		m := &entity.Membership{}
		if err := rows.Scan(&m.ID, &m.Collection, &m.LeadID, &m.UserID, &m.CreatedAt); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}

	return memberships, rows.Err()
}

func (r *MembershipRepository) DeleteByLead(ctx context.Context, collection, leadID string) error {
	// Zero deleted rows is still success: removes must never be blocked by
	// "nothing to delete".
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM lead_memberships WHERE collection = $1 AND lead_id = $2`,
		collection, leadID,
	)
	return err
}

func (r *MembershipRepository) PurgeForLead(ctx context.Context, leadID string) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM lead_memberships WHERE lead_id = $1`,
		leadID,
	)
	return err
}
