package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	CollectionSaved       = "saved"
	CollectionProspection = "prospection"
)

// Membership marks that a lead belongs to a user-curated collection
// (saved or prospection). The composite key is (collection, leadId, userId).
type Membership struct {
	ID         string    `json:"id"`
	Collection string    `json:"-"`
	LeadID     string    `json:"leadId"`
	UserID     string    `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`

	// Lead carries the joined lead record on listings. Nil elsewhere.
	Lead *Lead `json:"lead,omitempty"`
}

func NewMembership(collection, leadID, userID string) *Membership {
	return &Membership{
		ID:         uuid.New().String(),
		Collection: collection,
		LeadID:     leadID,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}
}

type MembershipRepository interface {
	// Upsert inserts the membership or, when (collection, leadId, userId)
	// already exists, loads the existing row into m. Never duplicates.
	Upsert(ctx context.Context, m *Membership) error

	// Insert writes the row as-is, preserving id and createdAt. A duplicate
	// key is treated as success. Used to restore a cascade snapshot.
	Insert(ctx context.Context, m *Membership) error

	FindByCollection(ctx context.Context, collection string) ([]*Membership, error)
	FindByLead(ctx context.Context, leadID string) ([]*Membership, error)

	// DeleteByLead removes every membership for the lead in one collection.
	// Deleting a non-member is not an error.
	DeleteByLead(ctx context.Context, collection, leadID string) error

	// PurgeForLead removes the lead's memberships across both collections.
	PurgeForLead(ctx context.Context, leadID string) error
}
