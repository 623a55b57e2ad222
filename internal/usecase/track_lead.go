package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

const defaultUserID = "default-user"

type TrackLeadInput struct {
	LeadID string `json:"leadId"`
	UserID string `json:"userId"`
}

// TrackLeadUseCase adds a lead to one of the curated collections (saved or
// prospection). The add is an upsert on (collection, leadId, userId): adding
// an existing member returns the existing membership unchanged.
type TrackLeadUseCase struct {
	Leads       entity.LeadRepository
	Memberships entity.MembershipRepository
}

func NewTrackLeadUseCase(leads entity.LeadRepository, memberships entity.MembershipRepository) *TrackLeadUseCase {
	return &TrackLeadUseCase{Leads: leads, Memberships: memberships}
}

func (uc *TrackLeadUseCase) Execute(ctx context.Context, collection string, input TrackLeadInput) (*entity.Membership, error) {
	if strings.TrimSpace(input.LeadID) == "" {
		return nil, ValidationError{"leadId", "is required"}
	}
	if input.UserID == "" {
		input.UserID = defaultUserID
	}

	// Memberships never reference a nonexistent lead.
	if _, err := uc.Leads.FindByID(ctx, input.LeadID); err != nil {
		return nil, err
	}

	membership := entity.NewMembership(collection, input.LeadID, input.UserID)
	if err := uc.Memberships.Upsert(ctx, membership); err != nil {
		return nil, err
	}

	return membership, nil
}
