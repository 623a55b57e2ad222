package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

// UpdateLeadInput carries a partial update: nil fields are left untouched.
type UpdateLeadInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Company  *string `json:"company"`
	Phone    *string `json:"phone"`
	Position *string `json:"position"`
	Status   *string `json:"status"`
	Source   *string `json:"source"`
	Notes    *string `json:"notes"`
}

type UpdateLeadUseCase struct {
	Repo entity.LeadRepository
}

func NewUpdateLeadUseCase(repo entity.LeadRepository) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Repo: repo}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id string, input UpdateLeadInput) (*entity.Lead, error) {
	if err := asError(ValidateUpdateLeadInput(input)); err != nil {
		return nil, err
	}

	lead, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		lead.Name = *input.Name
	}
	if input.Email != nil {
		lead.Email = *input.Email
	}
	if input.Company != nil {
		lead.Company = *input.Company
	}
	if input.Phone != nil {
		lead.Phone = *input.Phone
	}
	if input.Position != nil {
		lead.Position = *input.Position
	}
	if input.Status != nil {
		lead.Status = *input.Status
	}
	if input.Source != nil {
		lead.Source = *input.Source
	}
	if input.Notes != nil {
		lead.Notes = *input.Notes
	}
	lead.UpdatedAt = time.Now()

	if err := uc.Repo.Update(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}
