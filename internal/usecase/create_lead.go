package usecase

import (
	"context"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type CreateLeadInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
	Status   string `json:"status"`
	Source   string `json:"source"`
	Notes    string `json:"notes"`
}

type CreateLeadUseCase struct {
	Repo entity.LeadRepository
}

func NewCreateLeadUseCase(repo entity.LeadRepository) *CreateLeadUseCase {
	return &CreateLeadUseCase{Repo: repo}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if err := asError(ValidateCreateLeadInput(input)); err != nil {
		return nil, err
	}

	lead, err := entity.NewLead(
		input.Name, input.Email, input.Company, input.Phone,
		input.Position, input.Status, input.Source, input.Notes,
	)
	if err != nil {
		return nil, ValidationError{"lead", err.Error()}
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}
