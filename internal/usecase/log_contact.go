package usecase

import (
	"context"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type LogContactInput struct {
	LeadID    string `json:"leadId"`
	Type      string `json:"type"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	UserID    string `json:"userId"`
}

// LogContactUseCase appends one record to a lead's contact history.
type LogContactUseCase struct {
	Leads    entity.LeadRepository
	Contacts entity.ContactRepository
}

func NewLogContactUseCase(leads entity.LeadRepository, contacts entity.ContactRepository) *LogContactUseCase {
	return &LogContactUseCase{Leads: leads, Contacts: contacts}
}

func (uc *LogContactUseCase) Execute(ctx context.Context, input LogContactInput) (*entity.ContactRecord, error) {
	if err := asError(ValidateLogContactInput(input)); err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = entity.ContactStatusSent
	}
	if input.UserID == "" {
		input.UserID = defaultUserID
	}

	if _, err := uc.Leads.FindByID(ctx, input.LeadID); err != nil {
		return nil, err
	}

	record := entity.NewContactRecord(
		input.LeadID, input.Type, input.Recipient,
		input.Subject, input.Content, input.Status, input.UserID,
	)
	if err := uc.Contacts.Insert(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}
