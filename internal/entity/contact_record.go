package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ContactTypeEmail = "email"
	ContactTypeCall  = "call"
	ContactTypeMail  = "mail"
	ContactTypeOther = "other"

	ContactStatusSent    = "sent"
	ContactStatusFailed  = "failed"
	ContactStatusPending = "pending"
)

func IsValidContactType(t string) bool {
	switch t {
	case ContactTypeEmail, ContactTypeCall, ContactTypeMail, ContactTypeOther:
		return true
	}
	return false
}

func IsValidContactStatus(s string) bool {
	switch s {
	case ContactStatusSent, ContactStatusFailed, ContactStatusPending:
		return true
	}
	return false
}

// ContactRecord is one entry in the append-only contact history of a lead.
// It is immutable after creation; only a lead cascade delete removes it.
type ContactRecord struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"leadId"`
	Type      string    `json:"type"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject,omitempty"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewContactRecord(leadID, contactType, recipient, subject, content, status, userID string) *ContactRecord {
	return &ContactRecord{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		Type:      contactType,
		Recipient: recipient,
		Subject:   subject,
		Content:   content,
		Status:    status,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
}

type ContactRepository interface {
	// Insert writes the record as-is. There is no update or single delete;
	// history is append-only.
	Insert(ctx context.Context, record *ContactRecord) error

	FindAll(ctx context.Context) ([]*ContactRecord, error)
	FindByLead(ctx context.Context, leadID string) ([]*ContactRecord, error)

	// PurgeForLead removes the lead's whole history (cascade only).
	PurgeForLead(ctx context.Context, leadID string) error
}
