package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ChannelEmail  = "email"
	ChannelPostal = "postal"

	JobStatusPending = "pending"
	JobStatusSent    = "sent"
	JobStatusFailed  = "failed"
)

// DispatchJob is a tracked request to deliver a communication through an
// external channel. Status moves pending -> sent|failed and never reverts;
// jobs are kept forever as an audit trail.
type DispatchJob struct {
	ID        string `json:"id"`
	Channel   string `json:"channel"`
	Recipient string `json:"to"`
	Subject   string `json:"subject,omitempty"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	Attempts  int    `json:"attempts"`
	LastError string `json:"lastError,omitempty"`

	// Optional link back to a lead; when set, the delivery outcome is
	// logged into the lead's contact history.
	LeadID string `json:"leadId,omitempty"`
	UserID string `json:"userId,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func NewDispatchJob(channel, recipient, subject, content, leadID, userID string) *DispatchJob {
	return &DispatchJob{
		ID:        uuid.New().String(),
		Channel:   channel,
		Recipient: recipient,
		Subject:   subject,
		Content:   content,
		Status:    JobStatusPending,
		LeadID:    leadID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
}

// IsTerminal reports whether the job already reached sent or failed.
func (j *DispatchJob) IsTerminal() bool {
	return j.Status == JobStatusSent || j.Status == JobStatusFailed
}

type DispatchJobRepository interface {
	Insert(ctx context.Context, job *DispatchJob) error
	FindByID(ctx context.Context, id string) (*DispatchJob, error)

	// Claim increments attempts if and only if the job is still pending,
	// returning the claimed row. claimed is false when the job is already
	// terminal; the caller must then treat the attempt as a no-op.
	Claim(ctx context.Context, id string) (job *DispatchJob, claimed bool, err error)

	// Finalize moves a claimed job to its terminal status. It is guarded on
	// status = pending so a terminal job can never be rewritten.
	Finalize(ctx context.Context, id, status, lastError string, completedAt time.Time) error
}
