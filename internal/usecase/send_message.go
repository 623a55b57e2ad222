package usecase

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

type SendMessageInput struct {
	Channel string `json:"-"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Content string `json:"content"`

	// Optional: when leadId is set the delivery outcome is also appended to
	// the lead's contact history through the queue worker.
	LeadID string `json:"leadId"`
	UserID string `json:"userId"`
}

// SendMessageUseCase turns a send request into a tracked DispatchJob and
// runs one delivery attempt synchronously. There is no automatic retry: a
// retry is an explicit Attempt call on a job that is still pending, and a
// no-op once the job is terminal.
type SendMessageUseCase struct {
	Jobs      entity.DispatchJobRepository
	Transport Transport
	Outcomes  OutcomePublisher
}

func NewSendMessageUseCase(jobs entity.DispatchJobRepository, transport Transport, outcomes OutcomePublisher) *SendMessageUseCase {
	return &SendMessageUseCase{
		Jobs:      jobs,
		Transport: transport,
		Outcomes:  outcomes,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*entity.DispatchJob, error) {
	if err := asError(ValidateSendMessageInput(input)); err != nil {
		return nil, err
	}
	if input.UserID == "" {
		input.UserID = defaultUserID
	}

	job := entity.NewDispatchJob(
		input.Channel, input.To, input.Subject, input.Content,
		input.LeadID, input.UserID,
	)
	if err := uc.Jobs.Insert(ctx, job); err != nil {
		return nil, err
	}

	return uc.Attempt(ctx, job.ID)
}

// Attempt runs one delivery attempt. The job is claimed (attempts+1) only
// while it is still pending; a terminal job is returned unchanged. No lock
// on any other entity is held while the transport call runs.
func (uc *SendMessageUseCase) Attempt(ctx context.Context, jobID string) (*entity.DispatchJob, error) {
	job, claimed, err := uc.Jobs.Claim(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return job, nil
	}

	sendErr := uc.Transport.Send(ctx, job.Channel, job.Recipient, job.Subject, job.Content)

	completedAt := time.Now()
	status := entity.JobStatusSent
	lastError := ""
	if sendErr != nil {
		status = entity.JobStatusFailed
		lastError = sendErr.Error()
		log.Printf("⚠️ Dispatch: delivery failed for job %s (%s): %v", job.ID, job.Channel, sendErr)
	}

	if err := uc.Jobs.Finalize(ctx, job.ID, status, lastError, completedAt); err != nil {
		return nil, err
	}

	job.Status = status
	job.LastError = lastError
	job.CompletedAt = &completedAt

	uc.publishOutcome(ctx, job)

	return job, nil
}

// publishOutcome is best-effort: a queue hiccup must not fail a delivery
// that already completed.
func (uc *SendMessageUseCase) publishOutcome(ctx context.Context, job *entity.DispatchJob) {
	if job.LeadID == "" || uc.Outcomes == nil {
		return
	}

	payload := queue.DispatchOutcome{
		JobID:     job.ID,
		Channel:   job.Channel,
		LeadID:    job.LeadID,
		UserID:    job.UserID,
		Recipient: job.Recipient,
		Subject:   job.Subject,
		Content:   job.Content,
		Status:    job.Status,
		Error:     job.LastError,
	}

	if err := uc.Outcomes.PublishOutcome(ctx, payload); err != nil {
		log.Printf("⚠️ Dispatch: failed to publish outcome for job %s: %v", job.ID, err)
	}
}
