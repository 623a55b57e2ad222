package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchOutcomeMarshalling(t *testing.T) {
	payload := DispatchOutcome{
		JobID:     "job-123",
		Channel:   "email",
		LeadID:    "lead-456",
		UserID:    "u1",
		Recipient: "john.smith@example.com",
		Subject:   "Intro",
		Content:   "Hello John",
		Status:    "sent",
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	assert.NotEmpty(t, body)

	var received DispatchOutcome
	err = json.Unmarshal(body, &received)
	assert.NoError(t, err)

	assert.Equal(t, "job-123", received.JobID)
	assert.Equal(t, "email", received.Channel)
	assert.Equal(t, "lead-456", received.LeadID)
	assert.Equal(t, "u1", received.UserID)
	assert.Equal(t, "john.smith@example.com", received.Recipient)
	assert.Equal(t, "Intro", received.Subject)
	assert.Equal(t, "Hello John", received.Content)
	assert.Equal(t, "sent", received.Status)
	assert.Empty(t, received.Error)
}

func TestDispatchOutcomeFailedCarriesError(t *testing.T) {
	payload := DispatchOutcome{
		JobID:   "job-124",
		Channel: "postal",
		LeadID:  "lead-456",
		Status:  "failed",
		Error:   "provider timeout",
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	var received DispatchOutcome
	assert.NoError(t, json.Unmarshal(body, &received))
	assert.Equal(t, "failed", received.Status)
	assert.Equal(t, "provider timeout", received.Error)
}
