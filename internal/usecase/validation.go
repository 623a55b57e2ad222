package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every field failure of one request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

func IsValidationError(err error) bool {
	switch err.(type) {
	case ValidationError, ValidationErrors:
		return true
	}
	return false
}

// asError collapses a slice of field errors into a single error value,
// or nil when the slice is empty.
func asError(errs []ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	return ValidationErrors(errs)
}

func isValidEmail(address string) bool {
	_, err := mail.ParseAddress(address)
	return err == nil
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	if input.Status != "" && !entity.IsValidLeadStatus(input.Status) {
		errs = append(errs, ValidationError{"status", "is invalid"})
	}

	return errs
}

func ValidateUpdateLeadInput(input UpdateLeadInput) []ValidationError {
	var errs []ValidationError

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		errs = append(errs, ValidationError{"name", "must not be empty"})
	}

	if input.Email != nil {
		if strings.TrimSpace(*input.Email) == "" {
			errs = append(errs, ValidationError{"email", "must not be empty"})
		} else if !isValidEmail(*input.Email) {
			errs = append(errs, ValidationError{"email", "is invalid"})
		}
	}

	if input.Status != nil && !entity.IsValidLeadStatus(*input.Status) {
		errs = append(errs, ValidationError{"status", "is invalid"})
	}

	return errs
}

func ValidateLogContactInput(input LogContactInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.LeadID) == "" {
		errs = append(errs, ValidationError{"leadId", "is required"})
	}
	if strings.TrimSpace(input.Type) == "" {
		errs = append(errs, ValidationError{"type", "is required"})
	} else if !entity.IsValidContactType(input.Type) {
		errs = append(errs, ValidationError{"type", "must be email, call, mail or other"})
	}
	if strings.TrimSpace(input.Recipient) == "" {
		errs = append(errs, ValidationError{"recipient", "is required"})
	}
	if strings.TrimSpace(input.Content) == "" {
		errs = append(errs, ValidationError{"content", "is required"})
	}
	if input.Status != "" && !entity.IsValidContactStatus(input.Status) {
		errs = append(errs, ValidationError{"status", "must be sent, failed or pending"})
	}

	return errs
}

func ValidateSendMessageInput(input SendMessageInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.To) == "" {
		errs = append(errs, ValidationError{"to", "is required"})
	} else if input.Channel == entity.ChannelEmail && !isValidEmail(input.To) {
		errs = append(errs, ValidationError{"to", "must be a valid email address"})
	}

	if strings.TrimSpace(input.Content) == "" {
		errs = append(errs, ValidationError{"content", "is required"})
	}

	return errs
}
