package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/jobwise/models"
)

// Field name constants used to restrict job validation to a subset of rules.
const (
	// FieldJobID targets the application identifier.
	FieldJobID = "id"

	// FieldUserID targets the owner identifier.
	FieldUserID = "user_id"

	// FieldCompany targets the company name (required, bounded length).
	FieldCompany = "company"

	// FieldRole targets the role title (required, bounded length).
	FieldRole = "role"

	// FieldStatus targets the pipeline status.
	FieldStatus = "status"

	// FieldTimeline targets the applied/responded dates: applied is set and a
	// response, if any, is not earlier than the application.
	FieldTimeline = "timeline"

	// FieldText targets the free-form location and notes lengths.
	FieldText = "text"

	// FieldNonEmptyUpdate requires an update to change at least one field.
	FieldNonEmptyUpdate = "non_empty_update"
)

const (
	maxShortTextLen = 200
	maxNotesLen     = 5000
)

// JobValidator implements [Validator] for job applications and their partial
// updates.
type JobValidator struct{}

// NewJobValidator constructs a new JobValidator and returns it as the
// Validator interface.
func NewJobValidator() Validator {
	return &JobValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.JobApplication / *models.JobApplication
//   - models.JobApplicationUpdate / *models.JobApplicationUpdate
//
// Returns ErrUnsupportedType for anything else.
func (v *JobValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.JobApplication:
		return v.validateJob(ctx, value, fields...)
	case *models.JobApplication:
		return v.validateJob(ctx, *value, fields...)

	case models.JobApplicationUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *models.JobApplicationUpdate:
		return v.validateUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateJob validates a complete application.
//
// Default validated fields (when none specified):
// UserID, Company, Role, Status, Timeline, Text.
func (v *JobValidator) validateJob(_ context.Context, job models.JobApplication, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCompany, FieldRole, FieldStatus, FieldTimeline, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldJobID:
			if job.ID == "" {
				return ErrEmptyJobID
			}
		case FieldUserID:
			if job.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldCompany:
			if err := requiredText(job.Company, ErrEmptyCompany); err != nil {
				return err
			}
		case FieldRole:
			if err := requiredText(job.Role, ErrEmptyRole); err != nil {
				return err
			}
		case FieldStatus:
			if !job.Status.IsValid() {
				return ErrInvalidStatus
			}
		case FieldTimeline:
			if job.AppliedAt.IsZero() {
				return ErrMissingAppliedAt
			}
			if job.RespondedAt != nil && job.RespondedAt.Before(job.AppliedAt) {
				return ErrRespondedBeforeApp
			}
		case FieldText:
			if utf8.RuneCountInString(job.Location) > maxShortTextLen ||
				utf8.RuneCountInString(job.Notes) > maxNotesLen {
				return ErrFieldTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdate checks only the fields an update sets. Cross-field timeline
// rules need the merged record and are checked on the result of
// [models.JobApplicationUpdate.Apply].
//
// Default validated fields: NonEmptyUpdate, Company, Role, Status, Text.
func (v *JobValidator) validateUpdate(_ context.Context, update models.JobApplicationUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNonEmptyUpdate, FieldCompany, FieldRole, FieldStatus, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldNonEmptyUpdate:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldCompany:
			if update.Company != nil {
				if err := requiredText(*update.Company, ErrEmptyCompany); err != nil {
					return err
				}
			}
		case FieldRole:
			if update.Role != nil {
				if err := requiredText(*update.Role, ErrEmptyRole); err != nil {
					return err
				}
			}
		case FieldStatus:
			if update.Status != nil && !update.Status.IsValid() {
				return ErrInvalidStatus
			}
		case FieldText:
			if update.Location != nil && utf8.RuneCountInString(*update.Location) > maxShortTextLen {
				return ErrFieldTooLong
			}
			if update.Notes != nil && utf8.RuneCountInString(*update.Notes) > maxNotesLen {
				return ErrFieldTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func requiredText(value string, emptyErr error) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return emptyErr
	}
	if utf8.RuneCountInString(trimmed) > maxShortTextLen {
		return ErrFieldTooLong
	}
	return nil
}
