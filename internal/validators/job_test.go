// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/jobwise/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func validJob() models.JobApplication {
	return models.JobApplication{
		ID:        "job-1",
		UserID:    1,
		Company:   "Acme",
		Role:      "Backend Engineer",
		Status:    models.StatusApplied,
		AppliedAt: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewJobValidator(t *testing.T) {
	require.NotNil(t, NewJobValidator())
}

func TestJobValidator_Dispatch(t *testing.T) {
	v := NewJobValidator()
	ctx := context.Background()
	job := validJob()
	update := models.JobApplicationUpdate{Company: ptr("Globex")}

	assert.NoError(t, v.Validate(ctx, job))
	assert.NoError(t, v.Validate(ctx, &job))
	assert.NoError(t, v.Validate(ctx, update))
	assert.NoError(t, v.Validate(ctx, &update))
	assert.ErrorIs(t, v.Validate(ctx, "job"), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// JobApplication
// ---------------------------------------------------------------------------

func TestJobValidator_Job(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(j *models.JobApplication)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.JobApplication) {}},
		{name: "no owner", mutate: func(j *models.JobApplication) { j.UserID = 0 }, wantErr: ErrInvalidUserID},
		{name: "blank company", mutate: func(j *models.JobApplication) { j.Company = "   " }, wantErr: ErrEmptyCompany},
		{name: "blank role", mutate: func(j *models.JobApplication) { j.Role = "" }, wantErr: ErrEmptyRole},
		{name: "long company", mutate: func(j *models.JobApplication) { j.Company = strings.Repeat("a", 201) }, wantErr: ErrFieldTooLong},
		{name: "unknown status", mutate: func(j *models.JobApplication) { j.Status = "Ghosted" }, wantErr: ErrInvalidStatus},
		{name: "empty status", mutate: func(j *models.JobApplication) { j.Status = "" }, wantErr: ErrInvalidStatus},
		{name: "no applied date", mutate: func(j *models.JobApplication) { j.AppliedAt = time.Time{} }, wantErr: ErrMissingAppliedAt},
		{name: "response before application", mutate: func(j *models.JobApplication) {
			j.RespondedAt = ptr(j.AppliedAt.Add(-time.Hour))
		}, wantErr: ErrRespondedBeforeApp},
		{name: "response same instant", mutate: func(j *models.JobApplication) {
			j.RespondedAt = ptr(j.AppliedAt)
		}},
		{name: "long notes", mutate: func(j *models.JobApplication) { j.Notes = strings.Repeat("n", 5001) }, wantErr: ErrFieldTooLong},
	}

	v := NewJobValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := validJob()
			tt.mutate(&job)

			err := v.Validate(context.Background(), job)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestJobValidator_Job_ScopedFields(t *testing.T) {
	v := NewJobValidator()
	job := models.JobApplication{Company: "Acme"}

	assert.NoError(t, v.Validate(context.Background(), job, FieldCompany))
	assert.ErrorIs(t, v.Validate(context.Background(), job, FieldJobID), ErrEmptyJobID)
	assert.ErrorIs(t, v.Validate(context.Background(), job, "salary"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// JobApplicationUpdate
// ---------------------------------------------------------------------------

func TestJobValidator_Update(t *testing.T) {
	tests := []struct {
		name    string
		update  models.JobApplicationUpdate
		wantErr error
	}{
		{name: "status only", update: models.JobApplicationUpdate{Status: ptr(models.StatusOffer)}},
		{name: "empty", update: models.JobApplicationUpdate{}, wantErr: ErrNoFieldsToUpdate},
		{name: "blank company", update: models.JobApplicationUpdate{Company: ptr(" ")}, wantErr: ErrEmptyCompany},
		{name: "blank role", update: models.JobApplicationUpdate{Role: ptr("")}, wantErr: ErrEmptyRole},
		{name: "bad status", update: models.JobApplicationUpdate{Status: ptr(models.JobStatus("Pending"))}, wantErr: ErrInvalidStatus},
		{name: "long location", update: models.JobApplicationUpdate{Location: ptr(strings.Repeat("l", 201))}, wantErr: ErrFieldTooLong},
		{name: "clear notes", update: models.JobApplicationUpdate{Notes: ptr("")}},
	}

	v := NewJobValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.update)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
