package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatus_IsValid(t *testing.T) {
	for _, s := range JobStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, JobStatus("Ghosted").IsValid())
	assert.False(t, JobStatus("applied").IsValid())
	assert.False(t, JobStatus("").IsValid())
}

func TestJobApplicationUpdate_Apply(t *testing.T) {
	applied := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	responded := applied.AddDate(0, 0, 5)
	company := "Acme"
	status := StatusInterview

	job := JobApplication{ID: "1", Company: "Old", Role: "Backend", Status: StatusApplied, AppliedAt: applied}
	upd := JobApplicationUpdate{Company: &company, Status: &status, RespondedAt: &responded}

	got := upd.Apply(job)

	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "Backend", got.Role)
	assert.Equal(t, StatusInterview, got.Status)
	require.NotNil(t, got.RespondedAt)
	assert.True(t, got.RespondedAt.Equal(responded))
	assert.Equal(t, "Old", job.Company, "original must not change")
}

func TestJobApplicationUpdate_IsEmpty(t *testing.T) {
	assert.True(t, JobApplicationUpdate{}.IsEmpty())
	notes := ""
	assert.False(t, JobApplicationUpdate{Notes: &notes}.IsEmpty())
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
		ok   bool
	}{
		{"", PeriodLast30Days, true},
		{"last30days", PeriodLast30Days, true},
		{"last90days", PeriodLast90Days, true},
		{"alltime", PeriodAllTime, true},
		{"lastyear", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePeriod(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriod_Since(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	since := PeriodLast30Days.Since(now)
	require.NotNil(t, since)
	assert.Equal(t, time.Date(2026, 9, 16, 12, 0, 0, 0, time.UTC), *since)

	since = PeriodLast90Days.Since(now)
	require.NotNil(t, since)
	assert.Equal(t, now.AddDate(0, 0, -90), *since)

	assert.Nil(t, PeriodAllTime.Since(now))
}

func TestUser_JSONHidesHashes(t *testing.T) {
	u := User{UserID: 7, Name: "Ann", Email: "ann@example.com", PasswordHash: "p-hash", SecurityQuestion: "Pet?", SecurityAnswerHash: "a-hash"}

	b, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "p-hash")
	assert.NotContains(t, string(b), "a-hash")
	assert.Contains(t, string(b), `"securityQuestion":"Pet?"`)
	assert.Equal(t, UserProfile{ID: 7, Name: "Ann", Email: "ann@example.com"}, u.Profile())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ann@example.com", NormalizeEmail("  Ann@Example.COM "))
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-01", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "version N/A, built 2026-10-01, commit N/A", info.String())
}
