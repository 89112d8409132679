package models

import "time"

// JobStatus is the pipeline stage of a job application.
type JobStatus string

const (
	StatusApplied   JobStatus = "Applied"
	StatusInterview JobStatus = "Interview"
	StatusOffer     JobStatus = "Offer"
	StatusRejected  JobStatus = "Rejected"
)

// JobStatuses lists every supported status in display order.
var JobStatuses = []JobStatus{StatusApplied, StatusInterview, StatusOffer, StatusRejected}

// IsValid reports whether s is one of [JobStatuses].
func (s JobStatus) IsValid() bool {
	for _, status := range JobStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// JobApplication is a single application tracked by a user.
type JobApplication struct {
	// ID is a UUIDv7 assigned by the server at creation.
	ID string `json:"id"`

	// UserID is the owner of the application. Never accepted from clients.
	UserID int64 `json:"-"`

	Company  string    `json:"company"`
	Role     string    `json:"role"`
	Status   JobStatus `json:"status"`
	Location string    `json:"location,omitempty"`
	Notes    string    `json:"notes,omitempty"`

	// AppliedAt is when the application was sent. Defaults to creation time.
	AppliedAt time.Time `json:"appliedAt"`

	// RespondedAt is when the company first responded, if it did.
	RespondedAt *time.Time `json:"respondedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JobApplicationUpdate is a partial update; nil fields are left untouched.
type JobApplicationUpdate struct {
	Company     *string    `json:"company,omitempty"`
	Role        *string    `json:"role,omitempty"`
	Status      *JobStatus `json:"status,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	AppliedAt   *time.Time `json:"appliedAt,omitempty"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u JobApplicationUpdate) IsEmpty() bool {
	return u.Company == nil && u.Role == nil && u.Status == nil && u.Location == nil &&
		u.Notes == nil && u.AppliedAt == nil && u.RespondedAt == nil
}

// Apply returns a copy of job with the non-nil fields of u applied.
func (u JobApplicationUpdate) Apply(job JobApplication) JobApplication {
	if u.Company != nil {
		job.Company = *u.Company
	}
	if u.Role != nil {
		job.Role = *u.Role
	}
	if u.Status != nil {
		job.Status = *u.Status
	}
	if u.Location != nil {
		job.Location = *u.Location
	}
	if u.Notes != nil {
		job.Notes = *u.Notes
	}
	if u.AppliedAt != nil {
		job.AppliedAt = *u.AppliedAt
	}
	if u.RespondedAt != nil {
		respondedAt := *u.RespondedAt
		job.RespondedAt = &respondedAt
	}
	return job
}

// JobFilter narrows a job listing.
type JobFilter struct {
	// Status, when set, keeps only applications in that status.
	Status *JobStatus
}
