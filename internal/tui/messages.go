package tui

import (
	"github.com/MKhiriev/jobwise/models"
)

type authResultMsg struct {
	user models.UserProfile
	err  error
}

type securityQuestionMsg struct {
	question string
	err      error
}

type passwordResetMsg struct {
	err error
}

type analyticsLoadedMsg struct {
	period    models.Period
	analytics models.Analytics
	err       error
}

// refreshTickMsg is sent by the background refresh worker.
type refreshTickMsg struct{}

type copiedMsg struct {
	err error
}

// clearStatusMsg drops the transient status or error line with the given
// sequence number.
type clearStatusMsg struct {
	seq int
}
