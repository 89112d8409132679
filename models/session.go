package models

import "time"

// Session is the client-side record of a logged-in account.
type Session struct {
	Token     string
	User      UserProfile
	CreatedAt time.Time
}
