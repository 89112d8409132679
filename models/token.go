// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is a session token after signing or verification. None of it is
// serialised directly: AuthResponse carries the signed form.
type Token struct {
	// SignedString is the HS256 JWT in compact form.
	SignedString string `json:"-"`

	// UserID comes from the sub claim.
	UserID int64 `json:"-"`

	ExpiresAt time.Time `json:"-"`
}

func (t Token) String() string {
	return t.SignedString
}
