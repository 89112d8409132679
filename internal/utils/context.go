// Package utils provides general-purpose helpers shared by the server and the
// client: context keys, secret hashing, JSON responses, JWT issuance and
// verification, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so values stored by this
// package never collide with string keys of other packages.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authenticated user ID is stored by
// the auth middleware.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID under [UserIDCtxKey].
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user ID from ctx.
//
// ok is false when no value is stored or the stored value is not an int64.
func GetUserIDFromContext(ctx context.Context) (userID int64, ok bool) {
	userID, ok = ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
