// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before services act on them.
//
// [NewAuthValidator] covers signup, login and password reset requests.
// [NewJobValidator] covers job applications and partial updates. Both return
// the package's sentinel errors so callers can wrap them into
// service.ErrInvalidDataProvided.
package validators

import "context"

// Validator checks obj. When fields are given only those fields are checked;
// an unknown field name yields ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
