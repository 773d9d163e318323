// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the payload rules of the animal registry:
// required fields on create, the "at least one field" rule on update and the
// credential presence check on signup and login.
//
// Validators run in the service layer, before any store call, so a rejected
// payload never touches the database.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
// Implementations return ErrUnsupportedType for values they do not know and
// ErrUnknownField for field names they do not handle.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
