// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameAndSpeciesRequired = errors.New("name and species are required")
	ErrNoFieldsToUpdate       = errors.New("at least one of name, species, description must be provided for update")

	ErrEmailAndPasswordRequired = errors.New("email and password are required")
	ErrPasswordTooLong          = errors.New("password must be at most 72 bytes")
)
