// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-animal-registry/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// UserValidator checks signup and login credentials.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var user models.User
	switch value := obj.(type) {
	case models.User:
		user = value
	case *models.User:
		user = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if user.Email == "" {
				return ErrEmailAndPasswordRequired
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmailAndPasswordRequired
			}
			if len(user.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
