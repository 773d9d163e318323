// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// animal registry handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Clients match on some of them, so the wording is part of
// the API.
package app

const (
	// MsgHelloWorld is the plain-text body of the root route.
	MsgHelloWorld = "Hello, world!"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgAnimalNotFound is returned when no animal row matches the path id.
	MsgAnimalNotFound = "Animal not found"

	// MsgInvalidAnimalID is returned when the path id is not a base-10 integer.
	MsgInvalidAnimalID = "Invalid animal id"

	// MsgNameAndSpeciesRequired is returned by create when name or species
	// is missing.
	MsgNameAndSpeciesRequired = "Name and species are required"

	// MsgUpdateFieldsRequired is returned by update when none of name,
	// species and description carries a value.
	MsgUpdateFieldsRequired = "At least one field (name, species, description) is required to update"

	MsgEmailAndPasswordRequired = "Email and password are required"
	MsgPasswordTooLong          = "Password must be at most 72 bytes"
	MsgEmailAlreadyExists       = "Email already exists"

	// MsgInvalidCredentials is shared by the unknown-email and the
	// wrong-password login paths.
	MsgInvalidCredentials = "Invalid email or password"

	MsgNoTokenProvided = "Access denied. No token provided."
	MsgInvalidToken    = "Invalid token"
)
