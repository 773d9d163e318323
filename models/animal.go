// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Animal is a single registry entry.
//
// Optional columns are pointers so that absent values are serialized as JSON
// null. A non-nil DeletedAt marks the record as soft-deleted: it is hidden from
// listings but the row itself is never removed.
type Animal struct {
	// ID is assigned by the store on insert.
	ID int64 `json:"id"`

	// Name is required on create.
	Name string `json:"name"`

	// Species is required on create.
	Species string `json:"species"`

	// Description is an optional free-form text.
	Description *string `json:"description"`

	// ImgURL is an optional reference to an image of the animal.
	ImgURL *string `json:"imgUrl"`

	// CreatedAt is set once by the store.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on create and on every update.
	UpdatedAt time.Time `json:"updatedAt"`

	// DeletedAt is nil for active animals.
	DeletedAt *time.Time `json:"deletedAt"`
}

// TableName returns the name of the database table
// associated with the Animal model.
func (a Animal) TableName() string {
	return "animals"
}

// IsDeleted reports whether the animal was soft-deleted.
func (a Animal) IsDeleted() bool {
	return a.DeletedAt != nil
}

// AnimalUpdate describes a partial update of a single animal.
// Only non-nil fields are written to the store.
type AnimalUpdate struct {
	// ID is taken from the request path, never from the body.
	ID int64 `json:"-"`

	Name        *string `json:"name,omitempty"`
	Species     *string `json:"species,omitempty"`
	Description *string `json:"description,omitempty"`
	ImgURL      *string `json:"imgUrl,omitempty"`

	// UpdatedAt is set by the service right before the store call.
	UpdatedAt time.Time `json:"-"`
}

// Normalize drops fields that carry an empty string, so that
// an empty value never overwrites a stored one.
func (u AnimalUpdate) Normalize() AnimalUpdate {
	u.Name = nonEmpty(u.Name)
	u.Species = nonEmpty(u.Species)
	u.Description = nonEmpty(u.Description)
	u.ImgURL = nonEmpty(u.ImgURL)
	return u
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
