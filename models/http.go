// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest is the body of POST /api/signup.
type SignupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name,omitempty"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// AnimalRequest is the body of POST /api/animals and PUT /api/animals/{id}.
// Every field is optional at the decoding level; required fields are
// enforced by the validators.
type AnimalRequest struct {
	Name        *string `json:"name,omitempty"`
	Species     *string `json:"species,omitempty"`
	Description *string `json:"description,omitempty"`
	ImgURL      *string `json:"imgUrl,omitempty"`
}

// ToAnimal converts a create request into an Animal ready to be stored.
func (r AnimalRequest) ToAnimal() Animal {
	var animal Animal
	if r.Name != nil {
		animal.Name = *r.Name
	}
	if r.Species != nil {
		animal.Species = *r.Species
	}
	animal.Description = r.Description
	animal.ImgURL = r.ImgURL
	return animal
}

// ToUpdate converts an update request for the animal with the given id.
func (r AnimalRequest) ToUpdate(id int64) AnimalUpdate {
	return AnimalUpdate{
		ID:          id,
		Name:        r.Name,
		Species:     r.Species,
		Description: r.Description,
		ImgURL:      r.ImgURL,
	}
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
