// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidAnimalID is returned when the {id} path parameter is not a
// base-10 integer.
var ErrInvalidAnimalID = errors.New("invalid animal id in path")
