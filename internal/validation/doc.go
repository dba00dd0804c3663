// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps the validator library in a thread-safe singleton and translates
// field errors into short human-readable messages. Posts and configuration
// are both validated through it.
//
// # Quick Start
//
//	type Output struct {
//	    File string `validate:"omitempty,notblank"`
//	}
//
//	if verr := validation.ValidateStruct(&out); verr != nil {
//	    return verr.Err()
//	}
//
// # Custom Tags
//
//   - notblank: string must contain a non-whitespace character
//
// # Error Types
//
// ValidationError is a single field failure (Field, Tag, Param, Value).
// RequestValidationError aggregates them and implements error; Err converts
// a possibly-nil pointer into a safe error value.
//
// # Error Message Translation
//
//	required   -> "Title is required"
//	notblank   -> "Slug must not be blank"
//	min=1      -> "PerPost must be at least 1"
//	oneof=a b  -> "Format must be one of: a b"
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use.
package validation
