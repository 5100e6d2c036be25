/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationError is a client input error detected before any side effect.
type ValidationError struct {
	IncorrectValue string
	Err            error
}

// NewValidationError creates a ValidationError for the given request field.
func NewValidationError(incorrectValue string, err error) *ValidationError {
	return &ValidationError{
		IncorrectValue: incorrectValue,
		Err:            err,
	}
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// HTTPCodeMsg returns the HTTP status and response body for the error.
func (e *ValidationError) HTTPCodeMsg() (int, interface{}) {
	return http.StatusBadRequest, &ErrorResponse{Error: e.Err.Error()}
}

// ComponentError is a downstream failure of one pipeline component.
type ComponentError struct {
	Component Component
	Operation string
	Err       error
}

// NewComponentError wraps err with the component and operation that produced it.
func NewComponentError(component Component, operation string, err error) *ComponentError {
	return &ComponentError{
		Component: component,
		Operation: operation,
		Err:       err,
	}
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("%s[%s]: %v", e.Component, e.Operation, e.Err)
}

func (e *ComponentError) Unwrap() error {
	return e.Err
}

// HTTPCodeMsg returns the HTTP status and response body for the error.
func (e *ComponentError) HTTPCodeMsg() (int, interface{}) {
	return http.StatusInternalServerError, &ErrorResponse{Error: e.Error()}
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var validationErr *ValidationError

	return errors.As(err, &validationErr)
}
