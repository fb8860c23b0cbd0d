// Package server provides the HTTP REST API for the capstone matcher.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/progracyd/capstone-matcher/internal/recommend"
)

// ErrEmailAlreadyExists indicates the email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrForbidden indicates the authenticated user lacks the required role.
type ErrForbidden struct {
	Role string
}

func (e *ErrForbidden) Error() string {
	return fmt.Sprintf("requires %s role", e.Role)
}

// ErrNoGroup indicates the authenticated student is not on any roster.
type ErrNoGroup struct{}

func (e *ErrNoGroup) Error() string {
	return "user does not belong to any group"
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Message
}

// HTTPStatus maps an error to its response status code. Engine errors keep
// their distinction: a missing team is a client problem, an unloaded engine
// is a temporary server-side one.
func HTTPStatus(err error) int {
	var (
		emailExists *ErrEmailAlreadyExists
		badCreds    *ErrInvalidCredentials
		forbidden   *ErrForbidden
		noGroup     *ErrNoGroup
		validation  *ErrValidation
		notLoaded   *recommend.ErrNotLoaded
		noTeam      *recommend.ErrTeamNotFound
		emptyTeam   *recommend.ErrEmptyTeam
	)
	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &badCreds):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &noGroup), errors.As(err, &validation), errors.As(err, &emptyTeam):
		return http.StatusBadRequest
	case errors.As(err, &noTeam):
		return http.StatusNotFound
	case errors.As(err, &notLoaded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
