package v1

import (
	"errors"
	"net/http"

	"github.com/poupix/backend/internal/advisor"
	"github.com/poupix/backend/internal/auth"
	"github.com/poupix/backend/internal/models"
	"github.com/poupix/backend/internal/progression"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, advisor.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, advisor.ErrEmptyResponse), errors.Is(err, advisor.ErrUnparseable):
		return http.StatusBadGateway
	case errors.Is(err, progression.ErrDomain), errors.Is(err, models.ErrUserEmailNotUnique):
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errMonthNotParseable = errors.New("the month query parameter must be in YYYY-MM format")
	errMethodReserved    = errors.New("deposits with the method FromChallenge can only be made by completing a challenge period")
	errGoalIDMissing     = errors.New("the goalId must be set")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
