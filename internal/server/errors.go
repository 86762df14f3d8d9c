package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Ashi-17-commits/skill-judge-AI/internal/extraction"
	"github.com/Ashi-17-commits/skill-judge-AI/internal/scoring"
)

// ErrUnknownRole indicates the requested role is not in the catalog.
// Lookup is strict: there is no fallback to a nearest role.
type ErrUnknownRole struct {
	Role string
}

func (e *ErrUnknownRole) Error() string {
	return fmt.Sprintf("unknown role: %q", e.Role)
}

// ErrMissingSession indicates no signal bundle is stored under the given
// resume ID. It is distinct from an unknown role so clients can tell an
// expired upload apart from a bad role name.
type ErrMissingSession struct {
	ResumeID string
}

func (e *ErrMissingSession) Error() string {
	return fmt.Sprintf("resume %s not found or expired", e.ResumeID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		unknownRole    *ErrUnknownRole
		missingSession *ErrMissingSession
		validation     *ErrValidation
		emptyInput     *scoring.EmptyInputError
		badFormat      *extraction.UnsupportedFormatError
		readFailure    *extraction.ReadError
	)
	switch {
	case errors.As(err, &unknownRole), errors.As(err, &validation),
		errors.As(err, &emptyInput), errors.As(err, &badFormat):
		return http.StatusBadRequest
	case errors.As(err, &missingSession):
		return http.StatusNotFound
	case errors.As(err, &readFailure):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
