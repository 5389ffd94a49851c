// Package server provides the HTTP REST API for the creator marketplace.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrCampaignNotFound indicates a campaign was not found
type ErrCampaignNotFound struct {
	CampaignID uuid.UUID
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign not found: %s", e.CampaignID)
}

// ErrBrandNotFound indicates a brand was not found
type ErrBrandNotFound struct {
	BrandID uuid.UUID
}

func (e *ErrBrandNotFound) Error() string {
	return fmt.Sprintf("brand not found: %s", e.BrandID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrCampaignNotFound, *ErrBrandNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
