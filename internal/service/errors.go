package service

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// Caller errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotLandlord      = errors.New("unauthorized")

	// Template errors
	ErrTemplateNotFound     = errors.New("template not found")
	ErrTemplateAccessDenied = errors.New("unauthorized to use this template")

	// Context errors
	ErrPropertyIDRequired   = errors.New("property ID is required")
	ErrPropertyNotFound     = errors.New("property not found")
	ErrPropertyAccessDenied = errors.New("unauthorized to use this property")
	ErrTenantNotAssociated  = errors.New("tenant not found or not associated with property")

	// Document errors
	ErrDocumentNotFound = errors.New("document not found")
)

// isValidID reports whether id can name a row. Every key column is a uuid, so
// anything else cannot match and is answered as not found without a query.
func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
