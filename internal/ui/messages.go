package ui

import (
	"errors"
	"fmt"

	"github.com/five82/certcheck/internal/dataset"
)

const (
	msgEmptyQuery    = "Please enter a Certificate Number"
	msgNotLoaded     = "Certificate database not loaded yet"
	msgNotFound      = "Certificate not found for Certificate Number: %s"
	msgLoadFailed    = "Error loading certificate database"
	msgUnexpected    = "An error occurred while validating the certificate"
	msgValidated     = "Certificate Validated Successfully"
	msgValidatedNote = "This certificate has been successfully validated in our system."
	msgValidating    = "Validating..."
)

// errorMessage maps lookup and load errors to the text shown to the user.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	var notFound *dataset.NotFoundError
	switch {
	case errors.Is(err, dataset.ErrEmptyQuery):
		return msgEmptyQuery
	case errors.Is(err, dataset.ErrNotLoaded):
		return msgNotLoaded
	case errors.As(err, &notFound):
		return fmt.Sprintf(msgNotFound, notFound.Query)
	case errors.Is(err, dataset.ErrUnavailable):
		return msgLoadFailed
	default:
		return msgUnexpected
	}
}

// loadCause returns the underlying reason for a failed load, without the
// sentinel prefix the loader adds.
func loadCause(err error) string {
	if err == nil {
		return ""
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, inner := range joined.Unwrap() {
			if inner != dataset.ErrUnavailable {
				return inner.Error()
			}
		}
	}
	return err.Error()
}
