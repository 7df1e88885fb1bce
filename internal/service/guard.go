// Package service holds the business rules that sit between the HTTP
// handlers and the repositories.
package service

import (
	"errors"

	"devconnector/internal/models"
	"devconnector/internal/subdoc"
)

// AuthorizeMutation permits a change only when the caller owns the target.
// It is pure and runs before any state is touched.
func AuthorizeMutation(ownerID, callerID uint) error {
	if ownerID == 0 || ownerID != callerID {
		return models.NewForbiddenError("User not authorized")
	}
	return nil
}

// elementNotFound maps a missing embedded element to a NOT_FOUND error.
func elementNotFound(err error, resource string) error {
	if errors.Is(err, subdoc.ErrNotFound) {
		return models.NewNotFoundError(resource)
	}
	return err
}
