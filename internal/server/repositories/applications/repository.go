// Package applications provides access to the applications table. The
// Postgres implementation backs production; the in-memory one backs tests
// and local runs without a database.
package applications

import (
	"context"

	"github.com/mpcportal/admissions/internal/server/models"
)

// Repository is the persistence gateway for application records.
//
// Implementations return common.ErrNotFound when a row is absent and
// common.ErrAlreadyExists when an insert violates the registration number
// uniqueness.
type Repository interface {
	// Insert stores a new record and returns it with the store-assigned
	// ID and CreatedAt populated.
	Insert(ctx context.Context, app *models.Application) (*models.Application, error)

	// FindByRegistrationNumber returns the unique record for the token.
	FindByRegistrationNumber(ctx context.Context, regNo string) (*models.Application, error)

	// FindByAadhaar returns the record holding the given Aadhaar, used by
	// the submission workflow's duplicate check.
	FindByAadhaar(ctx context.Context, aadhaar string) (*models.Application, error)

	// ListAll returns every record ordered by creation time descending.
	ListAll(ctx context.Context) ([]*models.Application, error)

	// Update applies the whitelisted mutation payload to one record.
	Update(ctx context.Context, id string, upd *models.ApplicationUpdate) error

	// Delete removes one record permanently.
	Delete(ctx context.Context, id string) error
}
