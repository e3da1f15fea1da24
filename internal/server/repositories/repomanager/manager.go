// Package repomanager wires repository constructors together with database
// migrations so the application bootstrap only deals with one handle.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/mpcportal/admissions/internal/dbx"
	"github.com/mpcportal/admissions/internal/server/repositories/applications"
)

// RepositoryManager hands out repositories bound to a DB handle. Passing a
// transaction handle yields transactional repositories.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Applications(db dbx.DBTX) applications.Repository
}
