// Package repomanager: Postgres implementation of the repository manager,
// wiring repository constructors and schema migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mpcportal/admissions/internal/dbx"
	"github.com/mpcportal/admissions/internal/server/migrations"
	"github.com/mpcportal/admissions/internal/server/repositories/applications"
)

type PostgresManager struct{}

func NewPostgresManager() *PostgresManager {
	return &PostgresManager{}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations to the given database.
func (m *PostgresManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	return gooseUpContext(ctx, db, ".")
}

func (m *PostgresManager) Applications(db dbx.DBTX) applications.Repository {
	return applications.NewPostgresRepository(db)
}

// Open opens a pgx-backed database handle for the given DSN.
func Open(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}
