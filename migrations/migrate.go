// Package migrations applies the embedded SQL schema with goose.
package migrations

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"

	"userhub/internal/errors"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate brings the schema up to date. It is called once at startup, after
// the pool ping and before the HTTP server starts accepting requests.
func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "migration error setting dialect for db")
	}

	if err := goose.Up(db, "."); err != nil {
		return errors.Wrap(err, "migration error")
	}

	return nil
}
