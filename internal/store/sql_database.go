package store

import (
	"database/sql"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/migrations"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the server-side (PostgreSQL) schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// MigrateClient applies the client-side (SQLite) schema migrations.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}
