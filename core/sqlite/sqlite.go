// Package sqlite opens the SQLite databases that hold exported ordinal
// indexes.
//
// Build modes:
//   - Default (CGO_ENABLED=0): pure Go modernc.org/sqlite
//   - CGO mode (CGO_ENABLED=1 -tags cgo_sqlite): github.com/mattn/go-sqlite3
//
// Use Open instead of sql.Open so the driver name always matches the
// compiled-in driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/FocuswithJustin/JuniperV11n/core/errors"
)

// DriverName returns the database/sql driver name, "sqlite" or "sqlite3".
func DriverName() string {
	return driverName
}

// DriverType returns "cgo" for mattn/go-sqlite3 and "purego" for
// modernc.org/sqlite.
func DriverType() string {
	return driverType
}

// IsCGO returns true if the CGO implementation is being used.
func IsCGO() bool {
	return driverType == "cgo"
}

// Open opens a SQLite database file, creating it if needed.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	return db, nil
}

// OpenReadOnly opens an existing SQLite database in read-only mode.
func OpenReadOnly(path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, "file:"+path+"?mode=ro")
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	return db, nil
}

// MustOpen opens a SQLite database and panics on error.
// This is intended for tests and initialization code.
func MustOpen(path string) *sql.DB {
	db, err := Open(path)
	if err != nil {
		panic(fmt.Sprintf("sqlite: failed to open %s: %v", path, err))
	}
	return db
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	return nil
}

// Info describes the compiled-in SQLite driver.
type Info struct {
	DriverName string `json:"driver_name"`
	DriverType string `json:"driver_type"`
	IsCGO      bool   `json:"is_cgo"`
	Package    string `json:"package"`
}

// GetInfo returns information about the current SQLite configuration.
func GetInfo() Info {
	return Info{
		DriverName: driverName,
		DriverType: driverType,
		IsCGO:      IsCGO(),
		Package:    driverPackage,
	}
}
