// Package index exports the ordinal space of a versification as a SQLite
// table or a TSV listing, so other tools can join on ordinals without
// linking this module.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/JuniperV11n/core/errors"
	"github.com/FocuswithJustin/JuniperV11n/core/sqlite"
	"github.com/FocuswithJustin/JuniperV11n/core/v11n"
	"github.com/FocuswithJustin/JuniperV11n/internal/logging"
)

// ErrMismatch is returned by Verify when a stored index was built from a
// different canon table.
var ErrMismatch = fmt.Errorf("index does not match versification: %w", errors.ErrInvalidInput)

// Row is one ordinal of an exported index.
type Row struct {
	Ordinal          int    `json:"ordinal"`
	OSIS             string `json:"osis"`
	Book             string `json:"book"`
	Chapter          int    `json:"chapter"`
	Verse            int    `json:"verse"`
	Testament        string `json:"testament"`
	TestamentOrdinal int    `json:"testament_ordinal"`
}

// Metadata describes the canon an index was exported from.
type Metadata struct {
	Name        string    `json:"name"`
	Fingerprint string    `json:"fingerprint"`
	MaxOrdinal  int       `json:"max_ordinal"`
	ExportID    string    `json:"export_id"`
	ExportedAt  time.Time `json:"exported_at"`
}

const schema = `
DROP TABLE IF EXISTS canon;
DROP TABLE IF EXISTS verses;
CREATE TABLE canon (
	name TEXT NOT NULL,
	fingerprint TEXT NOT NULL,
	max_ordinal INTEGER NOT NULL,
	export_id TEXT NOT NULL,
	exported_at TEXT NOT NULL
);
CREATE TABLE verses (
	ordinal INTEGER PRIMARY KEY,
	osis TEXT NOT NULL,
	book TEXT NOT NULL,
	chapter INTEGER NOT NULL,
	verse INTEGER NOT NULL,
	testament TEXT NOT NULL,
	testament_ordinal INTEGER NOT NULL
);
CREATE INDEX idx_verses_osis ON verses(osis);
`

// Export replaces any index in db with the ordinal table of v. All rows are
// written in a single transaction.
func Export(ctx context.Context, db *sql.DB, v *v11n.Versification) (*Metadata, error) {
	start := time.Now()
	meta := &Metadata{
		Name:        v.Name(),
		Fingerprint: v.Fingerprint(),
		MaxOrdinal:  v.MaximumOrdinal(),
		ExportID:    uuid.New().String(),
		ExportedAt:  start.UTC().Truncate(time.Second),
	}

	err := sqlite.WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, schema); err != nil {
			return errors.Wrap(err, "create schema")
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO canon (name, fingerprint, max_ordinal, export_id, exported_at) VALUES (?, ?, ?, ?, ?)`,
			meta.Name, meta.Fingerprint, meta.MaxOrdinal, meta.ExportID, meta.ExportedAt.Format(time.RFC3339),
		); err != nil {
			return errors.Wrap(err, "insert canon")
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO verses (ordinal, osis, book, chapter, verse, testament, testament_ordinal) VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return errors.Wrap(err, "prepare insert")
		}
		defer stmt.Close()

		return eachRow(v, func(r Row) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := stmt.ExecContext(ctx, r.Ordinal, r.OSIS, r.Book, r.Chapter, r.Verse, r.Testament, r.TestamentOrdinal); err != nil {
				return errors.Wrapf(err, "insert %s", r.OSIS)
			}
			return nil
		})
	})
	if err != nil {
		logging.CanonError(v.Name(), "export", err)
		return nil, fmt.Errorf("export %s: %w", v.Name(), err)
	}

	logging.IndexExported(v.Name(), "sqlite", meta.MaxOrdinal+1, time.Since(start), "export_id", meta.ExportID)
	return meta, nil
}

// ReadMetadata returns the canon row of an exported index.
func ReadMetadata(ctx context.Context, db *sql.DB) (*Metadata, error) {
	var (
		meta       Metadata
		exportedAt string
	)
	err := db.QueryRowContext(ctx,
		`SELECT name, fingerprint, max_ordinal, export_id, exported_at FROM canon LIMIT 1`,
	).Scan(&meta.Name, &meta.Fingerprint, &meta.MaxOrdinal, &meta.ExportID, &exportedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("index metadata", "")
	}
	if err != nil {
		return nil, errors.Wrap(err, "read index metadata")
	}
	if meta.ExportedAt, err = time.Parse(time.RFC3339, exportedAt); err != nil {
		return nil, errors.NewParse("timestamp", "", fmt.Sprintf("exported_at %q: %v", exportedAt, err))
	}
	return &meta, nil
}

// Verify checks that the index in db was exported from a canon with the
// same fingerprint as v and holds one row per ordinal.
func Verify(ctx context.Context, db *sql.DB, v *v11n.Versification) error {
	meta, err := ReadMetadata(ctx, db)
	if err != nil {
		return err
	}
	if meta.Fingerprint != v.Fingerprint() {
		return fmt.Errorf("%w: index %s has fingerprint %s, %s has %s",
			ErrMismatch, meta.Name, meta.Fingerprint, v.Name(), v.Fingerprint())
	}

	var count, maxOrdinal int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(MAX(ordinal), -1) FROM verses`).Scan(&count, &maxOrdinal); err != nil {
		return errors.Wrap(err, "count verses")
	}
	if want := v.MaximumOrdinal() + 1; count != want || maxOrdinal != v.MaximumOrdinal() {
		return fmt.Errorf("%w: index holds %d rows up to %d, want %d", ErrMismatch, count, maxOrdinal, want)
	}
	return nil
}

// Lookup returns the stored row for ordinal.
func Lookup(ctx context.Context, db *sql.DB, ordinal int) (*Row, error) {
	var r Row
	err := db.QueryRowContext(ctx,
		`SELECT ordinal, osis, book, chapter, verse, testament, testament_ordinal FROM verses WHERE ordinal = ?`,
		ordinal,
	).Scan(&r.Ordinal, &r.OSIS, &r.Book, &r.Chapter, &r.Verse, &r.Testament, &r.TestamentOrdinal)
	if err == sql.ErrNoRows {
		return nil, &errors.NotFoundError{Resource: "ordinal", ID: strconv.Itoa(ordinal), Err: v11n.ErrOutOfRange}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "lookup ordinal %d", ordinal)
	}
	return &r, nil
}

// eachRow calls fn for every ordinal of v in order.
func eachRow(v *v11n.Versification, fn func(Row) error) error {
	for n := 0; n <= v.MaximumOrdinal(); n++ {
		vs, err := v.DecodeOrdinal(n)
		if err != nil {
			return err
		}
		testament, err := v.Testament(n)
		if err != nil {
			return err
		}
		to, err := v.TestamentOrdinal(n)
		if err != nil {
			return err
		}
		if err := fn(Row{
			Ordinal:          n,
			OSIS:             vs.OSISID(),
			Book:             vs.Book().OSIS(),
			Chapter:          vs.Chapter(),
			Verse:            vs.Verse(),
			Testament:        testament.String(),
			TestamentOrdinal: to,
		}); err != nil {
			return err
		}
	}
	return nil
}
