// Package catalog keeps a SQLite ledger of encode runs: which files were
// shelved, where their containers live, and the BLAKE3 hash of the
// original bytes so a later decode can be verified against the ledger.
//
// Build modes mirror the SQLite driver split used across our tooling:
//   - Default (CGO_ENABLED=0): pure Go modernc.org/sqlite
//   - CGO mode (-tags cgo_sqlite): mattn/go-sqlite3
package catalog

import (
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
)

// ErrNotFound indicates no catalog entry matches the query.
var ErrNotFound = errors.New("catalog: entry not found")

const schema = `
CREATE TABLE IF NOT EXISTS encodes (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	extension      TEXT NOT NULL,
	size_bytes     INTEGER NOT NULL,
	pages          INTEGER NOT NULL,
	blake3         TEXT NOT NULL,
	container_path TEXT NOT NULL,
	created_at     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_encodes_blake3 ON encodes(blake3);
`

// Entry is one recorded encode run.
type Entry struct {
	ID            string
	Name          string
	Extension     string
	SizeBytes     int64
	Pages         int
	BLAKE3        string
	ContainerPath string
	CreatedAt     time.Time
}

// Catalog is an open encode ledger.
type Catalog struct {
	db *sql.DB
}

// Open opens (creating if necessary) a catalog database at path.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: failed to initialize schema: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Record inserts an entry, assigning a fresh ID and timestamp when unset.
func (c *Catalog) Record(e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := c.db.Exec(
		`INSERT INTO encodes (id, name, extension, size_bytes, pages, blake3, container_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Extension, e.SizeBytes, e.Pages, e.BLAKE3, e.ContainerPath,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("catalog: failed to record entry: %w", err)
	}
	return nil
}

// List returns all entries, most recent first.
func (c *Catalog) List() ([]*Entry, error) {
	rows, err := c.db.Query(
		`SELECT id, name, extension, size_bytes, pages, blake3, container_path, created_at
		 FROM encodes ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: failed to read entries: %w", err)
	}
	return entries, nil
}

// FindByHash returns the most recent entry whose original bytes hash to
// blake3Hex, or ErrNotFound.
func (c *Catalog) FindByHash(blake3Hex string) (*Entry, error) {
	rows, err := c.db.Query(
		`SELECT id, name, extension, size_bytes, pages, blake3, container_path, created_at
		 FROM encodes WHERE blake3 = ? ORDER BY created_at DESC, id LIMIT 1`, blake3Hex)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to query by hash: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("catalog: failed to query by hash: %w", err)
		}
		return nil, ErrNotFound
	}
	return scanEntry(rows)
}

func scanEntry(rows *sql.Rows) (*Entry, error) {
	var e Entry
	var createdAt string
	if err := rows.Scan(&e.ID, &e.Name, &e.Extension, &e.SizeBytes, &e.Pages,
		&e.BLAKE3, &e.ContainerPath, &createdAt); err != nil {
		return nil, fmt.Errorf("catalog: failed to scan entry: %w", err)
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("catalog: bad created_at %q: %w", createdAt, err)
	}
	e.CreatedAt = t
	return &e, nil
}

// Hash computes the BLAKE3 hash of data as lowercase hex.
func Hash(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// DriverType identifies the underlying SQLite implementation: "purego"
// for modernc.org/sqlite, "cgo" for mattn/go-sqlite3.
func DriverType() string {
	return driverType
}
