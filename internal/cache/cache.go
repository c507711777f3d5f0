// Package cache provides SQLite-backed caching of the parsed CV
// document. Parsing the compressed OBO file dominates a run, so the
// parsed form is stored in .cvx/cache.db keyed by the source file's
// content hash and reused until the CV snapshot changes.
package cache

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Cache manages the .cvx/cache.db SQLite database holding the parsed
// document.
type Cache struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the cache database in the specified .cvx
// directory, initializing the schema if the database is new.
func Open(cvxDir string) (*Cache, error) {
	dbPath := filepath.Join(cvxDir, "cache.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	cache := &Cache{db: db, dbPath: dbPath}

	if err := cache.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return cache, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Clear removes the cached document and its source record.
func (c *Cache) Clear() error {
	_, err := c.db.Exec("DELETE FROM relationships; DELETE FROM parents; DELETE FROM terms; DELETE FROM header; DELETE FROM source;")
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.dbPath
}

// DB returns the underlying database connection for advanced operations.
func (c *Cache) DB() *sql.DB {
	return c.db
}

// Stats returns cache statistics.
type Stats struct {
	TermCount   int64
	HeaderCount int64
	SourceHash  string
}

// GetStats returns statistics about the cache contents. SourceHash is
// empty when nothing is cached.
func (c *Cache) GetStats() (*Stats, error) {
	var stats Stats

	err := c.db.QueryRow("SELECT COUNT(*) FROM terms").Scan(&stats.TermCount)
	if err != nil {
		return nil, fmt.Errorf("count terms: %w", err)
	}

	err = c.db.QueryRow("SELECT COUNT(*) FROM header").Scan(&stats.HeaderCount)
	if err != nil {
		return nil, fmt.Errorf("count header: %w", err)
	}

	err = c.db.QueryRow("SELECT hash FROM source WHERE id = 1").Scan(&stats.SourceHash)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("read source hash: %w", err)
	}

	return &stats, nil
}
