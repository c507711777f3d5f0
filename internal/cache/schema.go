package cache

// schemaSQL defines the SQLite schema for the cache database.
// Tables:
//   - source: single row recording the content hash of the cached CV file
//   - header: document-level metadata clauses in document order
//   - terms: term stanzas in document order
//   - parents: is_a targets per term, in declaration order
//   - relationships: typed relationship clauses per term, in declaration order
//
// Ordinal columns preserve clause order so a cache round-trip
// reproduces the document exactly.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS source (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    hash TEXT NOT NULL,
    cached_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS header (
    ord INTEGER PRIMARY KEY,
    tag TEXT NOT NULL,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS terms (
    ord INTEGER PRIMARY KEY,
    accession TEXT NOT NULL,
    name TEXT NOT NULL DEFAULT '',
    definition TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS parents (
    term_ord INTEGER NOT NULL,
    ord INTEGER NOT NULL,
    parent TEXT NOT NULL,
    PRIMARY KEY (term_ord, ord)
);

CREATE TABLE IF NOT EXISTS relationships (
    term_ord INTEGER NOT NULL,
    ord INTEGER NOT NULL,
    rel_type TEXT NOT NULL,
    target TEXT NOT NULL,
    PRIMARY KEY (term_ord, ord)
);

CREATE INDEX IF NOT EXISTS idx_terms_accession ON terms(accession);
`

// initSchema creates the database tables and indexes if they don't exist.
func (c *Cache) initSchema() error {
	_, err := c.db.Exec(schemaSQL)
	return err
}
