package cache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hargabyte/cvx/internal/obo"
)

// Load returns the cached document if the stored source hash matches.
// The second return value reports a hit; a miss is not an error.
func (c *Cache) Load(sourceHash string) (*obo.Document, bool, error) {
	var storedHash string
	err := c.db.QueryRow("SELECT hash FROM source WHERE id = 1").Scan(&storedHash)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read source hash: %w", err)
	}
	if storedHash != sourceHash {
		return nil, false, nil
	}

	doc := &obo.Document{}

	rows, err := c.db.Query("SELECT tag, value FROM header ORDER BY ord")
	if err != nil {
		return nil, false, fmt.Errorf("query header: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var clause obo.HeaderClause
		if err := rows.Scan(&clause.Tag, &clause.Value); err != nil {
			return nil, false, fmt.Errorf("scan header clause: %w", err)
		}
		doc.Header = append(doc.Header, clause)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate header: %w", err)
	}

	terms, err := c.loadTerms()
	if err != nil {
		return nil, false, err
	}
	doc.Terms = terms

	return doc, true, nil
}

// loadTerms reads the term stanzas with their parents and
// relationships reattached in declaration order.
func (c *Cache) loadTerms() ([]*obo.Term, error) {
	rows, err := c.db.Query("SELECT ord, accession, name, definition FROM terms ORDER BY ord")
	if err != nil {
		return nil, fmt.Errorf("query terms: %w", err)
	}
	defer rows.Close()

	var terms []*obo.Term
	byOrd := make(map[int64]*obo.Term)
	for rows.Next() {
		var (
			ord       int64
			accession string
			term      obo.Term
		)
		if err := rows.Scan(&ord, &accession, &term.Name, &term.Definition); err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		id, err := obo.ParseIdent(accession)
		if err != nil {
			return nil, fmt.Errorf("cached term %d: %w", ord, err)
		}
		term.ID = id
		terms = append(terms, &term)
		byOrd[ord] = &term
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate terms: %w", err)
	}

	prows, err := c.db.Query("SELECT term_ord, parent FROM parents ORDER BY term_ord, ord")
	if err != nil {
		return nil, fmt.Errorf("query parents: %w", err)
	}
	defer prows.Close()
	for prows.Next() {
		var (
			termOrd int64
			parent  string
		)
		if err := prows.Scan(&termOrd, &parent); err != nil {
			return nil, fmt.Errorf("scan parent: %w", err)
		}
		id, err := obo.ParseIdent(parent)
		if err != nil {
			return nil, fmt.Errorf("cached parent of term %d: %w", termOrd, err)
		}
		if term, ok := byOrd[termOrd]; ok {
			term.Parents = append(term.Parents, id)
		}
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("iterate parents: %w", err)
	}

	rrows, err := c.db.Query("SELECT term_ord, rel_type, target FROM relationships ORDER BY term_ord, ord")
	if err != nil {
		return nil, fmt.Errorf("query relationships: %w", err)
	}
	defer rrows.Close()
	for rrows.Next() {
		var (
			termOrd int64
			rel     obo.Relationship
		)
		if err := rrows.Scan(&termOrd, &rel.Type, &rel.Target); err != nil {
			return nil, fmt.Errorf("scan relationship: %w", err)
		}
		if term, ok := byOrd[termOrd]; ok {
			term.Relationships = append(term.Relationships, rel)
		}
	}
	if err := rrows.Err(); err != nil {
		return nil, fmt.Errorf("iterate relationships: %w", err)
	}

	return terms, nil
}

// Store replaces the cached document with doc under the given source
// hash. The write is transactional so readers never observe a half
// replaced cache.
func (c *Cache) Store(sourceHash string, doc *obo.Document) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin cache write: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"relationships", "parents", "terms", "header", "source"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	_, err = tx.Exec("INSERT INTO source (id, hash, cached_at) VALUES (1, ?, ?)",
		sourceHash, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write source record: %w", err)
	}

	for i, clause := range doc.Header {
		_, err := tx.Exec("INSERT INTO header (ord, tag, value) VALUES (?, ?, ?)",
			i, clause.Tag, clause.Value)
		if err != nil {
			return fmt.Errorf("write header clause: %w", err)
		}
	}

	termStmt, err := tx.Prepare("INSERT INTO terms (ord, accession, name, definition) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare term insert: %w", err)
	}
	defer termStmt.Close()

	parentStmt, err := tx.Prepare("INSERT INTO parents (term_ord, ord, parent) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare parent insert: %w", err)
	}
	defer parentStmt.Close()

	relStmt, err := tx.Prepare("INSERT INTO relationships (term_ord, ord, rel_type, target) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare relationship insert: %w", err)
	}
	defer relStmt.Close()

	for i, term := range doc.Terms {
		if _, err := termStmt.Exec(i, term.ID.String(), term.Name, term.Definition); err != nil {
			return fmt.Errorf("write term %s: %w", term.ID, err)
		}
		for j, parent := range term.Parents {
			if _, err := parentStmt.Exec(i, j, parent.String()); err != nil {
				return fmt.Errorf("write parent of %s: %w", term.ID, err)
			}
		}
		for j, rel := range term.Relationships {
			if _, err := relStmt.Exec(i, j, rel.Type, rel.Target); err != nil {
				return fmt.Errorf("write relationship of %s: %w", term.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cache write: %w", err)
	}
	return nil
}
