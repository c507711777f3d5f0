package obo

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single clause line. Definitions in the PSI-MS CV
// run to a few KB; 1MB leaves ample headroom.
const maxLineSize = 1 << 20

// Load reads and parses an OBO document from disk. Gzip-compressed
// files are detected by magic number and decompressed transparently.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cv file: %w", err)
	}
	doc, err := ParseData(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// ParseData parses an OBO document held in memory, decompressing first
// when the bytes carry the gzip magic number.
func ParseData(data []byte) (*Document, error) {
	var r io.Reader = bytes.NewReader(data)
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer gz.Close()
		r = gz
	}
	return Parse(r)
}

// Parse reads an uncompressed OBO document. Clauses before the first
// stanza form the header. Only [Term] stanzas are modeled; [Typedef]
// and other stanza kinds are skipped. Within a term, the clauses
// relevant to extraction (id, name, is_a, relationship, def) are kept
// in declaration order and everything else is ignored.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}

	var (
		current *Term // nil while in header or a skipped stanza
		inTerm  bool
		lineNo  int
	)

	flush := func() error {
		if current == nil {
			return nil
		}
		if current.ID.IsZero() {
			return &ParseError{Line: lineNo, Message: "term stanza without id clause"}
		}
		doc.Terms = append(doc.Terms, current)
		current = nil
		return nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	inHeader := true

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if err := flush(); err != nil {
				return nil, err
			}
			inHeader = false
			inTerm = line == "[Term]"
			if inTerm {
				current = &Term{}
			}
			continue
		}

		tag, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("malformed clause %q", line)}
		}
		tag = strings.TrimSpace(tag)
		value = strings.TrimSpace(value)

		if inHeader {
			doc.Header = append(doc.Header, HeaderClause{Tag: tag, Value: value})
			continue
		}
		if !inTerm {
			continue
		}

		switch tag {
		case "id":
			id, err := ParseIdent(stripComment(value))
			if err != nil {
				return nil, &ParseError{Line: lineNo, Message: err.Error()}
			}
			current.ID = id
		case "name":
			current.Name = value
		case "is_a":
			parent, err := ParseIdent(firstField(stripComment(value)))
			if err != nil {
				return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("is_a clause: %v", err)}
			}
			current.Parents = append(current.Parents, parent)
		case "relationship":
			fields := strings.Fields(stripComment(value))
			if len(fields) < 2 {
				return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("malformed relationship clause %q", value)}
			}
			current.Relationships = append(current.Relationships, Relationship{
				Type:   fields[0],
				Target: fields[1],
			})
		case "def":
			def, err := unquote(value)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("def clause: %v", err)}
			}
			current.Definition = def
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan document: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return doc, nil
}

// stripComment removes an OBO trailing comment (" ! ...") from an
// unquoted clause value.
func stripComment(value string) string {
	if i := strings.Index(value, "!"); i >= 0 {
		return strings.TrimSpace(value[:i])
	}
	return value
}

// firstField returns the first whitespace-separated token of value.
func firstField(value string) string {
	if fields := strings.Fields(value); len(fields) > 0 {
		return fields[0]
	}
	return value
}

// unquote extracts the leading quoted string of a def clause, resolving
// OBO backslash escapes. Trailing xref lists are discarded.
func unquote(value string) (string, error) {
	start := strings.IndexByte(value, '"')
	if start < 0 {
		return "", fmt.Errorf("missing opening quote in %q", value)
	}

	var b strings.Builder
	escaped := false
	for _, r := range value[start+1:] {
		if escaped {
			switch r {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteRune(r)
			}
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '"':
			return b.String(), nil
		default:
			b.WriteRune(r)
		}
	}
	return "", fmt.Errorf("unterminated quoted string in %q", value)
}
