// Package export renders a dictionary into exchange artifacts (CSV,
// JSON, YAML, SQL DDL) and parses structured-text artifacts back into a
// validated dictionary. Renderers are pure: rendering the same dictionary
// twice produces byte-identical output.
package export

import (
	"fmt"

	"github.com/dictforge/dictforge/internal/dict"
)

// Renderer turns a dictionary snapshot into a byte artifact
type Renderer interface {
	// Format returns the short format name (csv, json, yaml, sql)
	Format() string
	// Render produces the artifact. It never mutates the dictionary.
	Render(d *dict.Dictionary) ([]byte, error)
}

// Document is the serialized shape of a dictionary in structured-text
// artifacts. A field node is a direct serialization of the field record.
type Document struct {
	ID     string              `json:"id,omitempty" yaml:"id,omitempty"`
	Fields []*dict.FieldRecord `json:"fields" yaml:"fields"`
}

// Snapshot builds the serializable document for a dictionary
func Snapshot(d *dict.Dictionary) *Document {
	return &Document{ID: d.ID(), Fields: d.Fields()}
}

// ForFormat returns the renderer registered for the given format name
func ForFormat(format string, sqlOpts SQLOptions) (Renderer, error) {
	switch format {
	case "csv":
		return &CSVRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "yaml":
		return &YAMLRenderer{}, nil
	case "sql":
		return &SQLRenderer{Options: sqlOpts}, nil
	default:
		return nil, fmt.Errorf("unknown export format: %s", format)
	}
}
