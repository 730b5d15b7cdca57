package export

import (
	"fmt"
	"strings"

	"github.com/dictforge/dictforge/internal/dict"
)

// Dialect selects the SQL flavor the DDL renderer targets
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectSQLite
)

// String returns the string representation of the dialect
func (d Dialect) String() string {
	switch d {
	case DialectPostgres:
		return "postgres"
	case DialectSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// ParseDialect converts a string to a Dialect
func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "postgres":
		return DialectPostgres, nil
	case "sqlite":
		return DialectSQLite, nil
	default:
		return 0, fmt.Errorf("unknown SQL dialect: %s", s)
	}
}

// SQLOptions configures the DDL renderer
type SQLOptions struct {
	Dialect Dialect
	Table   string
}

// DefaultTable is the table name used when none is configured
const DefaultTable = "data_dictionary"

// UnsupportedTypeMappingError reports an analytical type with no defined
// SQL column mapping. The renderer fails rather than emitting an invalid
// column.
type UnsupportedTypeMappingError struct {
	Type dict.AnalyticalType
}

// Error implements the error interface
func (e *UnsupportedTypeMappingError) Error() string {
	return fmt.Sprintf("no SQL column mapping for analytical type %s", e.Type)
}

// SQLRenderer renders the dictionary as one CREATE TABLE statement with
// inline CHECK constraints. Columns follow the dictionary's field order.
//
// Regex constraints compile to `CHECK (col ~ 'pattern')` on postgres; on
// sqlite, which has no built-in regex operator, the pattern is emitted as
// a trailing comment rather than silently dropped. Numeric ranges on
// time_series columns are likewise emitted as comments, since a bare
// numeric bound has no portable TIMESTAMP literal.
type SQLRenderer struct {
	Options SQLOptions
}

// Format returns the format name
func (r *SQLRenderer) Format() string { return "sql" }

// Render produces the DDL artifact
func (r *SQLRenderer) Render(d *dict.Dictionary) ([]byte, error) {
	table := r.Options.Table
	if table == "" {
		table = DefaultTable
	}

	fields := d.Fields()
	type columnDef struct {
		def     string
		comment string
	}
	columns := make([]columnDef, 0, len(fields))

	for _, f := range fields {
		colName := toSnakeCase(f.Name)
		colType, err := mapColumnType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}

		parts := []string{quoteIdentifier(colName), colType}
		var comments []string

		if c, ok := f.Constraint(dict.KindNumericRange); ok {
			if f.Type == dict.TimeSeries {
				comments = append(comments, fmt.Sprintf("range (unenforced): %s", c.String()))
			} else {
				parts = append(parts, rangeCheck(colName, c))
			}
		}
		if c, ok := f.Constraint(dict.KindAllowedValues); ok {
			parts = append(parts, valuesCheck(colName, c))
		}
		if c, ok := f.Constraint(dict.KindRegexPattern); ok {
			if r.Options.Dialect == DialectPostgres {
				parts = append(parts, patternCheck(colName, c))
			} else {
				comments = append(comments, fmt.Sprintf("pattern (unenforced): %s", c.Pattern))
			}
		}

		columns = append(columns, columnDef{
			def:     strings.Join(parts, " "),
			comment: strings.Join(comments, "; "),
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "-- Data dictionary %s\n", d.ID())
	fmt.Fprintf(&b, "-- Dialect: %s\n", r.Options.Dialect)
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", quoteIdentifier(toSnakeCase(table)))

	for i, col := range columns {
		b.WriteString("  ")
		b.WriteString(col.def)
		if i < len(columns)-1 {
			b.WriteString(",")
		}
		if col.comment != "" {
			b.WriteString(" -- ")
			b.WriteString(col.comment)
		}
		b.WriteString("\n")
	}

	b.WriteString(");\n")
	return []byte(b.String()), nil
}

// mapColumnType maps an analytical type to its SQL column type
func mapColumnType(t dict.AnalyticalType) (string, error) {
	switch t {
	case dict.Continuous:
		return "NUMERIC", nil
	case dict.Nominal, dict.Ordinal:
		return "TEXT", nil
	case dict.TimeSeries:
		return "TIMESTAMP", nil
	default:
		return "", &UnsupportedTypeMappingError{Type: t}
	}
}

func rangeCheck(col string, c dict.Constraint) string {
	quoted := quoteIdentifier(col)
	switch {
	case c.Min != nil && c.Max != nil:
		return fmt.Sprintf("CHECK (%s BETWEEN %s AND %s)", quoted, formatNumber(*c.Min), formatNumber(*c.Max))
	case c.Min != nil:
		return fmt.Sprintf("CHECK (%s >= %s)", quoted, formatNumber(*c.Min))
	default:
		return fmt.Sprintf("CHECK (%s <= %s)", quoted, formatNumber(*c.Max))
	}
}

func valuesCheck(col string, c dict.Constraint) string {
	quoted := make([]string, len(c.Values))
	for i, v := range c.Values {
		quoted[i] = quoteLiteral(v)
	}
	return fmt.Sprintf("CHECK (%s IN (%s))", quoteIdentifier(col), strings.Join(quoted, ", "))
}

func patternCheck(col string, c dict.Constraint) string {
	return fmt.Sprintf("CHECK (%s ~ %s)", quoteIdentifier(col), quoteLiteral(c.Pattern))
}
