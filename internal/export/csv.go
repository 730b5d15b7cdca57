package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/dictforge/dictforge/internal/dict"
)

// csvColumns is the fixed column order of tabular exports. Constraint
// columns hold the normalized value or stay empty when the constraint is
// absent.
var csvColumns = []string{
	"name",
	"type",
	"pattern",
	"min",
	"max",
	"allowed_values",
	"sensitivity",
	"pii",
	"owner",
	"compliance",
	"description",
}

// CSVRenderer renders one row per field record in the csvColumns order
type CSVRenderer struct{}

// Format returns the format name
func (r *CSVRenderer) Format() string { return "csv" }

// Render produces the CSV artifact
func (r *CSVRenderer) Render(d *dict.Dictionary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvColumns); err != nil {
		return nil, err
	}

	for _, f := range d.Fields() {
		if err := w.Write(csvRow(f)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvRow(f *dict.FieldRecord) []string {
	var pattern, min, max, values string

	if c, ok := f.Constraint(dict.KindRegexPattern); ok {
		pattern = c.Pattern
	}
	if c, ok := f.Constraint(dict.KindNumericRange); ok {
		if c.Min != nil {
			min = formatNumber(*c.Min)
		}
		if c.Max != nil {
			max = formatNumber(*c.Max)
		}
	}
	if c, ok := f.Constraint(dict.KindAllowedValues); ok {
		values = strings.Join(c.Values, ", ")
	}

	return []string{
		f.Name,
		f.Type.String(),
		pattern,
		min,
		max,
		values,
		f.Governance.Sensitivity.String(),
		strconv.FormatBool(f.Governance.PII),
		f.Governance.Owner,
		f.Governance.Compliance,
		f.Description,
	}
}

// formatNumber renders a numeric bound without trailing zeros
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
