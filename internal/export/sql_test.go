package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dictforge/dictforge/internal/dict"
)

func renderSQL(t *testing.T, d *dict.Dictionary, opts SQLOptions) string {
	t.Helper()
	out, err := (&SQLRenderer{Options: opts}).Render(d)
	require.NoError(t, err)
	return string(out)
}

func TestSQLRenderer_ColumnTypes(t *testing.T) {
	ddl := renderSQL(t, sampleDictionary(t), SQLOptions{Dialect: DialectPostgres})

	assert.Contains(t, ddl, `CREATE TABLE IF NOT EXISTS "data_dictionary" (`)
	assert.Contains(t, ddl, `"age" NUMERIC`)
	assert.Contains(t, ddl, `"color" TEXT`)
	assert.Contains(t, ddl, `"observed_at" TIMESTAMP`)
}

func TestSQLRenderer_TimeSeriesWithoutConstraints(t *testing.T) {
	d := dict.New("ts")
	_, err := d.CreateField("measured_at", dict.TimeSeries)
	require.NoError(t, err)

	ddl := renderSQL(t, d, SQLOptions{Dialect: DialectPostgres})
	assert.Contains(t, ddl, `"measured_at" TIMESTAMP`)
	assert.NotContains(t, ddl, "CHECK")
}

func TestSQLRenderer_RangeChecks(t *testing.T) {
	d := dict.New("ranges")
	_, err := d.CreateField("age", dict.Continuous)
	require.NoError(t, err)
	both, err := dict.NewRangeConstraint(dict.Continuous, f64(0), f64(120))
	require.NoError(t, err)
	require.NoError(t, d.AddConstraint("age", both))

	_, err = d.CreateField("score", dict.Continuous)
	require.NoError(t, err)
	minOnly, err := dict.NewRangeConstraint(dict.Continuous, f64(0), nil)
	require.NoError(t, err)
	require.NoError(t, d.AddConstraint("score", minOnly))

	_, err = d.CreateField("discount", dict.Continuous)
	require.NoError(t, err)
	maxOnly, err := dict.NewRangeConstraint(dict.Continuous, nil, f64(0.5))
	require.NoError(t, err)
	require.NoError(t, d.AddConstraint("discount", maxOnly))

	ddl := renderSQL(t, d, SQLOptions{Dialect: DialectPostgres})
	assert.Contains(t, ddl, `"age" NUMERIC CHECK ("age" BETWEEN 0 AND 120)`)
	assert.Contains(t, ddl, `"score" NUMERIC CHECK ("score" >= 0)`)
	assert.Contains(t, ddl, `"discount" NUMERIC CHECK ("discount" <= 0.5)`)
}

func TestSQLRenderer_AllowedValuesCheck(t *testing.T) {
	d := dict.New("values")
	_, err := d.CreateField("status", dict.Nominal)
	require.NoError(t, err)
	av, err := dict.NewAllowedValuesConstraint(dict.Nominal, []string{"open", "closed", "it's complicated"})
	require.NoError(t, err)
	require.NoError(t, d.AddConstraint("status", av))

	ddl := renderSQL(t, d, SQLOptions{Dialect: DialectPostgres})
	assert.Contains(t, ddl, `CHECK ("status" IN ('closed', 'it''s complicated', 'open'))`)
}

func TestSQLRenderer_PatternDialects(t *testing.T) {
	d := dict.New("patterns")
	_, err := d.CreateField("code", dict.Nominal)
	require.NoError(t, err)
	re, err := dict.NewRegexConstraint(dict.Nominal, "^[A-Z]{3}$")
	require.NoError(t, err)
	require.NoError(t, d.AddConstraint("code", re))

	pg := renderSQL(t, d, SQLOptions{Dialect: DialectPostgres})
	assert.Contains(t, pg, `CHECK ("code" ~ '^[A-Z]{3}$')`)

	// sqlite has no regex operator: the pattern surfaces as a comment,
	// never silently dropped
	lite := renderSQL(t, d, SQLOptions{Dialect: DialectSQLite})
	assert.NotContains(t, lite, "~")
	assert.Contains(t, lite, "-- pattern (unenforced): ^[A-Z]{3}$")
}

func TestSQLRenderer_TimeSeriesRangeAsComment(t *testing.T) {
	d := dict.New("ts")
	_, err := d.CreateField("observed_at", dict.TimeSeries)
	require.NoError(t, err)
	rng, err := dict.NewRangeConstraint(dict.TimeSeries, f64(0), nil)
	require.NoError(t, err)
	require.NoError(t, d.AddConstraint("observed_at", rng))

	ddl := renderSQL(t, d, SQLOptions{Dialect: DialectPostgres})
	assert.NotContains(t, ddl, "CHECK")
	assert.Contains(t, ddl, "-- range (unenforced):")
}

func TestSQLRenderer_CustomTableAndIdentifiers(t *testing.T) {
	d := dict.New("idents")
	_, err := d.CreateField("First Name", dict.Nominal)
	require.NoError(t, err)

	ddl := renderSQL(t, d, SQLOptions{Dialect: DialectPostgres, Table: "Customer Profile"})
	assert.Contains(t, ddl, `CREATE TABLE IF NOT EXISTS "customer_profile"`)
	assert.Contains(t, ddl, `"first_name" TEXT`)
}

func TestSQLRenderer_ColumnsFollowDictionaryOrder(t *testing.T) {
	ddl := renderSQL(t, sampleDictionary(t), SQLOptions{Dialect: DialectPostgres})

	age := strings.Index(ddl, `"age"`)
	color := strings.Index(ddl, `"color"`)
	observed := strings.Index(ddl, `"observed_at"`)
	assert.True(t, age < color && color < observed, "columns out of order:\n%s", ddl)
}

func TestSQLRenderer_Deterministic(t *testing.T) {
	d := sampleDictionary(t)
	r := &SQLRenderer{Options: SQLOptions{Dialect: DialectPostgres}}

	first, err := r.Render(d)
	require.NoError(t, err)
	second, err := r.Render(d)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSQLRenderer_UnsupportedType(t *testing.T) {
	d := dict.New("bad")
	_, err := d.CreateField("mystery", dict.AnalyticalType(99))
	require.NoError(t, err)

	_, err = (&SQLRenderer{Options: SQLOptions{Dialect: DialectPostgres}}).Render(d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no SQL column mapping")
}

func TestParseDialect(t *testing.T) {
	for _, d := range []Dialect{DialectPostgres, DialectSQLite} {
		parsed, err := ParseDialect(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
	_, err := ParseDialect("oracle")
	assert.Error(t, err)
}
