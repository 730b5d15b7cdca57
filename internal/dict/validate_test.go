package dict

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestNewRegexConstraint(t *testing.T) {
	c, err := NewRegexConstraint(Nominal, "^[A-Z].*")
	require.NoError(t, err)
	assert.Equal(t, KindRegexPattern, c.Kind)
	assert.Equal(t, "^[A-Z].*", c.Pattern)
}

func TestNewRegexConstraint_IllegalForContinuous(t *testing.T) {
	_, err := NewRegexConstraint(Continuous, "^[A-Z].*")
	require.Error(t, err)

	var illegal *IllegalConstraintError
	require.True(t, errors.As(err, &illegal))
	assert.Equal(t, Continuous, illegal.Type)
	assert.Equal(t, KindRegexPattern, illegal.Kind)
}

func TestNewRegexConstraint_Malformed(t *testing.T) {
	_, err := NewRegexConstraint(Nominal, "^[unclosed")
	require.Error(t, err)

	var pattern *PatternError
	require.True(t, errors.As(err, &pattern))
	assert.Equal(t, "^[unclosed", pattern.Pattern)
}

func TestNewRangeConstraint(t *testing.T) {
	c, err := NewRangeConstraint(Continuous, f64(0), f64(120))
	require.NoError(t, err)
	require.NotNil(t, c.Min)
	require.NotNil(t, c.Max)
	assert.Equal(t, 0.0, *c.Min)
	assert.Equal(t, 120.0, *c.Max)
}

func TestNewRangeConstraint_OpenBounds(t *testing.T) {
	c, err := NewRangeConstraint(TimeSeries, f64(100), nil)
	require.NoError(t, err)
	require.NotNil(t, c.Min)
	assert.Nil(t, c.Max)

	_, err = NewRangeConstraint(Continuous, nil, nil)
	var rangeErr *RangeError
	require.True(t, errors.As(err, &rangeErr))
}

func TestNewRangeConstraint_MinAboveMax(t *testing.T) {
	_, err := NewRangeConstraint(Continuous, f64(10), f64(1))
	var rangeErr *RangeError
	require.True(t, errors.As(err, &rangeErr))
}

func TestNewRangeConstraint_IllegalForNominal(t *testing.T) {
	_, err := NewRangeConstraint(Nominal, f64(0), f64(1))
	var illegal *IllegalConstraintError
	require.True(t, errors.As(err, &illegal))
}

func TestNewAllowedValuesConstraint_Normalizes(t *testing.T) {
	c, err := NewAllowedValuesConstraint(Nominal, []string{"red", " blue ", "red", "", "green"})
	require.NoError(t, err)
	assert.Equal(t, []string{"blue", "green", "red"}, c.Values)
}

func TestNewAllowedValuesConstraint_Empty(t *testing.T) {
	_, err := NewAllowedValuesConstraint(Nominal, nil)
	var av *AllowedValuesError
	require.True(t, errors.As(err, &av))
	assert.Equal(t, 0, av.Distinct)
}

func TestNewAllowedValuesConstraint_SingleValue(t *testing.T) {
	// One distinct value cannot constrain anything
	_, err := NewAllowedValuesConstraint(Ordinal, []string{"only", "only "})
	var av *AllowedValuesError
	require.True(t, errors.As(err, &av))
	assert.Equal(t, 1, av.Distinct)
}

func TestCheckConstraint_RevalidatesDeserializedValues(t *testing.T) {
	// Constraints arriving from an artifact bypass the constructors, so
	// CheckConstraint must catch the same problems
	bad := Constraint{Kind: KindNumericRange, Min: f64(5), Max: f64(1)}
	var rangeErr *RangeError
	require.True(t, errors.As(CheckConstraint(Ordinal, bad), &rangeErr))

	ok := Constraint{Kind: KindAllowedValues, Values: []string{"a", "b"}}
	require.NoError(t, CheckConstraint(Nominal, ok))
}

func TestConstraint_Clone_Independent(t *testing.T) {
	c, err := NewRangeConstraint(Continuous, f64(1), f64(2))
	require.NoError(t, err)

	clone := c.Clone()
	*clone.Min = 99
	clone.Values = append(clone.Values, "x")

	assert.Equal(t, 1.0, *c.Min)
	assert.Empty(t, c.Values)
}
