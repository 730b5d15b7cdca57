package dict

import (
	"regexp"
	"sort"
	"strings"
)

// NewRegexConstraint validates and normalizes a regex pattern constraint
// for the given analytical type
func NewRegexConstraint(t AnalyticalType, pattern string) (Constraint, error) {
	c := Constraint{Kind: KindRegexPattern, Pattern: pattern}
	if err := CheckConstraint(t, c); err != nil {
		return Constraint{}, err
	}
	return c, nil
}

// NewRangeConstraint validates and normalizes a numeric range constraint.
// A nil bound is open; at least one bound must be present.
func NewRangeConstraint(t AnalyticalType, min, max *float64) (Constraint, error) {
	c := Constraint{Kind: KindNumericRange}
	if min != nil {
		v := *min
		c.Min = &v
	}
	if max != nil {
		v := *max
		c.Max = &v
	}
	if err := CheckConstraint(t, c); err != nil {
		return Constraint{}, err
	}
	return c, nil
}

// NewAllowedValuesConstraint validates and normalizes an allowed-values
// constraint. Values are trimmed, deduplicated, and sorted; a set with
// fewer than two distinct values has no constraining power and is
// rejected.
func NewAllowedValuesConstraint(t AnalyticalType, values []string) (Constraint, error) {
	c := Constraint{Kind: KindAllowedValues, Values: normalizeValues(values)}
	if err := CheckConstraint(t, c); err != nil {
		return Constraint{}, err
	}
	return c, nil
}

// CheckConstraint verifies that a constraint is legal for the analytical
// type and that its value is coherent. It is the single validation path:
// the New* constructors run it on fresh input and the importer re-runs it
// on deserialized artifacts.
func CheckConstraint(t AnalyticalType, c Constraint) error {
	if !KindLegalFor(t, c.Kind) {
		return &IllegalConstraintError{Type: t, Kind: c.Kind}
	}

	switch c.Kind {
	case KindRegexPattern:
		if _, err := regexp.Compile(c.Pattern); err != nil {
			return &PatternError{Pattern: c.Pattern, Cause: err}
		}

	case KindNumericRange:
		if c.Min == nil && c.Max == nil {
			return &RangeError{Reason: "at least one bound must be set"}
		}
		if c.Min != nil && c.Max != nil && *c.Min > *c.Max {
			return &RangeError{Reason: "min is greater than max"}
		}

	case KindAllowedValues:
		distinct := len(normalizeValues(c.Values))
		if distinct < 2 {
			return &AllowedValuesError{Distinct: distinct}
		}
	}

	return nil
}

// normalizeValues trims, drops empties, deduplicates, and sorts an
// allowed-values list so equal sets always normalize to the same slice
func normalizeValues(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
