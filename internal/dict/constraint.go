package dict

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ConstraintKind identifies the rule a constraint applies to a field's
// values. Each kind may appear at most once per field.
type ConstraintKind int

const (
	KindRegexPattern ConstraintKind = iota
	KindNumericRange
	KindAllowedValues
)

// String returns the string representation of the constraint kind
func (k ConstraintKind) String() string {
	switch k {
	case KindRegexPattern:
		return "regex_pattern"
	case KindNumericRange:
		return "numeric_range"
	case KindAllowedValues:
		return "allowed_values"
	default:
		return "unknown"
	}
}

// ParseConstraintKind converts a string to a ConstraintKind
func ParseConstraintKind(s string) (ConstraintKind, error) {
	switch s {
	case "regex_pattern":
		return KindRegexPattern, nil
	case "numeric_range":
		return KindNumericRange, nil
	case "allowed_values":
		return KindAllowedValues, nil
	default:
		return 0, fmt.Errorf("unknown constraint kind: %s", s)
	}
}

// MarshalJSON implements json.Marshaler
func (k ConstraintKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (k *ConstraintKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseConstraintKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (k ConstraintKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (k *ConstraintKind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseConstraintKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Constraint is a normalized, validated rule narrowing the legal values of
// a field. Exactly one group of fields is populated depending on Kind:
// Pattern for regex_pattern, Min/Max for numeric_range (nil means an open
// bound), Values for allowed_values (sorted, deduplicated).
//
// Constraints are value-like: never mutate one after construction, use
// Clone when storing a copy.
type Constraint struct {
	Kind    ConstraintKind `json:"kind" yaml:"kind"`
	Pattern string         `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Min     *float64       `json:"min,omitempty" yaml:"min,omitempty"`
	Max     *float64       `json:"max,omitempty" yaml:"max,omitempty"`
	Values  []string       `json:"values,omitempty" yaml:"values,omitempty"`
}

// Clone returns an independent copy of the constraint
func (c Constraint) Clone() Constraint {
	out := Constraint{
		Kind:    c.Kind,
		Pattern: c.Pattern,
	}
	if c.Min != nil {
		min := *c.Min
		out.Min = &min
	}
	if c.Max != nil {
		max := *c.Max
		out.Max = &max
	}
	if len(c.Values) > 0 {
		out.Values = append([]string(nil), c.Values...)
	}
	return out
}

// String returns a compact human-readable form of the constraint value
func (c Constraint) String() string {
	switch c.Kind {
	case KindRegexPattern:
		return c.Pattern
	case KindNumericRange:
		lo, hi := "", ""
		if c.Min != nil {
			lo = formatBound(*c.Min)
		}
		if c.Max != nil {
			hi = formatBound(*c.Max)
		}
		return fmt.Sprintf("[%s, %s]", lo, hi)
	case KindAllowedValues:
		return fmt.Sprintf("%v", c.Values)
	default:
		return "unknown"
	}
}

// formatBound renders a numeric bound without trailing zeros
func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
