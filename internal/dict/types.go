// Package dict implements the data dictionary model: analytical types,
// field constraints, governance metadata, and the ordered collection of
// field records that makes up a dictionary. All mutation goes through the
// Dictionary type so the coherence and uniqueness invariants hold after
// every operation.
package dict

import (
	"encoding/json"
	"fmt"
)

// AnalyticalType classifies the statistical nature of a field, distinct
// from its physical storage type.
type AnalyticalType int

const (
	Continuous AnalyticalType = iota
	Nominal
	Ordinal
	TimeSeries
)

// String returns the string representation of the analytical type
func (t AnalyticalType) String() string {
	switch t {
	case Continuous:
		return "continuous"
	case Nominal:
		return "nominal"
	case Ordinal:
		return "ordinal"
	case TimeSeries:
		return "time_series"
	default:
		return "unknown"
	}
}

// ParseAnalyticalType converts a string to an AnalyticalType
func ParseAnalyticalType(s string) (AnalyticalType, error) {
	switch s {
	case "continuous":
		return Continuous, nil
	case "nominal":
		return Nominal, nil
	case "ordinal":
		return Ordinal, nil
	case "time_series":
		return TimeSeries, nil
	default:
		return 0, fmt.Errorf("unknown analytical type: %s", s)
	}
}

// MarshalJSON implements json.Marshaler
func (t AnalyticalType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (t *AnalyticalType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAnalyticalType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (t AnalyticalType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (t *AnalyticalType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseAnalyticalType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// AnalyticalTypes returns all analytical types in declaration order
func AnalyticalTypes() []AnalyticalType {
	return []AnalyticalType{Continuous, Nominal, Ordinal, TimeSeries}
}

// Sensitivity is the governance risk level of a field if accessed by
// unauthorized parties.
type Sensitivity int

const (
	SensitivityPublic Sensitivity = iota
	SensitivityInternal
	SensitivityConfidential
	SensitivityRestricted
)

// String returns the string representation of the sensitivity level
func (s Sensitivity) String() string {
	switch s {
	case SensitivityPublic:
		return "public"
	case SensitivityInternal:
		return "internal"
	case SensitivityConfidential:
		return "confidential"
	case SensitivityRestricted:
		return "restricted"
	default:
		return "unknown"
	}
}

// ParseSensitivity converts a string to a Sensitivity
func ParseSensitivity(s string) (Sensitivity, error) {
	switch s {
	case "public":
		return SensitivityPublic, nil
	case "internal":
		return SensitivityInternal, nil
	case "confidential":
		return SensitivityConfidential, nil
	case "restricted":
		return SensitivityRestricted, nil
	default:
		return 0, fmt.Errorf("unknown sensitivity level: %s", s)
	}
}

// MarshalJSON implements json.Marshaler
func (s Sensitivity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Sensitivity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSensitivity(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (s Sensitivity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (s *Sensitivity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseSensitivity(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
