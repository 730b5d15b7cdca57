package export

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dictforge/dictforge/internal/dict"
)

// ImportError aggregates the per-field problems found while validating an
// artifact. The dictionary is never partially loaded: either every field
// passes or nothing does.
type ImportError struct {
	Problems []dict.FieldError
}

// Error implements the error interface
func (e *ImportError) Error() string {
	ve := &dict.ValidationErrors{Problems: e.Problems}
	return "import failed: " + ve.Error()
}

// rawDocument mirrors Document with untyped leaves, so a single bad enum
// string surfaces as a per-field problem instead of aborting the decode
type rawDocument struct {
	ID     string     `json:"id" yaml:"id"`
	Fields []rawField `json:"fields" yaml:"fields"`
}

type rawField struct {
	Name        string          `json:"name" yaml:"name"`
	Type        string          `json:"type" yaml:"type"`
	Constraints []rawConstraint `json:"constraints" yaml:"constraints"`
	Governance  rawGovernance   `json:"governance" yaml:"governance"`
	Description string          `json:"description" yaml:"description"`
}

type rawConstraint struct {
	Kind    string   `json:"kind" yaml:"kind"`
	Pattern string   `json:"pattern" yaml:"pattern"`
	Min     *float64 `json:"min" yaml:"min"`
	Max     *float64 `json:"max" yaml:"max"`
	Values  []string `json:"values" yaml:"values"`
}

type rawGovernance struct {
	Sensitivity string `json:"sensitivity" yaml:"sensitivity"`
	PII         bool   `json:"pii" yaml:"pii"`
	Owner       string `json:"owner" yaml:"owner"`
	Compliance  string `json:"compliance" yaml:"compliance"`
}

// ImportJSON parses a JSON artifact into a validated dictionary
func ImportJSON(data []byte) (*dict.Dictionary, error) {
	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing JSON artifact: %w", err)
	}
	return rebuild(&doc)
}

// ImportYAML parses a YAML artifact into a validated dictionary
func ImportYAML(data []byte) (*dict.Dictionary, error) {
	var doc rawDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML artifact: %w", err)
	}
	return rebuild(&doc)
}

// rebuild revalidates every field through the constraint validator and
// the dictionary's own invariants. The artifact is never trusted.
func rebuild(doc *rawDocument) (*dict.Dictionary, error) {
	ve := &dict.ValidationErrors{}
	d := dict.New(doc.ID)

	for i, rf := range doc.Fields {
		label := rf.Name
		if label == "" {
			label = fmt.Sprintf("field[%d]", i)
			ve.Add(label, "field name is empty")
			continue
		}

		t, err := dict.ParseAnalyticalType(rf.Type)
		if err != nil {
			ve.AddError(label, err)
			continue
		}

		record := &dict.FieldRecord{
			Name:        rf.Name,
			Type:        t,
			Description: rf.Description,
		}

		if rf.Governance.Sensitivity != "" {
			sens, err := dict.ParseSensitivity(rf.Governance.Sensitivity)
			if err != nil {
				ve.AddError(label, err)
				continue
			}
			record.Governance.Sensitivity = sens
		}
		record.Governance.PII = rf.Governance.PII
		record.Governance.Owner = rf.Governance.Owner
		record.Governance.Compliance = rf.Governance.Compliance

		bad := false
		for _, rc := range rf.Constraints {
			c, err := rebuildConstraint(t, rc)
			if err != nil {
				ve.AddError(label, err)
				bad = true
				continue
			}
			record.Constraints = append(record.Constraints, c)
		}
		if bad {
			continue
		}

		// Insert re-checks name uniqueness, kind uniqueness, and
		// coherence
		if _, err := d.Insert(record); err != nil {
			ve.AddError(label, err)
		}
	}

	if ve.HasErrors() {
		return nil, &ImportError{Problems: ve.Problems}
	}
	return d, nil
}

func rebuildConstraint(t dict.AnalyticalType, rc rawConstraint) (dict.Constraint, error) {
	kind, err := dict.ParseConstraintKind(rc.Kind)
	if err != nil {
		return dict.Constraint{}, err
	}

	switch kind {
	case dict.KindRegexPattern:
		return dict.NewRegexConstraint(t, rc.Pattern)
	case dict.KindNumericRange:
		return dict.NewRangeConstraint(t, rc.Min, rc.Max)
	default:
		return dict.NewAllowedValuesConstraint(t, rc.Values)
	}
}
