// Package template implements reusable field blueprints: capturing a
// field record as a named template, persisting templates through a
// pluggable store, and instantiating them back into concrete fields.
package template

import (
	"github.com/dictforge/dictforge/internal/dict"
)

// Template is a partial field record: type, constraints, and governance
// defaults with the field name scrubbed out. Templates are referenced,
// never mutated; instantiation always works on deep copies.
type Template struct {
	Name        string              `json:"name" yaml:"name"`
	Type        dict.AnalyticalType `json:"type" yaml:"type"`
	Constraints []dict.Constraint   `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Governance  dict.GovernanceTag  `json:"governance" yaml:"governance"`
}

// Clone returns an independent copy of the template
func (t *Template) Clone() *Template {
	out := &Template{
		Name:       t.Name,
		Type:       t.Type,
		Governance: t.Governance,
	}
	for _, c := range t.Constraints {
		out.Constraints = append(out.Constraints, c.Clone())
	}
	return out
}

// FromField builds a template from a field record, copying type,
// constraints, and governance by value and omitting the field name and
// description.
func FromField(name string, f *dict.FieldRecord) *Template {
	t := &Template{
		Name:       name,
		Type:       f.Type,
		Governance: f.Governance,
	}
	for _, c := range f.Constraints {
		t.Constraints = append(t.Constraints, c.Clone())
	}
	return t
}
