package dict

// GovernanceTag carries the data-governance metadata of a field,
// independent of its type and constraints. Compliance optionally names a
// regulation id from the regulation reference library.
type GovernanceTag struct {
	Sensitivity Sensitivity `json:"sensitivity" yaml:"sensitivity"`
	PII         bool        `json:"pii" yaml:"pii"`
	Owner       string      `json:"owner,omitempty" yaml:"owner,omitempty"`
	Compliance  string      `json:"compliance,omitempty" yaml:"compliance,omitempty"`
}

// FieldRecord is one dictionary entry: a named field with its analytical
// type, active constraints (at most one per kind), governance metadata,
// and free-text description.
type FieldRecord struct {
	Name        string        `json:"name" yaml:"name"`
	Type        AnalyticalType `json:"type" yaml:"type"`
	Constraints []Constraint  `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Governance  GovernanceTag `json:"governance" yaml:"governance"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
}

// Constraint returns the active constraint of the given kind, if any
func (f *FieldRecord) Constraint(kind ConstraintKind) (Constraint, bool) {
	for _, c := range f.Constraints {
		if c.Kind == kind {
			return c, true
		}
	}
	return Constraint{}, false
}

// HasConstraint reports whether a constraint of the given kind is active
func (f *FieldRecord) HasConstraint(kind ConstraintKind) bool {
	_, ok := f.Constraint(kind)
	return ok
}

// Clone returns a deep copy of the field record. Edits to the copy never
// affect the original.
func (f *FieldRecord) Clone() *FieldRecord {
	out := &FieldRecord{
		Name:        f.Name,
		Type:        f.Type,
		Governance:  f.Governance,
		Description: f.Description,
	}
	for _, c := range f.Constraints {
		out.Constraints = append(out.Constraints, c.Clone())
	}
	return out
}
