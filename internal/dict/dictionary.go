package dict

// Dictionary is the ordered collection of field records owned by one
// editing session. Field names are unique dictionary-wide; every mutating
// operation either commits a valid state or leaves the dictionary
// unchanged.
type Dictionary struct {
	id     string
	fields []*FieldRecord
}

// New creates an empty dictionary with the given identity
func New(id string) *Dictionary {
	return &Dictionary{id: id}
}

// ID returns the dictionary identity
func (d *Dictionary) ID() string {
	return d.id
}

// Len returns the number of fields
func (d *Dictionary) Len() int {
	return len(d.fields)
}

// Fields returns the field records in dictionary order. The slice is a
// copy; the records are the live entries.
func (d *Dictionary) Fields() []*FieldRecord {
	return append([]*FieldRecord(nil), d.fields...)
}

// Field returns the record with the given name
func (d *Dictionary) Field(name string) (*FieldRecord, bool) {
	if i := d.indexOf(name); i >= 0 {
		return d.fields[i], true
	}
	return nil, false
}

// CreateField appends a new field with the given name and analytical type
func (d *Dictionary) CreateField(name string, t AnalyticalType) (*FieldRecord, error) {
	if d.indexOf(name) >= 0 {
		return nil, &DuplicateFieldNameError{Name: name}
	}
	f := &FieldRecord{Name: name, Type: t}
	d.fields = append(d.fields, f)
	return f, nil
}

// Insert adds an independently built record, enforcing name uniqueness
// and constraint coherence before committing. The dictionary stores a
// deep copy, so the caller's record stays detached.
func (d *Dictionary) Insert(f *FieldRecord) (*FieldRecord, error) {
	if d.indexOf(f.Name) >= 0 {
		return nil, &DuplicateFieldNameError{Name: f.Name}
	}

	seen := make(map[ConstraintKind]struct{}, len(f.Constraints))
	for _, c := range f.Constraints {
		if _, dup := seen[c.Kind]; dup {
			return nil, &ConstraintPresentError{Field: f.Name, Kind: c.Kind}
		}
		seen[c.Kind] = struct{}{}
		if err := CheckConstraint(f.Type, c); err != nil {
			return nil, err
		}
	}

	clone := f.Clone()
	d.fields = append(d.fields, clone)
	return clone, nil
}

// SetType changes a field's analytical type and synchronously prunes any
// constraint that is not legal for the new type. It returns the kinds
// that were pruned so the caller can surface them.
func (d *Dictionary) SetType(name string, t AnalyticalType) ([]ConstraintKind, error) {
	f, ok := d.Field(name)
	if !ok {
		return nil, &FieldNotFoundError{Name: name}
	}
	f.Type = t
	return PruneConstraints(f), nil
}

// AddConstraint validates and activates a constraint on a field. Adding a
// kind that is already active fails; remove the old constraint first.
func (d *Dictionary) AddConstraint(name string, c Constraint) error {
	f, ok := d.Field(name)
	if !ok {
		return &FieldNotFoundError{Name: name}
	}
	if f.HasConstraint(c.Kind) {
		return &ConstraintPresentError{Field: name, Kind: c.Kind}
	}
	if err := CheckConstraint(f.Type, c); err != nil {
		return err
	}
	f.Constraints = append(f.Constraints, c.Clone())
	return nil
}

// RemoveConstraint deactivates the constraint of the given kind, if
// present
func (d *Dictionary) RemoveConstraint(name string, kind ConstraintKind) error {
	f, ok := d.Field(name)
	if !ok {
		return &FieldNotFoundError{Name: name}
	}
	for i, c := range f.Constraints {
		if c.Kind == kind {
			f.Constraints = append(f.Constraints[:i], f.Constraints[i+1:]...)
			return nil
		}
	}
	return nil
}

// DeleteField removes the named field from the dictionary
func (d *Dictionary) DeleteField(name string) error {
	i := d.indexOf(name)
	if i < 0 {
		return &FieldNotFoundError{Name: name}
	}
	d.fields = append(d.fields[:i], d.fields[i+1:]...)
	return nil
}

// Clone returns a deep copy of the whole dictionary
func (d *Dictionary) Clone() *Dictionary {
	out := New(d.id)
	for _, f := range d.fields {
		out.fields = append(out.fields, f.Clone())
	}
	return out
}

func (d *Dictionary) indexOf(name string) int {
	for i, f := range d.fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
