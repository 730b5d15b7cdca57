package dict

// PruneConstraints strips every active constraint whose kind is not legal
// for the field's current analytical type. It never fails, may leave the
// field without constraints, and the result does not depend on removal
// order. Returned kinds preserve their former position on the field.
func PruneConstraints(f *FieldRecord) []ConstraintKind {
	var pruned []ConstraintKind
	kept := f.Constraints[:0]
	for _, c := range f.Constraints {
		if KindLegalFor(f.Type, c.Kind) {
			kept = append(kept, c)
		} else {
			pruned = append(pruned, c.Kind)
		}
	}
	if len(kept) == 0 {
		f.Constraints = nil
	} else {
		f.Constraints = kept
	}
	return pruned
}
