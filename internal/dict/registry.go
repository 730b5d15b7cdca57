package dict

// legalKinds is the closed legality table mapping each analytical type to
// the constraint kinds that make sense for it. Ordinal admits numeric
// ranges because ordinal values may be numeric-coded ranks.
var legalKinds = map[AnalyticalType][]ConstraintKind{
	Continuous: {KindNumericRange},
	Nominal:    {KindRegexPattern, KindAllowedValues},
	Ordinal:    {KindRegexPattern, KindNumericRange, KindAllowedValues},
	TimeSeries: {KindNumericRange},
}

// LegalConstraintKinds returns the constraint kinds legal for the given
// analytical type. The result is defined for every type and may be empty;
// callers get a fresh slice they can modify.
func LegalConstraintKinds(t AnalyticalType) []ConstraintKind {
	kinds, ok := legalKinds[t]
	if !ok {
		return nil
	}
	return append([]ConstraintKind(nil), kinds...)
}

// KindLegalFor reports whether the constraint kind is legal for the
// analytical type
func KindLegalFor(t AnalyticalType, kind ConstraintKind) bool {
	for _, k := range legalKinds[t] {
		if k == kind {
			return true
		}
	}
	return false
}
