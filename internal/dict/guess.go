package dict

import "strings"

// GuessType infers a default analytical type from a field name. It is a
// heuristic for pre-filling the field form; the user always has the final
// word.
func GuessType(name string) AnalyticalType {
	lower := strings.ToLower(name)

	switch {
	case lower == "id" || strings.HasSuffix(lower, "_id"):
		return Nominal
	case strings.HasSuffix(lower, "_date"),
		strings.HasSuffix(lower, "_at"),
		strings.HasSuffix(lower, "_time"):
		return TimeSeries
	case strings.HasPrefix(lower, "is_"),
		strings.HasPrefix(lower, "has_"),
		strings.HasPrefix(lower, "flag_"):
		return Nominal
	case strings.Contains(lower, "name"),
		strings.Contains(lower, "email"),
		strings.Contains(lower, "desc"):
		return Nominal
	case strings.Contains(lower, "_level"),
		strings.Contains(lower, "_grade"),
		strings.Contains(lower, "_rank"):
		return Ordinal
	case strings.Contains(lower, "_cat"),
		strings.Contains(lower, "_type"),
		strings.Contains(lower, "_status"):
		return Nominal
	default:
		return Continuous
	}
}
