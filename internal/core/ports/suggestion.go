package ports

// SuggestionSource produces place-name suggestions for a partial location
// query. Implementations are swappable; the default is the static gazetteer.
type SuggestionSource interface {
	// Match returns up to max entries containing query as a case-insensitive
	// substring, in source order.
	Match(query string, max int) []string
}

// Suggestions is the matcher result consumed by the location-entry control.
// Open mirrors the dropdown state: true exactly when Entries is non-empty.
type Suggestions struct {
	Entries []string
	Open    bool
}

// SuggestionService wraps a SuggestionSource with the query-length gate.
type SuggestionService interface {
	// Suggest returns an empty, closed result for queries of length <= 1;
	// otherwise it delegates to the source and truncates to max.
	Suggest(query string, max int) Suggestions
}
