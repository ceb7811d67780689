package service

import (
	"strings"

	"github.com/toyshare/toyshare-api/internal/core/domain"
	"github.com/toyshare/toyshare-api/internal/core/ports"
)

// DefaultMaxSuggestions is the result cap applied when a caller does not
// supply one.
const DefaultMaxSuggestions = 5

// GazetteerSource matches queries against the static place-name gazetteer.
type GazetteerSource struct {
	entries []string
}

func NewGazetteerSource() *GazetteerSource {
	return &GazetteerSource{entries: domain.Gazetteer()}
}

// Match returns up to max gazetteer entries containing query as a
// case-insensitive substring, preserving gazetteer order. The gazetteer is
// small, so this recomputes on every call without caching.
func (g *GazetteerSource) Match(query string, max int) []string {
	q := strings.ToLower(query)
	out := make([]string, 0, max)
	for _, entry := range g.entries {
		if strings.Contains(strings.ToLower(entry), q) {
			out = append(out, entry)
			if len(out) == max {
				break
			}
		}
	}
	return out
}

// SuggestionService gates a SuggestionSource behind the minimum query length
// and reports the dropdown-open state.
type SuggestionService struct {
	source ports.SuggestionSource
}

func NewSuggestionService(source ports.SuggestionSource) *SuggestionService {
	return &SuggestionService{source: source}
}

// Suggest returns an empty, closed result for queries of length <= 1.
// Otherwise it delegates to the source; the dropdown is open exactly when at
// least one entry matched.
func (s *SuggestionService) Suggest(query string, max int) ports.Suggestions {
	if max <= 0 {
		max = DefaultMaxSuggestions
	}
	if len(query) <= 1 {
		return ports.Suggestions{Entries: []string{}, Open: false}
	}

	entries := s.source.Match(query, max)
	return ports.Suggestions{Entries: entries, Open: len(entries) > 0}
}
