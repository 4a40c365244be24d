package filter

import (
	"strings"

	"github.com/amishk599/stagiaire/internal/model"
)

// TitleAndCityFilter matches offers whose title contains any of the title
// keywords and whose city contains any of the city keywords.
// Matching is case-insensitive. Empty keyword lists are treated as "match all".
type TitleAndCityFilter struct {
	titleKeywords []string
	cities        []string
}

// NewTitleAndCityFilter returns a filter that requires both a title keyword
// match and a city match (case-insensitive substring).
func NewTitleAndCityFilter(titleKeywords []string, cities []string) *TitleAndCityFilter {
	return &TitleAndCityFilter{
		titleKeywords: titleKeywords,
		cities:        cities,
	}
}

// Match reports whether the offer passes both keyword lists.
func (f *TitleAndCityFilter) Match(o model.Offer) bool {
	return containsAny(o.Titre, f.titleKeywords) && containsAny(o.Ville, f.cities)
}

// Apply returns the matching offers, preserving their order.
func (f *TitleAndCityFilter) Apply(offers []model.Offer) []model.Offer {
	if len(f.titleKeywords) == 0 && len(f.cities) == 0 {
		return offers
	}
	matched := make([]model.Offer, 0, len(offers))
	for _, o := range offers {
		if f.Match(o) {
			matched = append(matched, o)
		}
	}
	return matched
}

func containsAny(s string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
