package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amishk599/stagiaire/internal/model"
)

func offer(id, titre, ville string) model.Offer {
	return model.Offer{ID: id, Titre: titre, Ville: ville}
}

func TestTitleAndCityFilter_Match(t *testing.T) {
	tests := []struct {
		name          string
		titleKeywords []string
		cities        []string
		offer         model.Offer
		wantMatch     bool
	}{
		{
			name:          "matches both title and city",
			titleKeywords: []string{"backend", "go"},
			cities:        []string{"Rabat", "Casablanca"},
			offer:         offer("1", "Stage Backend Go", "Rabat"),
			wantMatch:     true,
		},
		{
			name:          "title match but city miss",
			titleKeywords: []string{"backend"},
			cities:        []string{"Rabat"},
			offer:         offer("1", "Stage Backend", "Tanger"),
			wantMatch:     false,
		},
		{
			name:          "case insensitive matching",
			titleKeywords: []string{"DATA"},
			cities:        []string{"fès"},
			offer:         offer("1", "Data Analyst", "Fès"),
			wantMatch:     true,
		},
		{
			name:      "empty lists match everything",
			offer:     offer("1", "Anything", ""),
			wantMatch: true,
		},
		{
			name:      "city filter rejects offers without a city",
			cities:    []string{"Rabat"},
			offer:     offer("1", "Stage", ""),
			wantMatch: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewTitleAndCityFilter(tc.titleKeywords, tc.cities)
			assert.Equal(t, tc.wantMatch, f.Match(tc.offer))
		})
	}
}

func TestTitleAndCityFilter_ApplyKeepsOrder(t *testing.T) {
	offers := []model.Offer{
		offer("3", "Stage Go", "Rabat"),
		offer("1", "Stage Java", "Rabat"),
		offer("2", "Alternance Go", "Agadir"),
	}

	got := NewTitleAndCityFilter([]string{"go"}, nil).Apply(offers)
	assert.Equal(t, []model.Offer{offers[0], offers[2]}, got)

	assert.Equal(t, offers, NewTitleAndCityFilter(nil, nil).Apply(offers))
}
