package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Offer is an internship posting as served by GET /api/offres.
type Offer struct {
	ID          string   `json:"id"`
	Titre       string   `json:"titre"`
	Ville       string   `json:"ville"`
	Competences []string `json:"competences,omitempty"`
}

// Application links a trainee to an offer. The client only ever writes it.
type Application struct {
	StagiaireID string `json:"stagiaireId"`
	OffreID     string `json:"offreId"`
}

// Recommendation is a server-ranked offer suggestion. Score is kept as the
// raw JSON number so it renders exactly as received.
type Recommendation struct {
	OffreID string      `json:"offreId,omitempty"`
	Titre   string      `json:"titre"`
	Score   json.Number `json:"score"`
}

// CityCount is one entry of the per-city application aggregation.
type CityCount struct {
	City  string
	Count int
}

// StatsByCity keeps the par_ville object in the order the server sent it.
type StatsByCity []CityCount

// UnmarshalJSON walks the object token by token so key order survives
// decoding (a Go map would lose it).
func (s *StatsByCity) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("par_ville: expected object, got %v", tok)
	}

	out := StatsByCity{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		city, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("par_ville: expected string key, got %v", keyTok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("par_ville[%q]: %w", city, err)
		}
		out = append(out, CityCount{City: city, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

// Labels returns the city names in response order.
func (s StatsByCity) Labels() []string {
	labels := make([]string, len(s))
	for i, c := range s {
		labels[i] = c.City
	}
	return labels
}

// Values returns the counts, parallel to Labels.
func (s StatsByCity) Values() []int {
	values := make([]int, len(s))
	for i, c := range s {
		values[i] = c.Count
	}
	return values
}

// Stats is the response of GET /api/stats/stagiaire/{id}.
type Stats struct {
	Total    int         `json:"total_candidatures"`
	ParVille StatsByCity `json:"par_ville"`
}

// GlobalStats is the response of GET /api/stats/global.
type GlobalStats struct {
	Stagiaires   int `json:"stagiaires"`
	Offres       int `json:"offres"`
	Candidatures int `json:"candidatures"`
}

// Profile is the sign-up payload for POST /api/stagiaires.
type Profile struct {
	Nom         string   `json:"nom"`
	Email       string   `json:"email"`
	Ville       string   `json:"ville,omitempty"`
	Competences []string `json:"competences"`
}
