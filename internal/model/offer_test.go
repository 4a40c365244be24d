package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsByCity_PreservesResponseOrder(t *testing.T) {
	body := `{"total_candidatures": 6, "par_ville": {"Rabat": 3, "Casablanca": 1, "Agadir": 2}}`

	var stats Stats
	require.NoError(t, json.Unmarshal([]byte(body), &stats))

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, []string{"Rabat", "Casablanca", "Agadir"}, stats.ParVille.Labels())
	assert.Equal(t, []int{3, 1, 2}, stats.ParVille.Values())
}

func TestStatsByCity_EmptyAndNull(t *testing.T) {
	var empty Stats
	require.NoError(t, json.Unmarshal([]byte(`{"par_ville": {}}`), &empty))
	assert.Empty(t, empty.ParVille)
	assert.Empty(t, empty.ParVille.Labels())

	var null Stats
	require.NoError(t, json.Unmarshal([]byte(`{"par_ville": null}`), &null))
	assert.Nil(t, null.ParVille)
}

func TestStatsByCity_RejectsNonObject(t *testing.T) {
	var stats Stats
	err := json.Unmarshal([]byte(`{"par_ville": [1, 2]}`), &stats)
	require.Error(t, err)

	err = json.Unmarshal([]byte(`{"par_ville": {"Rabat": "three"}}`), &stats)
	require.Error(t, err)
}

func TestRecommendation_ScorePassedThrough(t *testing.T) {
	var recos []Recommendation
	body := `[{"offreId": "a1", "titre": "Dev Go", "score": 3}, {"titre": "Data", "score": 0.875}]`
	require.NoError(t, json.Unmarshal([]byte(body), &recos))

	require.Len(t, recos, 2)
	assert.Equal(t, "3", recos[0].Score.String())
	assert.Equal(t, "0.875", recos[1].Score.String())
	assert.Equal(t, "a1", recos[0].OffreID)
}

func TestApplication_WireFormat(t *testing.T) {
	b, err := json.Marshal(Application{StagiaireID: "s1", OffreID: "o9"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"stagiaireId": "s1", "offreId": "o9"}`, string(b))
}
