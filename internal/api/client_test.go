package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amishk599/stagiaire/internal/model"
)

// --- helpers ---

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", srv.Client(), discardLogger())
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func requireOpError(t *testing.T, err error, kind model.FailureKind) *model.OpError {
	t.Helper()
	var opErr *model.OpError
	require.True(t, errors.As(err, &opErr), "expected *model.OpError, got %T: %v", err, err)
	assert.Equal(t, kind, opErr.Kind)
	return opErr
}

// --- login ---

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "amina@example.ma", body.Email)
		assert.Equal(t, "s3cret", body.Password)

		writeJSON(t, w, http.StatusOK, map[string]string{"access_token": "jwt-1", "token_type": "bearer"})
	})

	token, err := c.Login(context.Background(), "amina@example.ma", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-1", token)
}

func TestLogin_Unauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "Email ou mot de passe incorrect"})
	})

	_, err := c.Login(context.Background(), "a@b.c", "nope")
	opErr := requireOpError(t, err, model.FailureHTTP)
	assert.Equal(t, http.StatusUnauthorized, opErr.StatusCode)
	assert.Equal(t, "Email ou mot de passe incorrect", opErr.Detail)
}

func TestLogin_MissingToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"token_type": "bearer"})
	})

	_, err := c.Login(context.Background(), "a@b.c", "pw")
	requireOpError(t, err, model.FailureParse)
}

func TestLogin_MalformedJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	_, err := c.Login(context.Background(), "a@b.c", "pw")
	requireOpError(t, err, model.FailureParse)
}

func TestLogin_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, http.DefaultClient, discardLogger())
	_, err := c.Login(context.Background(), "a@b.c", "pw")
	requireOpError(t, err, model.FailureNetwork)
}

// --- register ---

func TestRegister_SendsPasswordAsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stagiaires", r.URL.Path)
		assert.Equal(t, "p&ss word", r.URL.Query().Get("password"))

		var p model.Profile
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "Amina", p.Nom)
		assert.Equal(t, []string{}, p.Competences)

		writeJSON(t, w, http.StatusOK, map[string]string{"id": "65f0"})
	})

	id, err := c.Register(context.Background(), model.Profile{Nom: "Amina", Email: "a@b.c"}, "p&ss word")
	require.NoError(t, err)
	assert.Equal(t, "65f0", id)
}

// --- offres ---

func TestListOffres_PreservesOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/offres", r.URL.Path)
		w.Write([]byte(`[
			{"id": "b2", "titre": "Stage Backend", "ville": "Rabat", "competences": ["go"]},
			{"id": "a1", "titre": "Stage Data", "ville": null, "competences": []}
		]`))
	})

	offers, err := c.ListOffres(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "b2", offers[0].ID)
	assert.Equal(t, []string{"go"}, offers[0].Competences)
	assert.Equal(t, "a1", offers[1].ID)
	assert.Empty(t, offers[1].Ville)
}

func TestListOffres_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.ListOffres(context.Background())
	opErr := requireOpError(t, err, model.FailureHTTP)
	assert.Equal(t, 500, opErr.StatusCode)
	assert.Empty(t, opErr.Detail)
}

// --- candidater ---

func TestCandidater_SendsBearerAndBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/candidater", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var app model.Application
		require.NoError(t, json.NewDecoder(r.Body).Decode(&app))
		assert.Equal(t, model.Application{StagiaireID: "s1", OffreID: "o1"}, app)

		writeJSON(t, w, http.StatusOK, map[string]string{"message": "Candidature envoyée"})
	})

	msg, err := c.Candidater(context.Background(), model.Application{StagiaireID: "s1", OffreID: "o1"}, "tok")
	require.NoError(t, err)
	assert.Equal(t, "Candidature envoyée", msg)
}

func TestCandidater_EmptySuccessBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	msg, err := c.Candidater(context.Background(), model.Application{StagiaireID: "s1", OffreID: "o1"}, "tok")
	require.NoError(t, err)
	assert.Empty(t, msg)
}

func TestCandidater_AlreadyApplied(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"detail": "Déjà postulé"})
	})

	_, err := c.Candidater(context.Background(), model.Application{StagiaireID: "s1", OffreID: "o1"}, "tok")
	opErr := requireOpError(t, err, model.FailureHTTP)
	assert.Equal(t, "Déjà postulé", opErr.Detail)
}

// --- recommandations & stats ---

func TestRecommandations_EscapesIdentity(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recommandations/a%2Fb", r.URL.EscapedPath())
		w.Write([]byte(`[{"offreId": "o1", "titre": "Dev", "score": 2}]`))
	})

	recos, err := c.Recommandations(context.Background(), "a/b")
	require.NoError(t, err)
	require.Len(t, recos, 1)
	assert.Equal(t, "2", recos[0].Score.String())
}

func TestStagiaireStats(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats/stagiaire/s1", r.URL.Path)
		w.Write([]byte(`{"total_candidatures": 3, "par_ville": {"Tanger": 2, "Fès": 1}}`))
	})

	stats, err := c.StagiaireStats(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, []string{"Tanger", "Fès"}, stats.ParVille.Labels())
}

func TestGlobalStats(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats/global", r.URL.Path)
		w.Write([]byte(`{"stagiaires": 10, "offres": 4, "candidatures": 7}`))
	})

	stats, err := c.GlobalStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.GlobalStats{Stagiaires: 10, Offres: 4, Candidatures: 7}, stats)
}

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string detail", `{"detail": "Offre introuvable"}`, "Offre introuvable"},
		{"validation list", `{"detail": [{"loc": ["body", "email"], "msg": "value is not a valid email address"}, {"msg": "field required"}]}`, "value is not a valid email address; field required"},
		{"no detail", `{"error": "x"}`, ""},
		{"not json", `<html>502</html>`, ""},
		{"other shape", `{"detail": {"code": 7}}`, `{"code": 7}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errorDetail([]byte(tc.body)))
		})
	}
}
