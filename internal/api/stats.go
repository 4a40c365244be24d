package api

import (
	"context"
	"net/http"

	"github.com/amishk599/stagiaire/internal/model"
)

// StagiaireStats fetches the per-city application counts for a trainee.
func (c *Client) StagiaireStats(ctx context.Context, stagiaireID string) (model.Stats, error) {
	var stats model.Stats
	err := c.doJSON(ctx, request{
		op:     "stats",
		method: http.MethodGet,
		path:   "/api/stats/stagiaire/" + segment(stagiaireID),
	}, &stats)
	return stats, err
}

// GlobalStats fetches platform-wide counters.
func (c *Client) GlobalStats(ctx context.Context) (model.GlobalStats, error) {
	var stats model.GlobalStats
	err := c.doJSON(ctx, request{
		op:     "stats_global",
		method: http.MethodGet,
		path:   "/api/stats/global",
	}, &stats)
	return stats, err
}
