package api

import (
	"context"
	"net/http"

	"github.com/amishk599/stagiaire/internal/model"
)

// ListOffres fetches every open offer in server order.
func (c *Client) ListOffres(ctx context.Context) ([]model.Offer, error) {
	var offers []model.Offer
	err := c.doJSON(ctx, request{
		op:     "offres",
		method: http.MethodGet,
		path:   "/api/offres",
	}, &offers)
	if err != nil {
		return nil, err
	}
	return offers, nil
}

// Candidater submits an application on behalf of the trainee. The response
// body is not required to be JSON.
func (c *Client) Candidater(ctx context.Context, app model.Application, token string) (string, error) {
	const op = "candidater"

	body, err := jsonBody(op, app)
	if err != nil {
		return "", err
	}

	return c.doAck(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        "/api/candidater",
		body:        body,
		contentType: "application/json",
		token:       token,
	})
}

// Recommandations fetches the ranked offer suggestions for a trainee.
func (c *Client) Recommandations(ctx context.Context, stagiaireID string) ([]model.Recommendation, error) {
	var recos []model.Recommendation
	err := c.doJSON(ctx, request{
		op:     "recommandations",
		method: http.MethodGet,
		path:   "/api/recommandations/" + segment(stagiaireID),
	}, &recos)
	if err != nil {
		return nil, err
	}
	return recos, nil
}
