package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/amishk599/stagiaire/internal/model"
)

var errMissingToken = errors.New("response has no access_token")

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for an access token. A 2xx response without a
// token is reported as a parse failure so callers never persist an empty one.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	const op = "login"

	body, err := jsonBody(op, loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	var resp loginResponse
	err = c.doJSON(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        "/api/login",
		body:        body,
		contentType: "application/json",
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", &model.OpError{Op: op, Kind: model.FailureParse, Err: errMissingToken}
	}
	return resp.AccessToken, nil
}

type registerResponse struct {
	ID string `json:"id"`
}

var errMissingID = errors.New("response has no id")

// Register creates a trainee account and returns its identifier. The API
// takes the password as a query parameter, separate from the profile body.
func (c *Client) Register(ctx context.Context, p model.Profile, password string) (string, error) {
	const op = "register"

	if p.Competences == nil {
		p.Competences = []string{}
	}
	body, err := jsonBody(op, p)
	if err != nil {
		return "", err
	}

	var resp registerResponse
	err = c.doJSON(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        "/api/stagiaires?" + url.Values{"password": {password}}.Encode(),
		body:        body,
		contentType: "application/json",
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", &model.OpError{Op: op, Kind: model.FailureParse, Err: errMissingID}
	}
	return resp.ID, nil
}
