// Package api is the HTTP client for the internship platform's REST API.
// Each method is a single request; nothing is retried or cached.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amishk599/stagiaire/internal/model"
)

// maxErrorBody caps how much of a failed response is read looking for "detail".
const maxErrorBody = 64 << 10

// Client talks to one deployment of the platform API.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates a client rooted at baseURL (e.g. http://127.0.0.1:8000).
func NewClient(baseURL string, client *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

// BaseURL returns the root every request path is joined to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request describes one API call.
type request struct {
	op          string
	method      string
	path        string // already escaped
	body        io.Reader
	contentType string
	token       string // sent as a bearer token when non-empty
}

// do sends req and returns the response when the status is 2xx. Any other
// outcome is reported as a *model.OpError. The caller closes the body.
func (c *Client) do(ctx context.Context, r request) (*http.Response, error) {
	url := c.baseURL + r.path

	req, err := http.NewRequestWithContext(ctx, r.method, url, r.body)
	if err != nil {
		return nil, fmt.Errorf("%s: building request: %w", r.op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("api request failed", "op", r.op, "method", r.method, "path", r.path, "request_id", requestID, "error", err)
		return nil, &model.OpError{Op: r.op, Kind: model.FailureNetwork, Err: err}
	}

	c.logger.Debug("api request",
		"op", r.op,
		"method", r.method,
		"path", r.path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &model.OpError{
			Op:         r.op,
			Kind:       model.FailureHTTP,
			StatusCode: resp.StatusCode,
			Detail:     errorDetail(body),
		}
	}
	return resp, nil
}

// doJSON sends req and decodes a 2xx JSON body into out. A nil out discards
// the body.
func (c *Client) doJSON(ctx context.Context, r request, out any) error {
	resp, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &model.OpError{Op: r.op, Kind: model.FailureParse, Err: err}
	}
	return nil
}

// jsonBody encodes v for use as a request body.
func jsonBody(op string, v any) (io.Reader, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal body: %w", op, err)
	}
	return bytes.NewReader(b), nil
}

// messageResponse is the {"message": ...} acknowledgement several write
// endpoints return.
type messageResponse struct {
	Message string `json:"message"`
}

// doAck sends a write request whose response body is informational only.
// Any 2xx is success; the "message" field is returned when the body happens
// to carry one.
func (c *Client) doAck(ctx context.Context, r request) (string, error) {
	resp, err := c.do(ctx, r)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var ack messageResponse
	if err := json.Unmarshal(body, &ack); err != nil {
		c.logger.Debug("ignoring non-JSON acknowledgement", "op", r.op, "status", resp.StatusCode, "bytes", len(body))
		return "", nil
	}
	return ack.Message, nil
}
