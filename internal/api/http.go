package api

import (
	"encoding/json"
	"net/url"
	"strings"
)

// errorDetail extracts the human-readable part of an error body. The API
// returns {"detail": "..."} for handled errors and {"detail": [{"msg": ...}]}
// for validation failures. Returns "" when neither shape matches.
func errorDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	return string(payload.Detail)
}

// segment escapes a single path segment such as an identifier.
func segment(s string) string {
	return url.PathEscape(s)
}
