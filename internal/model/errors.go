package model

import (
	"errors"
	"fmt"
)

// FailureKind classifies why an API call did not succeed.
type FailureKind int

const (
	FailureNetwork FailureKind = iota + 1
	FailureHTTP
	FailureParse
)

func (k FailureKind) String() string {
	switch k {
	case FailureNetwork:
		return "network"
	case FailureHTTP:
		return "http"
	case FailureParse:
		return "parse"
	default:
		return "unknown"
	}
}

// OpError is returned by every API call that fails. Detail carries the
// server's "detail" message when the body had one.
type OpError struct {
	Op         string
	Kind       FailureKind
	StatusCode int // zero unless Kind is FailureHTTP
	Detail     string
	Err        error
}

func (e *OpError) Error() string {
	switch {
	case e.Kind == FailureHTTP && e.Detail != "":
		return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.StatusCode, e.Detail)
	case e.Kind == FailureHTTP:
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	}
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Outcome is the result of a single operation as shown to the user.
type Outcome int

const (
	Success Outcome = iota
	NetworkError
	HTTPError
	ParseError
	OtherError
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case NetworkError:
		return "network-error"
	case HTTPError:
		return "http-error"
	case ParseError:
		return "parse-error"
	default:
		return "error"
	}
}

// OutcomeOf maps an operation error to its Outcome. A nil error is Success.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return Success
	}
	var opErr *OpError
	if !errors.As(err, &opErr) {
		return OtherError
	}
	switch opErr.Kind {
	case FailureNetwork:
		return NetworkError
	case FailureHTTP:
		return HTTPError
	case FailureParse:
		return ParseError
	default:
		return OtherError
	}
}

// UserMessage is the text shown in a status region for a failed operation.
func UserMessage(err error) string {
	var opErr *OpError
	if !errors.As(err, &opErr) {
		return err.Error()
	}
	switch opErr.Kind {
	case FailureNetwork:
		return "Serveur injoignable"
	case FailureParse:
		return "Réponse invalide du serveur"
	}
	if opErr.Detail != "" {
		return fmt.Sprintf("Erreur %d: %s", opErr.StatusCode, opErr.Detail)
	}
	return fmt.Sprintf("Erreur %d", opErr.StatusCode)
}
