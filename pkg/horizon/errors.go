package horizon

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Problem represents an error response from the Horizon API. Horizon follows
// the HTTP problem details convention: every non-success response carries a
// JSON body with a machine-readable type, a title, and the HTTP status.
type Problem struct {
	Type     string                 `json:"type"               yaml:"type"`
	Title    string                 `json:"title"              yaml:"title"`
	Status   int                    `json:"status"             yaml:"status"`
	Detail   string                 `json:"detail,omitempty"   yaml:"detail,omitempty"`
	Instance string                 `json:"instance,omitempty" yaml:"instance,omitempty"`
	Extras   map[string]interface{} `json:"extras,omitempty"   yaml:"extras,omitempty"`
}

// Error implements the error interface.
func (p *Problem) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s (status: %d)", p.Title, p.Detail, p.Status)
	}

	return fmt.Sprintf("%s (status: %d)", p.Title, p.Status)
}

// Known problem types returned by Horizon. Some deployments return the type
// as a full URL, so comparisons go through ProblemKind.
const (
	ProblemBadRequest           = "bad_request"
	ProblemBeforeHistory        = "before_history"
	ProblemForbidden            = "forbidden"
	ProblemNotAcceptable        = "not_acceptable"
	ProblemNotFound             = "not_found"
	ProblemNotImplemented       = "not_implemented"
	ProblemRateLimitExceeded    = "rate_limit_exceeded"
	ProblemServerError          = "internal_server_error"
	ProblemStaleHistory         = "stale_history"
	ProblemTransactionFailed    = "transaction_failed"
	ProblemTransactionMalformed = "transaction_malformed"
	ProblemUnknown              = "unknown"
)

// Kind normalizes the problem type to its bare token. A type of
// "https://stellar.org/horizon-errors/not_found" yields "not_found";
// unrecognized tokens yield ProblemUnknown.
func (p *Problem) Kind() string {
	kind := p.Type
	if idx := strings.LastIndex(kind, "/"); idx >= 0 {
		kind = kind[idx+1:]
	}

	switch kind {
	case ProblemBadRequest, ProblemBeforeHistory, ProblemForbidden,
		ProblemNotAcceptable, ProblemNotFound, ProblemNotImplemented,
		ProblemRateLimitExceeded, ProblemServerError, ProblemStaleHistory,
		ProblemTransactionFailed, ProblemTransactionMalformed:
		return kind
	default:
		return ProblemUnknown
	}
}

// InvalidField returns the offending field from a bad_request problem, if the
// server included one in the extras object.
func (p *Problem) InvalidField() string {
	if field, ok := p.Extras["invalid_field"].(string); ok {
		return field
	}

	return ""
}

// IsNotFound checks if the error is a not_found problem.
func IsNotFound(err error) bool {
	return problemKindIs(err, ProblemNotFound)
}

// IsBadRequest checks if the error is a bad_request problem.
func IsBadRequest(err error) bool {
	return problemKindIs(err, ProblemBadRequest)
}

// IsBeforeHistory checks if the error is a before_history problem.
func IsBeforeHistory(err error) bool {
	return problemKindIs(err, ProblemBeforeHistory)
}

// IsRateLimited checks if the error is a rate_limit_exceeded problem.
func IsRateLimited(err error) bool {
	return problemKindIs(err, ProblemRateLimitExceeded)
}

// IsStaleHistory checks if the error is a stale_history problem.
func IsStaleHistory(err error) bool {
	return problemKindIs(err, ProblemStaleHistory)
}

func problemKindIs(err error, kind string) bool {
	problem := &Problem{}
	if errors.As(err, &problem) {
		return problem.Kind() == kind
	}

	return false
}

// ParseProblem parses a problem body. If the body is not a valid problem
// document, a generic problem carrying only the status is synthesized so the
// caller never receives an unclassified failure.
func ParseProblem(statusCode int, body []byte) *Problem {
	var problem Problem

	err := json.Unmarshal(body, &problem)
	if err != nil || problem.Status == 0 {
		return &Problem{
			Type:   ProblemUnknown,
			Title:  http.StatusText(statusCode),
			Status: statusCode,
			Detail: "the server returned a response that could not be interpreted",
		}
	}

	return &problem
}

// DecodeError indicates a success-status body that did not match the expected
// schema. It is distinct from Problem: a Problem means the server rejected the
// request, a DecodeError means the server sent something we don't understand.
type DecodeError struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s record: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying decode failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError checks if the error is a schema decode failure.
func IsDecodeError(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

// Static errors for err113 compliance.
var (
	ErrServerURLRequired = errors.New("server URL is required")
	ErrBadServerURL      = errors.New("server URL is malformed")
	ErrUnknownKind       = errors.New("unknown record kind")
	ErrNoMoreRecords     = errors.New("no more records")
	ErrMissingCursor     = errors.New("page link carries no cursor")
	ErrStreamEnded       = errors.New("server closed the stream")
	ErrConfigRequired    = errors.New("config is required")
)
