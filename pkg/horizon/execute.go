package horizon

import (
	"context"
	"encoding/json"
	"fmt"

	internalhttp "github.com/lumenwire-io/horizon/internal/http"
)

// Fetch executes a single-record endpoint and decodes the response into R.
// It blocks until the full response is available.
func Fetch[R any](ctx context.Context, client *Client, endpoint SingleEndpoint[R]) (*R, error) {
	body, err := execute(ctx, client, endpoint)
	if err != nil {
		return nil, err
	}

	record, err := decodeRecord[R](body)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// decodeRecord decodes one JSON object into R. Members of the record union
// route through DecodeRecord, keeping the kind dispatch the single decode
// boundary for both fetches and streams; types outside the union decode
// directly.
func decodeRecord[R any](data []byte) (R, error) {
	var record R

	if r, ok := any(&record).(Record); ok {
		decoded, err := DecodeRecord(r.Kind(), data)
		if err != nil {
			return record, err
		}

		typed, ok := any(decoded).(*R)
		if !ok {
			return record, ErrUnknownKind
		}

		return *typed, nil
	}

	err := json.Unmarshal(data, &record)
	if err != nil {
		return record, &DecodeError{Kind: kindOf(&record), Err: err}
	}

	return record, nil
}

// FetchPage executes a collection endpoint and decodes one page of records.
// Use an Iter to walk the whole collection.
func FetchPage[R any](ctx context.Context, client *Client, endpoint PageEndpoint[R]) (*Page[R], error) {
	body, err := execute(ctx, client, endpoint)
	if err != nil {
		return nil, err
	}

	var page Page[R]

	err = json.Unmarshal(body, &page)
	if err != nil {
		var record R

		return nil, &DecodeError{Kind: kindOf(&record), Err: err}
	}

	return &page, nil
}

// execute performs the request/interpret sequence shared by every execution
// surface: build the request from the endpoint, run it over the transport,
// and classify the raw response. Both the blocking and the asynchronous
// surfaces route through here, so their behavior matches by construction.
func execute(ctx context.Context, client *Client, endpoint Endpoint) ([]byte, error) {
	path := endpoint.requestPath()

	resp, err := client.transport.Get(ctx, path, endpoint.requestQuery())
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}

	err = interpretStatus(resp)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// interpretStatus classifies a raw response by status. Non-success responses
// always come back as a *Problem, synthesized from the status alone when the
// body is not a parseable problem document.
func interpretStatus(resp *internalhttp.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return ParseProblem(resp.StatusCode, resp.Body)
}

// kindOf reports the record kind of a value when it is part of the record
// union, for decode-error context. Non-record types report an empty kind.
func kindOf(record any) Kind {
	if r, ok := record.(Record); ok {
		return r.Kind()
	}

	return ""
}
