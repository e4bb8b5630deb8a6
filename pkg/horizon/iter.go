package horizon

import (
	"context"
	"errors"
)

// traversal is the navigation direction an iterator committed to at
// construction.
type traversal int

const (
	traverseForward traversal = iota
	traverseBackward
)

// Iter walks a collection endpoint as one logical sequence of records,
// issuing follow-up page fetches as the current page is exhausted. A single
// iterator commits to one direction for its lifetime; to walk the other way,
// construct a new iterator from the same endpoint.
//
// Page-fetch failures are returned from Next and leave the iterator
// resumable: the requests are idempotent GETs, so calling Next again retries
// the same fetch.
type Iter[R any, E Pageable[R, E]] struct {
	client    *Client
	endpoint  E
	direction traversal
	page      *Page[R]
	pos       int
	done      bool
}

// NewIter creates a forward iterator that follows next links.
func NewIter[R any, E Pageable[R, E]](client *Client, endpoint E) *Iter[R, E] {
	return &Iter[R, E]{
		client:    client,
		endpoint:  endpoint,
		direction: traverseForward,
	}
}

// NewReverseIter creates a backward iterator that follows prev links. The
// endpoint should describe a page that has already been fetched forward, or
// use a cursor positioned where the walk should begin.
func NewReverseIter[R any, E Pageable[R, E]](client *Client, endpoint E) *Iter[R, E] {
	return &Iter[R, E]{
		client:    client,
		endpoint:  endpoint,
		direction: traverseBackward,
	}
}

// Next returns the next record in the sequence, fetching pages as needed.
// It returns ErrNoMoreRecords once the sequence is exhausted. An empty page
// that still carries a navigation link is not the end of the sequence; the
// iterator keeps following links until records appear or the link is absent.
func (it *Iter[R, E]) Next(ctx context.Context) (*R, error) {
	for {
		if it.page != nil && it.pos < len(it.page.Records) {
			record := it.page.Records[it.pos]
			it.pos++

			return &record, nil
		}

		if it.done {
			return nil, ErrNoMoreRecords
		}

		endpoint := it.endpoint

		if it.page != nil {
			cursor, err := it.pageCursor()
			if errors.Is(err, ErrMissingCursor) {
				it.done = true

				return nil, ErrNoMoreRecords
			}

			endpoint = endpoint.WithCursor(cursor)
			if it.direction == traverseBackward {
				// Horizon's prev links flip the result order so that
				// paging backward still returns batches nearest the
				// cursor first.
				endpoint = endpoint.WithOrder(it.linkOrder())
			}
		}

		page, err := FetchPage[R](ctx, it.client, endpoint)
		if err != nil {
			return nil, err
		}

		it.page = page
		it.pos = 0
	}
}

// Collect advances the iterator up to max times and returns the records
// gathered. A max of zero collects the remainder of the sequence.
func (it *Iter[R, E]) Collect(ctx context.Context, max int) ([]R, error) {
	var records []R

	for max == 0 || len(records) < max {
		record, err := it.Next(ctx)
		if errors.Is(err, ErrNoMoreRecords) {
			break
		}

		if err != nil {
			return records, err
		}

		records = append(records, *record)
	}

	return records, nil
}

func (it *Iter[R, E]) pageCursor() (string, error) {
	if it.direction == traverseBackward {
		return it.page.PrevCursor()
	}

	return it.page.NextCursor()
}

// linkOrder extracts the order parameter from the committed direction's
// link, because the server encodes the flipped order there rather than
// round-tripping the original query.
func (it *Iter[R, E]) linkOrder() Direction {
	href := it.page.Next
	if it.direction == traverseBackward {
		href = it.page.Prev
	}

	if order, ok := linkQueryParam(href, "order"); ok {
		return Direction(order)
	}

	return OrderDesc
}
