package horizon

import (
	"encoding/json"
	"net/url"
)

// Page holds one batch of records plus the navigation links Horizon returns
// alongside them. Records preserve server order. Absent or blank links are
// normalized to the empty string.
type Page[R any] struct {
	Records []R
	Self    string
	Next    string
	Prev    string
}

type pageEnvelope[R any] struct {
	Embedded struct {
		Records []R `json:"records"`
	} `json:"_embedded"`
	Links struct {
		Self *Link `json:"self"`
		Next *Link `json:"next"`
		Prev *Link `json:"prev"`
	} `json:"_links"`
}

// UnmarshalJSON decodes the HAL envelope: an embedded records list plus a
// links object. Pages without a links object are valid.
func (p *Page[R]) UnmarshalJSON(data []byte) error {
	var envelope pageEnvelope[R]

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return err
	}

	p.Records = envelope.Embedded.Records
	p.Self = linkHref(envelope.Links.Self)
	p.Next = linkHref(envelope.Links.Next)
	p.Prev = linkHref(envelope.Links.Prev)

	return nil
}

func linkHref(link *Link) string {
	if link == nil {
		return ""
	}

	return link.Href
}

// NextCursor extracts the resume cursor from the page's next link. Link URLs
// are otherwise opaque; the cursor parameter is the only piece the client
// relies on, because Horizon does not round-trip every original query
// parameter through its links.
func (p *Page[R]) NextCursor() (string, error) {
	return linkCursor(p.Next)
}

// PrevCursor extracts the resume cursor from the page's prev link.
func (p *Page[R]) PrevCursor() (string, error) {
	return linkCursor(p.Prev)
}

func linkCursor(href string) (string, error) {
	cursor, ok := linkQueryParam(href, "cursor")
	if !ok {
		return "", ErrMissingCursor
	}

	return cursor, nil
}

// linkQueryParam pulls one query parameter out of a link URL. Blank values
// count as absent; some servers emit empty hrefs or empty cursor params.
func linkQueryParam(href, key string) (string, bool) {
	if href == "" {
		return "", false
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	value := parsed.Query().Get(key)
	if value == "" {
		return "", false
	}

	return value, true
}
