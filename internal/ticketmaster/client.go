package ticketmaster

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// DefaultBaseURL is the Ticketmaster Discovery v2 API root.
const DefaultBaseURL = "https://app.ticketmaster.com/discovery/v2"

// Client issues event searches against the Discovery API. The caller supplies
// the API key per request; the client holds no credentials of its own.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the given Discovery API base URL.
// An empty baseURL falls back to the public endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
}

// Result is the raw upstream response: status and body are preserved
// unmodified so callers can pass fault bodies through verbatim.
type Result struct {
	StatusCode int
	Body       []byte
}

// Payload is the Discovery events listing. The _embedded section is absent
// when the search matched nothing, so it is modeled as a pointer.
type Payload struct {
	Embedded *Embedded `json:"_embedded"`
}

// Embedded holds the event collection nested under _embedded.
type Embedded struct {
	Events []Event `json:"events"`
}

// Event is the subset of an upstream event record this service projects.
type Event struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SearchEvents performs a single GET against <base>/events.json with apikey,
// city and (when non-empty) postalCode query parameters. The response is
// returned as-is regardless of status; only transport-level failures error.
func (c *Client) SearchEvents(ctx context.Context, apiKey, city, postalCode string) (*Result, error) {
	q := url.Values{}
	q.Set("apikey", apiKey)
	q.Set("city", city)
	if postalCode != "" {
		q.Set("postalCode", postalCode)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/events.json?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build discovery request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call discovery API")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read discovery response")
	}

	return &Result{StatusCode: resp.StatusCode, Body: body}, nil
}

// DecodePayload parses the result body as a Discovery events listing.
func (r *Result) DecodePayload() (Payload, error) {
	var p Payload
	if err := json.Unmarshal(r.Body, &p); err != nil {
		return Payload{}, errors.Wrap(err, "decode discovery payload")
	}
	return p, nil
}
