package models

// EventSummary is the service's projection of an upstream event record.
// name/url are omitted when the upstream record lacks them; id is always
// present upstream.
type EventSummary struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Links carries the request's own canonical URL so a client can reconstruct
// its query.
type Links struct {
	Self string `json:"self"`
}

// EventsResponse is the GET /city_events/ success body.
type EventsResponse struct {
	Links  Links          `json:"links"`
	Events []EventSummary `json:"events"`
}

// ValidationMessage is a single validation failure.
type ValidationMessage struct {
	Msg string `json:"msg"`
}

// ValidationError is the 422 envelope for query-parameter validation
// failures.
type ValidationError struct {
	Detail []ValidationMessage `json:"detail"`
}
