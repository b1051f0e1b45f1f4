package handlers

import (
	"github.com/ravleen-anand/find-events-on-ticketmaster/internal/models"
	"github.com/ravleen-anand/find-events-on-ticketmaster/internal/ticketmaster"
)

// buildEventsResponse flattens the upstream listing into the service
// contract. A payload without an embedded events collection (no matches, or
// an unexpected upstream shape) yields an empty events list, not an error.
func buildEventsResponse(selfURL string, p ticketmaster.Payload) models.EventsResponse {
	events := make([]models.EventSummary, 0)
	if p.Embedded != nil {
		for _, e := range p.Embedded.Events {
			events = append(events, models.EventSummary{
				ID:   e.ID,
				Name: e.Name,
				URL:  e.URL,
			})
		}
	}

	return models.EventsResponse{
		Links:  models.Links{Self: selfURL},
		Events: events,
	}
}
