package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ravleen-anand/find-events-on-ticketmaster/internal/models"
	"github.com/ravleen-anand/find-events-on-ticketmaster/internal/ticketmaster"
)

// cityEventsQuery is bound from the request query string. Validation is
// enforced by the binding tags; failures map to a 422 response.
type cityEventsQuery struct {
	APIKey     string `form:"api_key" binding:"required"`
	City       string `form:"city" binding:"required"`
	PostalCode string `form:"postal_code"`
	SearchID   *int64 `form:"search_id"`
}

// RegisterEventRoutes registers the proxy endpoint.
//
// GET /city_events/?api_key=...&city=...&postal_code=...&search_id=...
// - api_key and city are required; postal_code is optional
// - search_id is a diagnostic parameter, logged when present
// - an upstream 401 fault body is passed through verbatim
func RegisterEventRoutes(r gin.IRoutes, tm *ticketmaster.Client) {
	r.GET("/city_events/", func(c *gin.Context) {
		var q cityEventsQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			log.Printf("city_events validation failed: %v", err)
			c.JSON(http.StatusUnprocessableEntity, models.ValidationError{
				Detail: []models.ValidationMessage{{Msg: err.Error()}},
			})
			return
		}

		if q.SearchID != nil {
			log.Printf("city_events search_id=%d city=%q", *q.SearchID, q.City)
		}

		res, err := tm.SearchEvents(c.Request.Context(), q.APIKey, q.City, q.PostalCode)
		if err != nil {
			log.Printf("upstream request failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "upstream request failed"})
			return
		}

		// Invalid API key: Ticketmaster's fault body goes back unchanged.
		if res.StatusCode == http.StatusUnauthorized {
			c.Data(http.StatusUnauthorized, "application/json", res.Body)
			return
		}

		payload, err := res.DecodePayload()
		if err != nil {
			log.Printf("upstream returned invalid JSON (status %d): %v", res.StatusCode, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "invalid upstream response"})
			return
		}

		c.JSON(http.StatusOK, buildEventsResponse(requestURL(c), payload))
	})
}

// requestURL reconstructs the literal URL this request was addressed to,
// used as the response self-link.
func requestURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.RequestURI()
}
