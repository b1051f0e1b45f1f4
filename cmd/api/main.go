package main

import (
	"log"

	"github.com/ravleen-anand/find-events-on-ticketmaster/internal/config"
	"github.com/ravleen-anand/find-events-on-ticketmaster/internal/httpserver"
	"github.com/ravleen-anand/find-events-on-ticketmaster/internal/ticketmaster"
)

// main boots the service: config → upstream client → HTTP server.
func main() {
	// Optional overrides from environment (ADDR, TICKETMASTER_URL).
	cfg := config.Load()

	// Stateless Discovery API client; the API key arrives per request.
	tm := ticketmaster.NewClient(cfg.TicketmasterURL)

	router := httpserver.NewRouter(tm)

	log.Println("server started on " + cfg.Addr)
	log.Fatal(router.Run(cfg.Addr))
}
