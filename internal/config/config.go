package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ravleen-anand/find-events-on-ticketmaster/internal/ticketmaster"
)

// Config contains runtime configuration required by the service.
type Config struct {
	Addr            string
	TicketmasterURL string
}

// Load reads optional overrides from the environment (ADDR,
// TICKETMASTER_URL). Every value has a default, so Load never fails.
func Load() Config {
	// Best-effort .env for local dev; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := Config{
		Addr:            "127.0.0.1:8080",
		TicketmasterURL: ticketmaster.DefaultBaseURL,
	}

	if v := strings.TrimSpace(os.Getenv("ADDR")); v != "" {
		cfg.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("TICKETMASTER_URL")); v != "" {
		cfg.TicketmasterURL = v
	}

	return cfg
}
