package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"seller-scout/config"
)

func NewHTTPServer(cfg config.Config, mux *chi.Mux) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Research runs page external APIs under a per-host floor
		// delay, so responses can take minutes.
		WriteTimeout: 15 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}
}
