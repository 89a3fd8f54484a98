package server

import (
	"net/http"

	"github.com/go-logr/logr"

	"github.com/advisorhq/web/internal/tenant"
	"github.com/advisorhq/web/internal/web/middleware"
)

func New(addr string, store *tenant.Store, handler *Handler, log logr.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handler.healthz)
	mux.HandleFunc("GET /page/{slug}", handler.pageBySlug)
	mux.HandleFunc("GET /", handler.home)

	chain := middleware.WithLogger(log)(
		middleware.WithTenant(store)(mux),
	)

	return &http.Server{
		Addr:    addr,
		Handler: chain,
	}
}
