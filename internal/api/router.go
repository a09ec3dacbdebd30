package api

import (
	"net/http"

	"route-suggestion-service/internal/api/handlers"
	"route-suggestion-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware
// of concrete adapters.
func NewRouter(repo ports.CustomerRepository, store ports.ResultStore) http.Handler {
	mux := http.NewServeMux()

	customerHandler := &handlers.CustomerHandler{Repo: repo}
	suggestionHandler := &handlers.SuggestionHandler{Repo: repo, Store: store}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/customers", customerHandler.List)
	mux.HandleFunc("/suggestions", suggestionHandler.Handle)
	mux.HandleFunc("/suggestions/export", suggestionHandler.Export)

	return loggingMiddleware(mux)
}
