package httpapi

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"meeras-quiz/internal/content"
)

// NewRouter wires the screen API. CORS is wide open: the browser front-end is
// served from a different origin and the API carries no credentials.
func NewRouter(store content.Store, sessions *SessionRegistry) http.Handler {
	api := NewAPI(store, sessions)

	router := mux.NewRouter()
	router.HandleFunc("/categories", api.HandleCategories).Methods(http.MethodGet)
	router.HandleFunc("/sessions", api.HandleStartSession).Methods(http.MethodPost)
	router.HandleFunc("/sessions/{session_id}", api.HandleSession).Methods(http.MethodGet)
	router.HandleFunc("/sessions/{session_id}", api.HandleAbandonSession).Methods(http.MethodDelete)
	router.HandleFunc("/sessions/{session_id}/selection", api.HandleSelect).Methods(http.MethodPost)
	router.HandleFunc("/sessions/{session_id}/answer", api.HandleSubmit).Methods(http.MethodPost)
	router.HandleFunc("/sessions/{session_id}/next", api.HandleAdvance).Methods(http.MethodPost)
	router.HandleFunc("/sessions/{session_id}/results", api.HandleResults).Methods(http.MethodGet)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(router)
}
