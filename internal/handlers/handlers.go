package handlers

import "net/http"

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	subject string
}

// New creates a Handler greeting the given subject. The subject is
// resolved once at startup and never re-read per request, so handlers
// share no mutable state.
func New(subject string) *Handler {
	return &Handler{subject: subject}
}

// Greet handles GET / with a plain-text personalized greeting.
func (h *Handler) Greet(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Hello " + h.subject + "!")) //nolint:errcheck
}
