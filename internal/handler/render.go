package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"gigbook/internal/view"
)

// renderPage executes a page template into a buffer and writes it with the
// given status. Buffering first means a template failure can still fall back
// to the 500 page instead of sending half a document.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := s.render.Render(&buf, page, data); err != nil {
		slog.ErrorContext(r.Context(), "template render failed", "page", page, "error", err)
		s.serverErrorPage(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// NotFoundPage renders the 404 page. Registered as the router's NotFound
// handler and used directly when a detail lookup misses.
func (s *Server) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	s.notFound(w, r, "")
}

// notFound renders the 404 page with an optional resource-specific message.
func (s *Server) notFound(w http.ResponseWriter, r *http.Request, message string) {
	s.renderPage(w, r, http.StatusNotFound, "404.html", &view.ErrorData{Message: message})
}

// serverError logs err and renders the 500 page.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	s.serverErrorPage(w, r)
}

// serverErrorPage renders the 500 page, falling back to a plain-text response
// if even that template cannot be executed.
func (s *Server) serverErrorPage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.render.Render(&buf, "500.html", &view.ErrorData{}); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = buf.WriteTo(w)
}

// Recoverer catches panics from downstream handlers and renders the 500 page
// instead of letting the connection die. Wire it near the top of the chain.
func (s *Server) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(r.Context(), "panic recovered", "panic", rec, "path", r.URL.Path)
				s.serverErrorPage(w, r)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
