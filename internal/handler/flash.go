package handler

import (
	"net/http"
	"net/url"
)

// flashCookie carries the transient status message across the
// POST → redirect → GET hop. One message at a time, consumed on first read.
const flashCookie = "gigbook_flash"

// setFlash attaches a status message to the next rendered page.
// The value is query-escaped because cookie values cannot carry spaces.
func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlash returns the pending status message, if any, and clears it so it
// only ever appears on one response.
func (s *Server) popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	message, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return message
}
