// Package flash implements one-shot user-facing notices carried in a
// cookie: an operation enqueues a message, the next rendered page consumes
// it, and consuming clears it. A notice never survives two reads.
package flash

import (
	"net/http"
	"net/url"
)

const cookieName = "flash"

// Set enqueues a transient notice for the next rendered response
func Set(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending notice, if any, and clears it.
// The empty string means no notice is pending.
func Pop(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}

	// Expire the cookie so the notice is consumed exactly once
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	message, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}

	return message
}
