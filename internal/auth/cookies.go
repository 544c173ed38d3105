package auth

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the session claim
const SessionCookieName = "session"

// SetSessionCookie attaches the session token to the response.
// The cookie's own lifetime mirrors the claim's fixed TTL.
func SetSessionCookie(w http.ResponseWriter, token string, isProduction bool, duration time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(duration.Seconds()),
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie destroys the session claim by expiring the cookie.
// Called unconditionally on logout.
func ClearSessionCookie(w http.ResponseWriter, isProduction bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetSessionFromCookie extracts the raw session token from the request
func GetSessionFromCookie(r *http.Request) (string, error) {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", err
	}
	return c.Value, nil
}
