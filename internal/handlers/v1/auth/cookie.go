package auth

import (
	"net/http"
	"time"

	"github.com/carson-networks/household-server/internal/identity"
	"github.com/carson-networks/household-server/internal/session"
)

// CookieSettings controls the access token cookie set on login.
type CookieSettings struct {
	Enabled bool
	Secure  bool
}

func (c CookieSettings) sameSite() http.SameSite {
	// Cross-site frontends only receive the cookie when it is Secure.
	if c.Secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// issue returns the Set-Cookie value for s, empty when the cookie transport is off.
func (c CookieSettings) issue(s *identity.Session, now time.Time) string {
	if !c.Enabled {
		return ""
	}
	cookie := http.Cookie{
		Name:     session.CookieName,
		Value:    s.AccessToken,
		Path:     "/",
		Expires:  s.ExpiresAt,
		MaxAge:   int(s.ExpiresAt.Sub(now).Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.sameSite(),
	}
	return cookie.String()
}

func (c CookieSettings) clear() string {
	cookie := http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.sameSite(),
	}
	return cookie.String()
}
