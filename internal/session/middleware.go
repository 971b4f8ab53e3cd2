package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const contextKey = "session"

// Middleware resolves the session cookie into the request context. Requests
// without a valid session proceed anonymously.
func Middleware(store Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
				sess, err := store.Get(c.Request().Context(), cookie.Value)
				if err == nil && sess != nil {
					c.Set(contextKey, sess)
				}
			}
			return next(c)
		}
	}
}

// FromContext returns the request's session, or nil when anonymous.
func FromContext(c echo.Context) *Session {
	sess, _ := c.Get(contextKey).(*Session)
	return sess
}

// Begin returns the request's session, creating one and setting the cookie
// when none exists yet.
func Begin(c echo.Context, store Store) (*Session, error) {
	if sess := FromContext(c); sess != nil {
		return sess, nil
	}

	sess, err := store.Create(c.Request().Context())
	if err != nil {
		return nil, err
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(contextKey, sess)
	return sess, nil
}

// ClearCookie expires the session cookie on the client.
func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
