package handler

import (
	"github.com/labstack/echo/v4"

	"voxform/internal/session"
)

// addFlash queues a one-shot message, creating an anonymous session when
// the client has none yet.
func addFlash(c echo.Context, store session.Store, level, message string) {
	sess, err := session.Begin(c, store)
	if err != nil {
		return
	}
	sess.AddFlash(level, message)
	_ = store.Save(c.Request().Context(), sess)
}

// popFlashes drains queued messages for rendering.
func popFlashes(c echo.Context, store session.Store) []session.Flash {
	sess := session.FromContext(c)
	if sess == nil {
		return nil
	}
	flashes := sess.PopFlashes()
	if len(flashes) > 0 {
		_ = store.Save(c.Request().Context(), sess)
	}
	return flashes
}
