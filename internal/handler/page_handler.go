package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"voxform/internal/model"
	"voxform/internal/repository"
	"voxform/internal/session"
)

// PageHandler renders pages that carry no form processing of their own.
type PageHandler struct {
	users    repository.UserRepository
	sessions session.Store
}

// NewPageHandler creates a new page handler.
func NewPageHandler(users repository.UserRepository, sessions session.Store) *PageHandler {
	return &PageHandler{users: users, sessions: sessions}
}

// Home renders the landing page, with the current user when logged in.
func (h *PageHandler) Home(c echo.Context) error {
	var user *model.User
	if sess := session.FromContext(c); sess.LoggedIn() {
		// A stale session pointing at a deleted user renders anonymously.
		if u, err := h.users.FindByID(c.Request().Context(), sess.UserID); err == nil {
			user = u
		}
	}

	return c.Render(http.StatusOK, "index.html", echo.Map{
		"User":    user,
		"Flashes": popFlashes(c, h.sessions),
	})
}

// Success renders the post-submission confirmation page.
func (h *PageHandler) Success(c echo.Context) error {
	return c.Render(http.StatusOK, "success.html", echo.Map{
		"Flashes": popFlashes(c, h.sessions),
	})
}
