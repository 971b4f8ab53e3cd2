package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"voxform/internal/errors"
	"voxform/internal/service"
	"voxform/internal/session"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	accounts service.AccountService
	sessions session.Store
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(accounts service.AccountService, sessions session.Store) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions}
}

// SignupRequest represents the signup form fields.
type SignupRequest struct {
	Username string `form:"userName" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

// LoginRequest represents the login form fields.
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// SignupPage renders the signup form.
func (h *AuthHandler) SignupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "auth.html", echo.Map{
		"Mode":    "signup",
		"Flashes": popFlashes(c, h.sessions),
	})
}

// Signup creates a new account and redirects to the login page.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		addFlash(c, h.sessions, "error", "Invalid form data. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/signup")
	}
	if err := c.Validate(&req); err != nil {
		addFlash(c, h.sessions, "error", "Please fill in all fields correctly.")
		return c.Redirect(http.StatusSeeOther, "/signup")
	}

	if _, err := h.accounts.Signup(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		if err == errors.ErrDuplicateEmail {
			addFlash(c, h.sessions, "error", "User already exists. Please log in.")
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		addFlash(c, h.sessions, "error", "Signup failed. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/signup")
	}

	addFlash(c, h.sessions, "success", "Signup successful! You can now log in.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if sess := session.FromContext(c); sess.LoggedIn() {
		addFlash(c, h.sessions, "info", "You are already logged in.")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.Render(http.StatusOK, "auth.html", echo.Map{
		"Mode":    "login",
		"Flashes": popFlashes(c, h.sessions),
	})
}

// Login authenticates the user and starts a session.
func (h *AuthHandler) Login(c echo.Context) error {
	if sess := session.FromContext(c); sess.LoggedIn() {
		addFlash(c, h.sessions, "info", "You are already logged in.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		addFlash(c, h.sessions, "error", "Invalid form data. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if err := c.Validate(&req); err != nil {
		addFlash(c, h.sessions, "error", "Please fill in all fields correctly.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	user, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case errors.ErrUserNotFound:
			addFlash(c, h.sessions, "error", "User does not exist. Please sign up first.")
			return c.Redirect(http.StatusSeeOther, "/signup")
		case errors.ErrInvalidCredentials:
			addFlash(c, h.sessions, "error", "Invalid credentials. Please try again.")
			return c.Redirect(http.StatusSeeOther, "/login")
		default:
			addFlash(c, h.sessions, "error", "Login failed. Please try again.")
			return c.Redirect(http.StatusSeeOther, "/login")
		}
	}

	sess, err := session.Begin(c, h.sessions)
	if err != nil {
		addFlash(c, h.sessions, "error", "Login failed. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	sess.UserID = user.ID
	sess.AddFlash("success", "Login successful!")
	if err := h.sessions.Save(c.Request().Context(), sess); err != nil {
		addFlash(c, h.sessions, "error", "Login failed. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout destroys the session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if sess := session.FromContext(c); sess != nil {
		_ = h.sessions.Delete(c.Request().Context(), sess.ID)
	}
	session.ClearCookie(c)
	return c.Redirect(http.StatusSeeOther, "/")
}
