package handlers

import (
	"errors"

	"filedrop-backend/models"
	"filedrop-backend/service"
	"filedrop-backend/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles HTTP requests for registration and sessions
type AuthHandler struct {
	authService *service.AuthService
	log         logrus.FieldLogger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

// usernameForm is the signup and login form
type usernameForm struct {
	Username string `form:"username" binding:"required,max=150"`
}

// LoadUser resolves the session's user, if any, without requiring one
func (h *AuthHandler) LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := session.UserID(c)
		if id == 0 {
			c.Next()
			return
		}
		user, err := h.authService.CurrentUser(c.Request.Context(), id)
		if err != nil {
			internalError(c, h.log, err)
			c.Abort()
			return
		}
		if user == nil {
			// Session points at a user that no longer resolves
			if err := session.Logout(c); err != nil {
				h.log.WithError(err).Warn("failed to clear stale session")
			}
		} else {
			c.Set(currentUserKey, user)
		}
		c.Next()
	}
}

// RequireUser rejects requests without a logged-in user. It must run after
// LoadUser.
func (h *AuthHandler) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			redirectWithFlash(c, h.log, "/login", "Please log in to access this page")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Index handles GET /
func (h *AuthHandler) Index(c *gin.Context) {
	page(c, h.log, gin.H{"service": "filedrop"})
}

// SignupPage handles GET /signup
func (h *AuthHandler) SignupPage(c *gin.Context) {
	page(c, h.log, gin.H{"form": gin.H{"fields": []string{"username"}}})
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var form usernameForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithFlash(c, h.log, "/signup", "Username is required (at most 150 characters)")
		return
	}

	_, err := h.authService.Register(c.Request.Context(), form.Username)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			redirectWithFlash(c, h.log, "/signup", "A user with this username already exists")
			return
		}
		internalError(c, h.log, err)
		return
	}

	redirectWithFlash(c, h.log, "/login", "Registration successful")
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	page(c, h.log, gin.H{"form": gin.H{"fields": []string{"username"}}})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form usernameForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithFlash(c, h.log, "/login", "Invalid username")
		return
	}

	user, err := h.authService.Login(c.Request.Context(), form.Username)
	if err != nil {
		if errors.Is(err, models.ErrUnknownUser) {
			redirectWithFlash(c, h.log, "/login", "Invalid username")
			return
		}
		internalError(c, h.log, err)
		return
	}

	if err := session.Login(c, user.ID); err != nil {
		internalError(c, h.log, err)
		return
	}
	redirectWithFlash(c, h.log, "/upload", "You are now logged in")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.Logout(c); err != nil {
		internalError(c, h.log, err)
		return
	}
	redirectWithFlash(c, h.log, "/", "You have been logged out")
}
