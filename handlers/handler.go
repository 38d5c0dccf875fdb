package handlers

import (
	"context"
	"net/http"

	"filedrop-backend/models"
	"filedrop-backend/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const currentUserKey = "current_user"

// redirectWithFlash queues message for the next page and redirects with 303
func redirectWithFlash(c *gin.Context, log logrus.FieldLogger, location, message string) {
	if err := session.Flash(c, message); err != nil {
		log.WithError(err).Warn("failed to save flash message")
	}
	c.Redirect(http.StatusSeeOther, location)
}

// internalError reports an unexpected failure with the standard error envelope
func internalError(c *gin.Context, log logrus.FieldLogger, err error) {
	log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INTERNAL_ERROR",
			"message": "Internal server error",
		},
	})
}

// page renders a GET response with any pending flash messages
func page(c *gin.Context, log logrus.FieldLogger, data gin.H) {
	messages, err := session.Flashes(c)
	if err != nil {
		log.WithError(err).Warn("failed to clear flash messages")
	}
	data["success"] = true
	data["messages"] = messages
	if user := CurrentUser(c); user != nil {
		data["user"] = user
	}
	c.JSON(http.StatusOK, data)
}

// CurrentUser returns the user resolved by RequireUser or LoadUser
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(currentUserKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// Health handles GET /health. ping checks the database; nil skips the check.
func Health(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			if err := ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "unavailable",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}
}
