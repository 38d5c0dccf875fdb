package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
)

// SetRouter registers every route on server. The session middleware must
// already be installed.
func SetRouter(server *gin.Engine, authHandler *AuthHandler, fileHandler *FileHandler, ping func(ctx context.Context) error) {
	server.GET("/health", Health(ping))

	web := server.Group("/", authHandler.LoadUser())
	{
		web.GET("/", authHandler.Index)
		web.GET("/signup", authHandler.SignupPage)
		web.POST("/signup", authHandler.Signup)
		web.GET("/login", authHandler.LoginPage)
		web.POST("/login", authHandler.Login)
	}

	protected := web.Group("/", authHandler.RequireUser())
	{
		protected.GET("/logout", authHandler.Logout)
		protected.GET("/upload", fileHandler.UploadPage)
		protected.POST("/upload", fileHandler.UploadFile)
		protected.GET("/files", fileHandler.ListFiles)
		protected.GET("/download/:id", fileHandler.DownloadFile)
	}
}
