package handler

import (
	"github.com/InkwellBlog/web-client/internal/model"
	"github.com/InkwellBlog/web-client/internal/service"
	"github.com/InkwellBlog/web-client/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", h.authSignUp)
			auth.POST("/signin", h.authSignIn)
			auth.POST("/signout", h.authMiddleware, h.authSignOut)
			auth.GET("/me", h.authMiddleware, h.authMe)
		}

		posts := v1.Group("/posts")
		{
			posts.GET("", h.notRequiredAuthMiddleware, h.postsGet)
			posts.POST("", h.authMiddleware, h.postsCreate)

			post := posts.Group("/:postID")
			{
				post.GET("", h.notRequiredAuthMiddleware, h.postsGetByID)
				post.PATCH("", h.authMiddleware, h.postsEdit)
				post.DELETE("", h.authMiddleware, h.postsDelete)
			}
		}

		files := v1.Group("/files")
		{
			files.POST("/upload", h.authMiddleware, h.filesUpload)
			files.GET("/:fileID/url", h.filesResolveURL)
		}
	}

	return r
}

func (h *Handler) getUserFromRequest(c *gin.Context) *model.UserProfile {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.UserProfile)
	if !ok {
		return nil
	}

	return &user
}

func (h *Handler) getSessionFromRequest(c *gin.Context) *session.Stored {
	sessionReq, _ := c.Get("session")

	stored, ok := sessionReq.(session.Stored)
	if !ok {
		return nil
	}

	return &stored
}

func (h *Handler) getSessionSecret(c *gin.Context) string {
	if stored := h.getSessionFromRequest(c); stored != nil {
		return stored.BackendSecret
	}
	return ""
}
