package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/InkwellBlog/web-client/internal/dto"
	"github.com/InkwellBlog/web-client/internal/feed"
	"github.com/InkwellBlog/web-client/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsGet(c *gin.Context) {
	user := h.getUserFromRequest(c)

	onlyMine, _ := strconv.ParseBool(c.Query("mine"))
	includeInactive, _ := strconv.ParseBool(c.Query("all"))

	opts := service.FeedOptions{
		OnlyMine:        onlyMine && user != nil,
		IncludeInactive: includeInactive && user != nil,
	}

	posts, err := h.services.Post.Feed(c.Request.Context(), h.getSessionSecret(c), user, opts)
	if err != nil {
		if err == feed.ErrSuperseded {
			// The identity changed under an in-flight fetch; the client
			// simply retries for the new identity.
			c.JSON(http.StatusConflict, dto.NewBasicResponse(false, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID := strings.TrimSpace(c.Param("postID"))
	if postID == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), h.getSessionSecret(c), user, postID)
	if err != nil {
		if err == service.ErrPostNotFound {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, *post)
}

func (h *Handler) postsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), h.getSessionSecret(c), user, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, *createdPost)
}

func (h *Handler) postsEdit(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID := strings.TrimSpace(c.Param("postID"))
	if postID == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	var input dto.EditPostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedPost, err := h.services.Post.Edit(c.Request.Context(), h.getSessionSecret(c), user, postID, input)
	if err != nil {
		switch err {
		case service.ErrPostNotFound:
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
		case service.ErrNotPostAuthor:
			c.JSON(http.StatusForbidden, dto.NewBasicResponse(false, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, *updatedPost)
}

func (h *Handler) postsDelete(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID := strings.TrimSpace(c.Param("postID"))
	if postID == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), h.getSessionSecret(c), user, postID); err != nil {
		switch err {
		case service.ErrPostNotFound:
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
		case service.ErrNotPostAuthor:
			c.JSON(http.StatusForbidden, dto.NewBasicResponse(false, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "post deleted"))
}
