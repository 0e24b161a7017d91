package handler

import (
	"net/http"
	"strings"

	"github.com/InkwellBlog/web-client/internal/backend"
	"github.com/InkwellBlog/web-client/internal/dto"
	"github.com/InkwellBlog/web-client/internal/imageurl"
	"github.com/gin-gonic/gin"
)

func (h *Handler) filesUpload(c *gin.Context) {
	file, fileHeader, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}
	defer file.Close()

	stored, err := h.services.Post.UploadImage(c.Request.Context(), h.getSessionSecret(c), file, fileHeader)
	if err != nil {
		if err == backend.ErrFileMustBeImage || err == backend.ErrFileTooLarge {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, *stored)
}

func (h *Handler) filesResolveURL(c *gin.Context) {
	fileID := strings.TrimSpace(c.Param("fileID"))
	if fileID == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidFileID.Error()))
		return
	}

	url, err := h.services.Post.ImageURL(c.Request.Context(), fileID)
	if err != nil {
		if err == imageurl.ErrNoReachableURL {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
