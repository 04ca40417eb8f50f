package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/models"
	"github.com/ramonfbmiranda/arquivosmaverick/pkg/logger"
)

func (h *Handler) createPhoto(c *gin.Context) {
	var in models.PhotoCreate
	if !bindJSON(c, &in) {
		return
	}
	p, err := h.svc.CreatePhoto(c.Request.Context(), in)
	if err != nil {
		respondError(c, "Photo", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) listPhotos(c *gin.Context) {
	list, err := h.svc.ListPhotos(c.Request.Context())
	if err != nil {
		respondError(c, "Photo", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) deletePhoto(c *gin.Context) {
	if err := h.svc.DeletePhoto(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Photo", err)
		return
	}
	c.JSON(http.StatusOK, deletedMessage("Photo"))
}

// upload stores a multipart "file" in object storage and returns its public
// URL. It creates no Photo; the client posts the URL to /api/photos.
func (h *Handler) upload(c *gin.Context) {
	if c.Request.ContentLength > h.maxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"detail": "File too large"})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"detail": "File too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Field 'file' is required"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Unreadable upload"})
		return
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := "photos/" + models.NewID() + strings.ToLower(filepath.Ext(fh.Filename))
	if err := h.uploads.UploadFile(c.Request.Context(), key, f, fh.Size, contentType); err != nil {
		logger.Errorf("upload %s: %v", key, err)
		c.JSON(http.StatusBadGateway, gin.H{"detail": "Upload failed"})
		return
	}
	logger.Infof("stored upload %s (%d bytes)", key, fh.Size)
	c.JSON(http.StatusOK, gin.H{"url": h.uploads.ObjectURL(key), "key": key})
}
