package handlers

import (
	"bytes"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"go-panorama-gallery/internal/gallery"
)

const (
	defaultThumbWidth  = 320
	defaultThumbHeight = 180
	maxThumbDimension  = 2048
	thumbJPEGQuality   = 80
)

// Thumbnail serves a cover-fit JPEG preview of a gallery image. The path
// parameter mirrors the /images route, relative to the gallery root;
// width/height query parameters override the default tile size.
func (h *Gallery) Thumbnail(c *gin.Context) {
	rel := path.Clean(strings.TrimPrefix(c.Param("path"), "/"))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image path"})
		return
	}
	if !gallery.HasAllowedExtension(rel, h.cfg.Gallery.AllowedExtensions) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	width := parseDimension(c.Query("width"), defaultThumbWidth)
	height := parseDimension(c.Query("height"), defaultThumbHeight)

	f, err := h.fs.Open(rel)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	defer f.Close()

	src, err := imaging.Decode(f)
	if err != nil {
		h.log.WithError(err).WithField("path", rel).Warn("failed to decode image for thumbnail")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to decode image"})
		return
	}

	thumb := imaging.Fill(src, width, height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(thumbJPEGQuality)); err != nil {
		h.log.WithError(err).WithField("path", rel).Error("failed to encode thumbnail")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode thumbnail"})
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/jpeg", buf.Bytes())
}

func parseDimension(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	if n > maxThumbDimension {
		return maxThumbDimension
	}
	return n
}
