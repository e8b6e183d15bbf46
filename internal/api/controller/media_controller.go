package controller

import (
	"errors"
	"net/http"

	"github.com/bassista/tourdesk/internal/media"
	"github.com/gin-gonic/gin"
)

// uploadTypes are the tour images and traveller documents the forms accept.
var uploadTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif", "application/pdf"}

// MediaController converts uploads to data URLs for the tour and traveller forms.
type MediaController struct {
	converter media.Converter
}

func NewMediaController(maxBytes int64) *MediaController {
	return &MediaController{converter: media.Converter{MaxBytes: maxBytes, Allowed: uploadTypes}}
}

// DataURL handles a multipart upload in the "file" field.
func (mc *MediaController) DataURL(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	if mc.converter.MaxBytes > 0 && fh.Size > mc.converter.MaxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": media.ErrTooLarge.Error()})
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer f.Close()

	out, err := mc.converter.Encode(f)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, out)
	case errors.Is(err, media.ErrTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, media.ErrEmpty), errors.Is(err, media.ErrNotAllowed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		writeError(c, err)
	}
}
