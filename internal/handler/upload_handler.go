package handler

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/png"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lakelodge/internal/db"
	"github.com/lakelodge/internal/service"
	"golang.org/x/image/draw"
)

const thumbMaxWidth = 480

// UploadGalleryImage accepts one multipart file plus a category and optional
// title, stores the binary (and a thumbnail for still images), and inserts a
// catalog row at the next ordinal within the category.
func (a *API) UploadGalleryImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file provided")
		return
	}

	category := strings.TrimSpace(c.PostForm("category"))
	if category == "" {
		category = db.DefaultGalleryCategory
	}
	if !db.IsValidGalleryCategory(category) {
		respondError(c, http.StatusBadRequest, "Category is not allowed")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		respondError(c, http.StatusBadRequest, "Only image and video uploads are allowed")
		return
	}

	if a.store == nil {
		respondError(c, http.StatusInternalServerError, "No media storage configured")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to read upload")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to read upload")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), shortID(), ext)
	key := category + "/" + name

	ctx := c.Request.Context()
	url, err := a.store.Put(ctx, key, contentType, data)
	if err != nil {
		respondError(c, http.StatusInternalServerError, fmt.Sprintf(
			"Storage upload failed: %v. Check the media bucket exists and allows writes.", err))
		return
	}

	// Thumbnails are best-effort: a file we cannot decode is stored as-is.
	thumbURL := ""
	if strings.HasPrefix(contentType, "image/") {
		if thumb, thumbErr := makeThumbnail(data); thumbErr == nil {
			thumbKey := category + "/thumbs/" + strings.TrimSuffix(name, ext) + ".jpg"
			if u, putErr := a.store.Put(ctx, thumbKey, "image/jpeg", thumb); putErr == nil {
				thumbURL = u
			}
		}
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		title = strings.TrimSuffix(path.Base(file.Filename), filepath.Ext(file.Filename))
	}

	image, err := a.galleries.Create(service.GalleryInput{
		Title:    title,
		ImageURL: url,
		ThumbURL: thumbURL,
		Category: category,
	})
	if err != nil {
		// The stored binary is orphaned here; accepted trade-off, there is
		// no compensating delete.
		respondError(c, http.StatusInternalServerError, fmt.Sprintf(
			"Database error: %v. The uploaded file was stored but not cataloged.", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "image": image, "url": url})
}

func shortID() string {
	id := uuid.New().String()
	return strings.ReplaceAll(id, "-", "")[:12]
}

func makeThumbnail(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= thumbMaxWidth {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: 80}); err != nil {
			return nil, fmt.Errorf("encode thumbnail: %w", err)
		}
		return buf.Bytes(), nil
	}

	scaled := image.NewRGBA(image.Rect(0, 0, thumbMaxWidth, height*thumbMaxWidth/width))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
