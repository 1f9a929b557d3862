package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lakelodge/internal/db"
	"github.com/lakelodge/internal/service"
)

type galleryCreatePayload struct {
	Title        string `json:"title"`
	Caption      string `json:"caption"`
	ImageURL     string `json:"image_url"`
	Category     string `json:"category"`
	DisplayOrder *int   `json:"display_order"`
	Rotation     int    `json:"rotation"`
	IsFeatured   bool   `json:"is_featured"`
}

// galleryUpdatePayload patches only the fields present in the request body.
type galleryUpdatePayload struct {
	ID           uint    `json:"id"`
	Title        *string `json:"title"`
	Caption      *string `json:"caption"`
	ImageURL     *string `json:"image_url"`
	Category     *string `json:"category"`
	DisplayOrder *int    `json:"display_order"`
	Rotation     *int    `json:"rotation"`
	IsFeatured   *bool   `json:"is_featured"`
}

type galleryReorderPayload struct {
	Images []service.ReorderEntry `json:"images"`
}

type galleryMovePayload struct {
	ID       uint `json:"id"`
	Position int  `json:"position"`
}

type gallerySeedPayload struct {
	Category string `json:"category"`
}

type galleryRotatePayload struct {
	ID uint `json:"id"`
}

// ListGalleryImages returns the image catalog, optionally filtered by
// category, sorted by category then display order.
func (a *API) ListGalleryImages(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))

	var (
		images []db.GalleryImage
		err    error
	)
	if category != "" {
		images, err = a.galleries.ListByCategory(category)
	} else {
		images, err = a.galleries.ListAll()
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch images")
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": images})
}

// ListGalleryCategories returns the placement taxonomy.
func (a *API) ListGalleryCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": db.AllGalleryCategories()})
}

// CreateGalleryImage inserts a catalog row for an already-stored image.
func (a *API) CreateGalleryImage(c *gin.Context) {
	var payload galleryCreatePayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	image, err := a.galleries.Create(service.GalleryInput{
		Title:        payload.Title,
		Caption:      payload.Caption,
		ImageURL:     payload.ImageURL,
		Category:     payload.Category,
		DisplayOrder: payload.DisplayOrder,
		Rotation:     payload.Rotation,
		IsFeatured:   payload.IsFeatured,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryImageMissing):
			respondError(c, http.StatusBadRequest, "Image URL is required")
		case errors.Is(err, service.ErrGalleryCategoryInvalid):
			respondError(c, http.StatusBadRequest, "Category is not allowed")
		case errors.Is(err, service.ErrGalleryRotationInvalid):
			respondError(c, http.StatusBadRequest, "Rotation must be 0, 90, 180 or 270")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to add image")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": image})
}

// UpdateGalleryImage patches the fields provided in the body.
func (a *API) UpdateGalleryImage(c *gin.Context) {
	var payload galleryUpdatePayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}
	if payload.ID == 0 {
		respondError(c, http.StatusBadRequest, "Image ID is required")
		return
	}

	image, err := a.galleries.Update(payload.ID, service.GalleryPatch{
		Title:        payload.Title,
		Caption:      payload.Caption,
		ImageURL:     payload.ImageURL,
		Category:     payload.Category,
		DisplayOrder: payload.DisplayOrder,
		Rotation:     payload.Rotation,
		IsFeatured:   payload.IsFeatured,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryNotFound):
			respondError(c, http.StatusNotFound, "Image not found")
		case errors.Is(err, service.ErrGalleryImageMissing):
			respondError(c, http.StatusBadRequest, "Image URL is required")
		case errors.Is(err, service.ErrGalleryCategoryInvalid):
			respondError(c, http.StatusBadRequest, "Category is not allowed")
		case errors.Is(err, service.ErrGalleryRotationInvalid):
			respondError(c, http.StatusBadRequest, "Rotation must be 0, 90, 180 or 270")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update image")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": image})
}

// RotateGalleryImage turns an image 90 degrees clockwise. Display-only; the
// stored binary is untouched.
func (a *API) RotateGalleryImage(c *gin.Context) {
	var payload galleryRotatePayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}
	if payload.ID == 0 {
		respondError(c, http.StatusBadRequest, "Image ID is required")
		return
	}

	image, err := a.galleries.Rotate(payload.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryNotFound):
			respondError(c, http.StatusNotFound, "Image not found")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to rotate image")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": image})
}

// DeleteGalleryImage removes the catalog row (and best-effort the binary).
func (a *API) DeleteGalleryImage(c *gin.Context) {
	id, err := parseUintQuery(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Image ID is required")
		return
	}

	if err := a.galleries.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryNotFound):
			respondError(c, http.StatusNotFound, "Image not found")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to delete image")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReorderGalleryImages applies a batch of (id, display_order) pairs, each
// as an independent update.
func (a *API) ReorderGalleryImages(c *gin.Context) {
	var payload galleryReorderPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}
	if payload.Images == nil {
		respondError(c, http.StatusBadRequest, "Images array is required")
		return
	}

	if err := a.galleries.Reorder(payload.Images); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to reorder images")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MoveGalleryImage drops an image at a 1-based position within its category
// and renumbers the category to a dense sequence.
func (a *API) MoveGalleryImage(c *gin.Context) {
	var payload galleryMovePayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	images, err := a.galleries.Move(payload.ID, payload.Position)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryNotFound):
			respondError(c, http.StatusNotFound, "Image not found")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to reorder images")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "images": images})
}

// SeedGalleryDefaults inserts the built-in default images for a category.
// Deliberately not idempotent: seeding twice duplicates the rows.
func (a *API) SeedGalleryDefaults(c *gin.Context) {
	var payload gallerySeedPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	inserted, failed, err := a.galleries.SeedDefaults(strings.TrimSpace(payload.Category))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryCategoryInvalid):
			respondError(c, http.StatusBadRequest, "Category is not allowed")
		case errors.Is(err, service.ErrGalleryNoDefaults):
			respondError(c, http.StatusBadRequest, "No default images for this category")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to seed gallery")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "inserted": inserted, "failed": failed})
}

// ShowGalleryManagement renders the admin image manager grouped by category.
func (a *API) ShowGalleryManagement(c *gin.Context) {
	grouped, err := a.galleries.Grouped()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "gallery_manage.html", gin.H{
			"title": "Image Manager",
			"error": "Failed to load the image catalog",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "gallery_manage.html", gin.H{
		"title":      "Image Manager",
		"categories": db.AllGalleryCategories(),
		"grouped":    grouped,
	})
}
