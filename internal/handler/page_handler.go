package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakelodge/internal/service"
)

type pagePayload struct {
	HeroTitle      string `json:"hero_title"`
	HeroSubtitle   string `json:"hero_subtitle"`
	HeroImageURL   string `json:"hero_image_url"`
	HeroVideoURL   string `json:"hero_video_url"`
	Body           string `json:"body"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
}

// ListPages returns the editable content of every page.
func (a *API) ListPages(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch pages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// GetPage returns one page's content by slug.
func (a *API) GetPage(c *gin.Context) {
	page, err := a.pages.GetBySlug(c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageNotFound):
			respondError(c, http.StatusNotFound, "Page not found")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to fetch page")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}

// UpdatePage saves a page's content (full record, read-modify-write).
func (a *API) UpdatePage(c *gin.Context) {
	var payload pagePayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	page, err := a.pages.Save(c.Param("slug"), service.PageInput{
		HeroTitle:      payload.HeroTitle,
		HeroSubtitle:   payload.HeroSubtitle,
		HeroImageURL:   payload.HeroImageURL,
		HeroVideoURL:   payload.HeroVideoURL,
		Body:           payload.Body,
		SEOTitle:       payload.SEOTitle,
		SEODescription: payload.SEODescription,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageSlugMissing):
			respondError(c, http.StatusBadRequest, "Page slug is required")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to save page")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// ShowPagesEditor renders the admin page-content editor.
func (a *API) ShowPagesEditor(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "pages_edit.html", gin.H{
			"title": "Pages",
			"error": "Failed to load pages",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "pages_edit.html", gin.H{
		"title": "Pages",
		"pages": pages,
	})
}
