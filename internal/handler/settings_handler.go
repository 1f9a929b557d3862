package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakelodge/internal/service"
)

// GetSiteSettings returns the current site settings.
func (a *API) GetSiteSettings(c *gin.Context) {
	settings, err := a.settings.GetSettings()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSiteSettings saves the site settings.
func (a *API) UpdateSiteSettings(c *gin.Context) {
	var payload service.SiteSettings
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	settings, err := a.settings.UpdateSettings(payload)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// ShowSettings renders the admin settings screen.
func (a *API) ShowSettings(c *gin.Context) {
	settings, err := a.settings.GetSettings()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "settings.html", gin.H{
			"title": "Site Settings",
			"error": "Failed to load settings",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "settings.html", gin.H{
		"title":    "Site Settings",
		"settings": settings,
	})
}
