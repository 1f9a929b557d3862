package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakelodge/internal/service"
)

type activityPayload struct {
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Type             string   `json:"type"`
	ShortDescription string   `json:"short_description"`
	FullDescription  string   `json:"full_description"`
	HeroImageURL     string   `json:"hero_image_url"`
	DailyRate        float64  `json:"daily_rate"`
	LodgingRate      float64  `json:"lodging_rate"`
	SeasonInfo       string   `json:"season_info"`
	Features         []string `json:"features"`
	IsFeatured       bool     `json:"is_featured"`
	DisplayOrder     int      `json:"display_order"`
}

func (p activityPayload) toInput() service.ActivityInput {
	return service.ActivityInput{
		Name:             p.Name,
		Slug:             p.Slug,
		Type:             p.Type,
		ShortDescription: p.ShortDescription,
		FullDescription:  p.FullDescription,
		HeroImageURL:     p.HeroImageURL,
		DailyRate:        p.DailyRate,
		LodgingRate:      p.LodgingRate,
		SeasonInfo:       p.SeasonInfo,
		Features:         p.Features,
		IsFeatured:       p.IsFeatured,
		DisplayOrder:     p.DisplayOrder,
	}
}

// ListActivities returns all activities in display order.
func (a *API) ListActivities(c *gin.Context) {
	items, err := a.activities.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch activities")
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": items})
}

// CreateActivity adds a new activity.
func (a *API) CreateActivity(c *gin.Context) {
	var payload activityPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	item, err := a.activities.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNameMissing):
			respondError(c, http.StatusBadRequest, "Activity name is required")
		case errors.Is(err, service.ErrActivitySlugTaken):
			respondError(c, http.StatusBadRequest, "Activity slug already exists")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create activity")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": item})
}

// UpdateActivity modifies an existing activity.
func (a *API) UpdateActivity(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid activity ID")
		return
	}

	var payload activityPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	item, err := a.activities.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			respondError(c, http.StatusNotFound, "Activity not found")
		case errors.Is(err, service.ErrActivityNameMissing):
			respondError(c, http.StatusBadRequest, "Activity name is required")
		case errors.Is(err, service.ErrActivitySlugTaken):
			respondError(c, http.StatusBadRequest, "Activity slug already exists")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update activity")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": item})
}

// DeleteActivity removes an activity.
func (a *API) DeleteActivity(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid activity ID")
		return
	}

	if err := a.activities.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			respondError(c, http.StatusNotFound, "Activity not found")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to delete activity")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ShowActivities renders the admin activity editor.
func (a *API) ShowActivities(c *gin.Context) {
	items, err := a.activities.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "activities.html", gin.H{
			"title": "Activities",
			"error": "Failed to load activities",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "activities.html", gin.H{
		"title":      "Activities",
		"activities": items,
	})
}
