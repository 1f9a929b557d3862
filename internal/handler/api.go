package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lakelodge/internal/service"
	"github.com/lakelodge/internal/storage"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	galleries  *service.GalleryService
	pages      *service.PageService
	activities *service.ActivityService
	contacts   *service.ContactService
	settings   *service.SiteSettingService
	store      storage.ObjectStore

	siteBaseURL string
}

const siteSettingsContextKey = "__site_settings"

// NewAPI constructs a handler set with shared services. store may be nil in
// tests that never touch uploads; mailer may be nil to disable notifications.
func NewAPI(gdb *gorm.DB, store storage.ObjectStore, mailer *service.Mailer) *API {
	return &API{
		db:         gdb,
		galleries:  service.NewGalleryService(gdb, store),
		pages:      service.NewPageService(gdb),
		activities: service.NewActivityService(gdb),
		contacts:   service.NewContactService(gdb, mailer),
		settings:   service.NewSiteSettingService(gdb),
		store:      store,
	}
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}

// SetSiteBaseURL sets the public origin used for canonical page links.
func (a *API) SetSiteBaseURL(base string) {
	a.siteBaseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

func (a *API) siteSettings(c *gin.Context) service.SiteSettings {
	if cached, exists := c.Get(siteSettingsContextKey); exists {
		if view, ok := cached.(service.SiteSettings); ok {
			return view
		}
	}

	settings, err := a.settings.GetSettings()
	if err != nil {
		c.Error(err)
	}

	c.Set(siteSettingsContextKey, settings)
	return settings
}

// renderHTML attaches the site settings and current year to every template
// render so headers, footers and ad slots always have their data.
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	view := a.siteSettings(c)

	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site"]; !exists {
		payload["site"] = gin.H{
			"name":            view.SiteName,
			"tagline":         view.Tagline,
			"phone":           view.Phone,
			"email":           view.Email,
			"city":            view.AddressCity,
			"state":           view.AddressState,
			"facebookUrl":     view.FacebookURL,
			"huntingRate":     view.HuntingDailyRate,
			"lodgingRate":     view.LodgingNightRate,
			"adsenseClientId": strings.TrimSpace(view.AdSenseClientID),
		}
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}
	if a.siteBaseURL != "" {
		payload["canonical"] = a.siteBaseURL + c.Request.URL.Path
	}

	c.HTML(status, template, payload)
}
