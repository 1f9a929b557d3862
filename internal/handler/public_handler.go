package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakelodge/internal/db"
	"github.com/lakelodge/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	contentSanitizer = buildContentSanitizer()
)

// heroCategoryBySlug binds page slugs to their hero image slot.
var heroCategoryBySlug = map[string]string{
	"home":           "hero-home",
	"the-lakes":      "hero-lakes",
	"deer-hunting":   "hero-deer",
	"turkey-hunting": "hero-turkey",
	"bass-fishing":   "hero-fishing",
	"gallery":        "hero-gallery",
	"directions":     "hero-directions",
	"contact":        "hero-contact",
}

// galleryCategoryBySlug binds activity pages to their gallery grouping.
var galleryCategoryBySlug = map[string]string{
	"the-lakes":      "lakes",
	"deer-hunting":   "deer-hunting",
	"turkey-hunting": "turkey-hunting",
	"bass-fishing":   "fishing",
	"lodging":        "lodging",
}

// cardCategoryBySlug binds activity pages to their landing-page card image.
var cardCategoryBySlug = map[string]string{
	"the-lakes":      "card-lakes",
	"deer-hunting":   "card-deer",
	"turkey-hunting": "card-turkey",
	"bass-fishing":   "card-fishing",
	"lodging":        "card-lodging",
}

// NoCache marks every public page uncacheable; content edits must show up
// on the next request.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Next()
	}
}

// pageView gathers everything a public page template needs, with hard-coded
// fallbacks when the catalog has nothing for the slug.
type pageView struct {
	Page      *db.PageContent
	HeroImage *db.GalleryImage
	HeroVideo template.HTML
	BodyHTML  template.HTML
}

func (a *API) loadPageView(c *gin.Context, slug string) pageView {
	view := pageView{}

	page, err := a.pages.GetBySlug(slug)
	if err != nil && !errors.Is(err, service.ErrPageNotFound) {
		c.Error(err)
	}
	view.Page = page

	if category, ok := heroCategoryBySlug[slug]; ok {
		hero, err := a.galleries.FirstInCategory(category)
		if err != nil && !errors.Is(err, service.ErrGalleryNotFound) {
			c.Error(err)
		}
		view.HeroImage = hero
	}

	if page != nil {
		view.HeroVideo = heroVideoEmbed(page.HeroVideoURL)
		view.BodyHTML = renderMarkdown(page.Body)
	}

	return view
}

func renderMarkdown(markdown string) template.HTML {
	if markdown == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &buf); err != nil {
		return ""
	}
	return template.HTML(contentSanitizer.SanitizeBytes(buf.Bytes()))
}

// ShowHome renders the landing page with featured activities and the
// per-activity card images.
func (a *API) ShowHome(c *gin.Context) {
	view := a.loadPageView(c, "home")

	featured, err := a.activities.ListFeatured()
	if err != nil {
		c.Error(err)
	}

	// Card images are keyed by activity slug so the template can pair each
	// featured activity with its picture.
	cards := map[string]*db.GalleryImage{}
	for slug, category := range cardCategoryBySlug {
		image, err := a.galleries.FirstInCategory(category)
		if err != nil {
			if !errors.Is(err, service.ErrGalleryNotFound) {
				c.Error(err)
			}
			continue
		}
		cards[slug] = image
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title":      "Home",
		"view":       view,
		"activities": featured,
		"cards":      cards,
	})
}

// ShowActivityPage renders one activity page (lakes, hunting, fishing,
// lodging) with its gallery section.
func (a *API) ShowActivityPage(slug, templateName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		view := a.loadPageView(c, slug)

		activity, err := a.activities.GetBySlug(slug)
		if err != nil && !errors.Is(err, service.ErrActivityNotFound) {
			c.Error(err)
		}

		var images []db.GalleryImage
		if category, ok := galleryCategoryBySlug[slug]; ok {
			images, err = a.galleries.ListByCategory(category)
			if err != nil {
				c.Error(err)
			}
		}

		a.renderHTML(c, http.StatusOK, templateName, gin.H{
			"title":    pageTitle(view.Page, slug),
			"view":     view,
			"activity": activity,
			"images":   images,
		})
	}
}

// ShowGallery renders the public gallery grouped by category.
func (a *API) ShowGallery(c *gin.Context) {
	view := a.loadPageView(c, "gallery")

	grouped, err := a.galleries.Grouped()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "gallery.html", gin.H{
			"title": "Gallery",
			"error": "Failed to load the gallery, please try again later",
		})
		return
	}

	var sections []gin.H
	for _, category := range db.AllGalleryCategories() {
		if category.Slot != db.SlotGallery {
			continue
		}
		images := grouped[category.Key]
		if len(images) == 0 {
			continue
		}
		sections = append(sections, gin.H{
			"key":    category.Key,
			"label":  category.Label,
			"images": images,
		})
	}

	a.renderHTML(c, http.StatusOK, "gallery.html", gin.H{
		"title":    pageTitle(view.Page, "gallery"),
		"view":     view,
		"sections": sections,
	})
}

// ShowDirections renders the directions page from the site settings.
func (a *API) ShowDirections(c *gin.Context) {
	view := a.loadPageView(c, "directions")
	a.renderHTML(c, http.StatusOK, "directions.html", gin.H{
		"title": pageTitle(view.Page, "directions"),
		"view":  view,
	})
}

// ShowContactPage renders the contact form page.
func (a *API) ShowContactPage(c *gin.Context) {
	view := a.loadPageView(c, "contact")
	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"title": pageTitle(view.Page, "contact"),
		"view":  view,
	})
}

func pageTitle(page *db.PageContent, fallback string) string {
	if page != nil && page.SEOTitle != "" {
		return page.SEOTitle
	}
	if page != nil && page.HeroTitle != "" {
		return page.HeroTitle
	}
	return fallback
}
