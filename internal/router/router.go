package router

import (
	"html/template"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/lakelodge/internal/handler"
)

// SetupRouter configures the gin engine and all routes.
func SetupRouter(a *handler.API, sessionSecret, uploadDir, uploadURLPath string) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("lakelodge_session", store))

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"mul": func(a, b int) int { return a * b },
		"eq":  func(a, b interface{}) bool { return a == b },
	})
	if matches, err := filepath.Glob("web/template/**/*.html"); err == nil && len(matches) > 0 {
		r.LoadHTMLGlob("web/template/**/*.html")
	}

	r.Static("/static", "./web/static")
	if !strings.HasPrefix(uploadURLPath, "/static/") && uploadURLPath != "/static" {
		r.Static(uploadURLPath, uploadDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public pages, rendered fresh on every request.
	public := r.Group("", handler.NoCache())
	{
		public.GET("/", a.ShowHome)
		public.GET("/the-lakes", a.ShowActivityPage("the-lakes", "the_lakes.html"))
		public.GET("/deer-hunting", a.ShowActivityPage("deer-hunting", "deer_hunting.html"))
		public.GET("/turkey-hunting", a.ShowActivityPage("turkey-hunting", "turkey_hunting.html"))
		public.GET("/bass-fishing", a.ShowActivityPage("bass-fishing", "bass_fishing.html"))
		public.GET("/lodging", a.ShowActivityPage("lodging", "lodging.html"))
		public.GET("/gallery", a.ShowGallery)
		public.GET("/directions", a.ShowDirections)
		public.GET("/contact", a.ShowContactPage)
	}

	api := r.Group("/api")
	api.Use(cors.Default())
	{
		api.POST("/contact", a.SubmitContact)

		adminAPI := api.Group("/admin")
		adminAPI.Use(handler.APIAuthRequired())
		{
			adminAPI.GET("/gallery", a.ListGalleryImages)
			adminAPI.POST("/gallery", a.CreateGalleryImage)
			adminAPI.PUT("/gallery", a.UpdateGalleryImage)
			adminAPI.DELETE("/gallery", a.DeleteGalleryImage)
			adminAPI.POST("/gallery/rotate", a.RotateGalleryImage)
			adminAPI.POST("/gallery/reorder", a.ReorderGalleryImages)
			adminAPI.POST("/gallery/move", a.MoveGalleryImage)
			adminAPI.POST("/gallery/upload", a.UploadGalleryImage)
			adminAPI.POST("/gallery/seed", a.SeedGalleryDefaults)
			adminAPI.GET("/gallery/categories", a.ListGalleryCategories)
		}
	}

	admin := r.Group("/admin")
	{
		admin.GET("/login", a.ShowLoginPage)
		admin.POST("/login", a.Login)
		admin.GET("/logout", a.Logout)

		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", a.ShowDashboard)
			auth.GET("/gallery", a.ShowGalleryManagement)
			auth.GET("/messages", a.ShowMessages)
			auth.GET("/pages", a.ShowPagesEditor)
			auth.GET("/activities", a.ShowActivities)
			auth.GET("/settings", a.ShowSettings)

			adminPageAPI := auth.Group("/api")
			{
				adminPageAPI.GET("/messages", a.ListContactSubmissions)
				adminPageAPI.PUT("/messages/:id/read", a.MarkContactRead)
				adminPageAPI.DELETE("/messages/:id", a.DeleteContactSubmission)

				adminPageAPI.GET("/pages", a.ListPages)
				adminPageAPI.GET("/pages/:slug", a.GetPage)
				adminPageAPI.PUT("/pages/:slug", a.UpdatePage)

				adminPageAPI.GET("/activities", a.ListActivities)
				adminPageAPI.POST("/activities", a.CreateActivity)
				adminPageAPI.PUT("/activities/:id", a.UpdateActivity)
				adminPageAPI.DELETE("/activities/:id", a.DeleteActivity)

				adminPageAPI.GET("/settings", a.GetSiteSettings)
				adminPageAPI.PUT("/settings", a.UpdateSiteSettings)
			}
		}
	}

	return r
}
