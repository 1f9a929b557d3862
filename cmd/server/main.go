package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/lakelodge/internal/config"
	"github.com/lakelodge/internal/db"
	"github.com/lakelodge/internal/handler"
	"github.com/lakelodge/internal/router"
	"github.com/lakelodge/internal/service"
	"github.com/lakelodge/internal/storage"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureUser(cfg.SuperRootUserName, cfg.SuperRootPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	store, err := buildObjectStore(cfg)
	if err != nil {
		log.Fatalf("failed to initialize media storage: %v", err)
	}

	mailer := service.NewMailer(cfg.MailAPIKey, cfg.MailFrom, cfg.MailTo)
	if !mailer.Enabled() {
		log.Println("contact notification mail disabled: MAIL_API_KEY or MAIL_TO not set")
	}

	api := handler.NewAPI(db.DB, store, mailer)
	api.SetSiteBaseURL(cfg.SiteBaseURL)
	r := router.SetupRouter(api, cfg.SessionSecret, cfg.UploadDir, cfg.UploadURLPath)

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func buildObjectStore(cfg config.AppConfig) (storage.ObjectStore, error) {
	if cfg.S3Bucket != "" {
		return storage.NewS3Store(context.Background(), storage.S3Options{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
	}

	log.Printf("no S3 bucket configured, storing uploads under %s", cfg.UploadDir)
	return storage.NewLocalStore(cfg.UploadDir, cfg.UploadURLPath), nil
}
