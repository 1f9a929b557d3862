package db

import "time"

// PageContent holds the editable content for one public page, keyed by slug.
type PageContent struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Slug           string    `gorm:"uniqueIndex;size:80;not null" json:"page_slug"`
	HeroTitle      string    `json:"hero_title"`
	HeroSubtitle   string    `json:"hero_subtitle"`
	HeroImageURL   string    `json:"hero_image_url"`
	HeroVideoURL   string    `json:"hero_video_url"`
	Body           string    `gorm:"type:text" json:"body"`
	SEOTitle       string    `json:"seo_title"`
	SEODescription string    `json:"seo_description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName matches the catalog naming used elsewhere.
func (PageContent) TableName() string {
	return "page_contents"
}
