package db

import "time"

// GalleryImage is one stored picture or video reference in the catalog.
// Category carries both the gallery grouping and the page-slot binding:
// hero/overview/card categories expect a single image.
type GalleryImage struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Title        string    `json:"title"`
	Caption      string    `json:"caption"`
	ImageURL     string    `gorm:"not null" json:"image_url"`
	ThumbURL     string    `json:"thumb_url"`
	Category     string    `gorm:"size:64;index;default:main-gallery" json:"category"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	Rotation     int       `gorm:"default:0" json:"rotation"` // 0, 90, 180, 270
	IsFeatured   bool      `gorm:"default:false" json:"is_featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
