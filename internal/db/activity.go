package db

import "time"

// Activity types offered by the lodge.
const (
	ActivityTypeLake          = "lake"
	ActivityTypeDeerHunting   = "deer-hunting"
	ActivityTypeTurkeyHunting = "turkey-hunting"
	ActivityTypeBassFishing   = "bass-fishing"
)

// Activity describes one bookable activity shown on the public site.
type Activity struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	Name             string    `gorm:"size:120;not null" json:"name"`
	Slug             string    `gorm:"uniqueIndex;size:120;not null" json:"slug"`
	Type             string    `gorm:"size:40;not null" json:"type"`
	ShortDescription string    `json:"short_description"`
	FullDescription  string    `gorm:"type:text" json:"full_description"`
	HeroImageURL     string    `json:"hero_image_url"`
	DailyRate        float64   `json:"daily_rate"`
	LodgingRate      float64   `json:"lodging_rate"`
	SeasonInfo       string    `json:"season_info"`
	Features         []string  `gorm:"serializer:json" json:"features"`
	IsFeatured       bool      `gorm:"default:false" json:"is_featured"`
	DisplayOrder     int       `gorm:"default:0" json:"display_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
