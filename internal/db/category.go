package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot kinds. Gallery slots hold any number of images, the others are
// page placements that expect exactly one.
const (
	SlotGallery  = "gallery"
	SlotHero     = "hero"
	SlotOverview = "overview"
	SlotCard     = "card"
)

// DefaultGalleryCategory is where uploads land when no category is given.
const DefaultGalleryCategory = "main-gallery"

// GalleryCategory is one entry of the closed placement taxonomy. The list
// is defined here, in the application, and seeded into a lookup table at
// startup so the admin UI can enumerate it.
type GalleryCategory struct {
	Key   string `gorm:"primaryKey;size:64" json:"key"`
	Label string `gorm:"size:100;not null" json:"label"`
	Slot  string `gorm:"size:20;not null" json:"slot"`
}

// TableName keeps the table clearly scoped to the gallery.
func (GalleryCategory) TableName() string {
	return "gallery_categories"
}

var galleryCategories = []GalleryCategory{
	{Key: "lakes", Label: "Lakes", Slot: SlotGallery},
	{Key: "deer-hunting", Label: "Deer Hunting", Slot: SlotGallery},
	{Key: "turkey-hunting", Label: "Turkey Hunting", Slot: SlotGallery},
	{Key: "fishing", Label: "Fishing", Slot: SlotGallery},
	{Key: "lodging", Label: "Lodging", Slot: SlotGallery},
	{Key: "property", Label: "Property", Slot: SlotGallery},
	{Key: "wildlife", Label: "Wildlife", Slot: SlotGallery},
	{Key: "main-gallery", Label: "Main Gallery", Slot: SlotGallery},
	{Key: "hero-home", Label: "Home Hero", Slot: SlotHero},
	{Key: "hero-lakes", Label: "Lakes Hero", Slot: SlotHero},
	{Key: "hero-deer", Label: "Deer Hunting Hero", Slot: SlotHero},
	{Key: "hero-turkey", Label: "Turkey Hunting Hero", Slot: SlotHero},
	{Key: "hero-fishing", Label: "Fishing Hero", Slot: SlotHero},
	{Key: "hero-gallery", Label: "Gallery Hero", Slot: SlotHero},
	{Key: "hero-directions", Label: "Directions Hero", Slot: SlotHero},
	{Key: "hero-contact", Label: "Contact Hero", Slot: SlotHero},
	{Key: "overview-deer", Label: "Deer Overview", Slot: SlotOverview},
	{Key: "overview-turkey", Label: "Turkey Overview", Slot: SlotOverview},
	{Key: "overview-fishing", Label: "Fishing Overview", Slot: SlotOverview},
	{Key: "overview-lodging", Label: "Lodging Overview", Slot: SlotOverview},
	{Key: "card-lakes", Label: "Lakes Card", Slot: SlotCard},
	{Key: "card-deer", Label: "Deer Hunting Card", Slot: SlotCard},
	{Key: "card-turkey", Label: "Turkey Hunting Card", Slot: SlotCard},
	{Key: "card-fishing", Label: "Fishing Card", Slot: SlotCard},
	{Key: "card-lodging", Label: "Lodging Card", Slot: SlotCard},
}

var galleryCategoryIndex = buildCategoryIndex()

func buildCategoryIndex() map[string]GalleryCategory {
	index := make(map[string]GalleryCategory, len(galleryCategories))
	for _, category := range galleryCategories {
		index[category.Key] = category
	}
	return index
}

// AllGalleryCategories returns the taxonomy in declaration order.
func AllGalleryCategories() []GalleryCategory {
	out := make([]GalleryCategory, len(galleryCategories))
	copy(out, galleryCategories)
	return out
}

// LookupGalleryCategory resolves a category key.
func LookupGalleryCategory(key string) (GalleryCategory, bool) {
	category, ok := galleryCategoryIndex[key]
	return category, ok
}

// IsValidGalleryCategory reports whether key belongs to the taxonomy.
func IsValidGalleryCategory(key string) bool {
	_, ok := galleryCategoryIndex[key]
	return ok
}

// IsSingleImageCategory reports whether the category is a page slot that
// should hold at most one image.
func IsSingleImageCategory(key string) bool {
	category, ok := galleryCategoryIndex[key]
	if !ok {
		return false
	}
	return category.Slot != SlotGallery
}

// SeedCategories upserts the taxonomy into its lookup table.
func SeedCategories(gdb *gorm.DB) error {
	for _, category := range galleryCategories {
		err := gdb.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"label", "slot"}),
		}).Create(&category).Error
		if err != nil {
			return err
		}
	}
	return nil
}
