package service

import (
	"errors"
	"strings"

	"github.com/lakelodge/internal/db"
	"gorm.io/gorm"
)

var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrActivityNameMissing = errors.New("activity name is required")
	ErrActivitySlugTaken   = errors.New("activity slug already exists")
)

// ActivityService handles the lodge activity catalog.
type ActivityService struct {
	db *gorm.DB
}

// ActivityInput represents fields accepted when creating or updating an
// activity.
type ActivityInput struct {
	Name             string
	Slug             string
	Type             string
	ShortDescription string
	FullDescription  string
	HeroImageURL     string
	DailyRate        float64
	LodgingRate      float64
	SeasonInfo       string
	Features         []string
	IsFeatured       bool
	DisplayOrder     int
}

// NewActivityService creates an ActivityService instance.
func NewActivityService(gdb *gorm.DB) *ActivityService {
	return &ActivityService{db: gdb}
}

// List returns all activities in display order.
func (s *ActivityService) List() ([]db.Activity, error) {
	var items []db.Activity
	if err := s.db.Order("display_order asc, id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListFeatured returns featured activities in display order.
func (s *ActivityService) ListFeatured() ([]db.Activity, error) {
	var items []db.Activity
	if err := s.db.Where("is_featured = ?", true).
		Order("display_order asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetBySlug fetches one activity by slug.
func (s *ActivityService) GetBySlug(slug string) (*db.Activity, error) {
	var item db.Activity
	if err := s.db.Where("slug = ?", slug).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new activity.
func (s *ActivityService) Create(input ActivityInput) (*db.Activity, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrActivityNameMissing
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = slugify(name)
	}

	var count int64
	if err := s.db.Model(&db.Activity{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrActivitySlugTaken
	}

	item := db.Activity{
		Name:             name,
		Slug:             slug,
		Type:             strings.TrimSpace(input.Type),
		ShortDescription: strings.TrimSpace(input.ShortDescription),
		FullDescription:  input.FullDescription,
		HeroImageURL:     strings.TrimSpace(input.HeroImageURL),
		DailyRate:        input.DailyRate,
		LodgingRate:      input.LodgingRate,
		SeasonInfo:       strings.TrimSpace(input.SeasonInfo),
		Features:         input.Features,
		IsFeatured:       input.IsFeatured,
		DisplayOrder:     input.DisplayOrder,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing activity.
func (s *ActivityService) Update(id uint, input ActivityInput) (*db.Activity, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrActivityNameMissing
	}

	var item db.Activity
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = item.Slug
	}
	if slug != item.Slug {
		var count int64
		if err := s.db.Model(&db.Activity{}).Where("slug = ? AND id <> ?", slug, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrActivitySlugTaken
		}
	}

	item.Name = name
	item.Slug = slug
	item.Type = strings.TrimSpace(input.Type)
	item.ShortDescription = strings.TrimSpace(input.ShortDescription)
	item.FullDescription = input.FullDescription
	item.HeroImageURL = strings.TrimSpace(input.HeroImageURL)
	item.DailyRate = input.DailyRate
	item.LodgingRate = input.LodgingRate
	item.SeasonInfo = strings.TrimSpace(input.SeasonInfo)
	item.Features = input.Features
	item.IsFeatured = input.IsFeatured
	item.DisplayOrder = input.DisplayOrder

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an activity.
func (s *ActivityService) Delete(id uint) error {
	result := s.db.Delete(&db.Activity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrActivityNotFound
	}
	return nil
}

func slugify(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastDash := true
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
