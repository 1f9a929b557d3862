package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lakelodge/internal/db"
	"github.com/lakelodge/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrGalleryNotFound        = errors.New("gallery image not found")
	ErrGalleryImageMissing    = errors.New("gallery image url is required")
	ErrGalleryCategoryInvalid = errors.New("gallery category is invalid")
	ErrGalleryRotationInvalid = errors.New("gallery rotation is invalid")
	ErrGalleryNoDefaults      = errors.New("no default images for category")
)

// galleryListOrder is the canonical read order. display_order ties are broken
// by created_at and id so reads stay stable even when two rows share an
// ordinal.
const galleryListOrder = "category asc, display_order asc, created_at asc, id asc"

// GalleryService owns the image catalog: CRUD, per-category ordinals,
// reordering and the built-in seed defaults.
type GalleryService struct {
	db    *gorm.DB
	store storage.ObjectStore
}

// GalleryInput carries the fields accepted when inserting a catalog row.
type GalleryInput struct {
	Title        string
	Caption      string
	ImageURL     string
	ThumbURL     string
	Category     string
	DisplayOrder *int
	Rotation     int
	IsFeatured   bool
}

// GalleryPatch updates only the fields that are set.
type GalleryPatch struct {
	Title        *string
	Caption      *string
	ImageURL     *string
	Category     *string
	DisplayOrder *int
	Rotation     *int
	IsFeatured   *bool
}

// ReorderEntry is one (id, display_order) pair of a reorder batch.
type ReorderEntry struct {
	ID           uint `json:"id"`
	DisplayOrder int  `json:"display_order"`
}

// NewGalleryService creates a GalleryService. store may be nil, in which
// case deletes leave binaries behind.
func NewGalleryService(gdb *gorm.DB, store storage.ObjectStore) *GalleryService {
	return &GalleryService{db: gdb, store: store}
}

// ListAll returns the whole catalog sorted by category then display order.
func (s *GalleryService) ListAll() ([]db.GalleryImage, error) {
	var items []db.GalleryImage
	if err := s.db.Order(galleryListOrder).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByCategory returns one category sorted by display order.
func (s *GalleryService) ListByCategory(category string) ([]db.GalleryImage, error) {
	var items []db.GalleryImage
	if err := s.db.Where("category = ?", category).
		Order(galleryListOrder).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Grouped maps category key to its ordered images. Categories without images
// are absent; the admin screen renders empty sections from the taxonomy.
func (s *GalleryService) Grouped() (map[string][]db.GalleryImage, error) {
	items, err := s.ListAll()
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]db.GalleryImage)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return grouped, nil
}

// FirstInCategory returns the first image of a category, which the site
// treats as authoritative for single-image slots even if duplicates exist.
func (s *GalleryService) FirstInCategory(category string) (*db.GalleryImage, error) {
	var item db.GalleryImage
	if err := s.db.Where("category = ?", category).
		Order(galleryListOrder).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Get fetches one catalog row.
func (s *GalleryService) Get(id uint) (*db.GalleryImage, error) {
	var item db.GalleryImage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new catalog row. When no display order is given, the
// next ordinal in the category is assigned inside the insert transaction so
// two concurrent creates cannot both read the same max.
func (s *GalleryService) Create(input GalleryInput) (*db.GalleryImage, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, ErrGalleryImageMissing
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = db.DefaultGalleryCategory
	}
	if !db.IsValidGalleryCategory(category) {
		return nil, fmt.Errorf("%w: %s", ErrGalleryCategoryInvalid, category)
	}

	rotation, err := normalizeRotation(input.Rotation)
	if err != nil {
		return nil, err
	}

	item := db.GalleryImage{
		Title:      strings.TrimSpace(input.Title),
		Caption:    strings.TrimSpace(input.Caption),
		ImageURL:   strings.TrimSpace(input.ImageURL),
		ThumbURL:   strings.TrimSpace(input.ThumbURL),
		Category:   category,
		Rotation:   rotation,
		IsFeatured: input.IsFeatured,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if input.DisplayOrder != nil {
			item.DisplayOrder = *input.DisplayOrder
		} else {
			next, err := nextDisplayOrder(tx, category)
			if err != nil {
				return err
			}
			item.DisplayOrder = next
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update patches only the provided fields.
func (s *GalleryService) Update(id uint, patch GalleryPatch) (*db.GalleryImage, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		item.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Caption != nil {
		item.Caption = strings.TrimSpace(*patch.Caption)
	}
	if patch.ImageURL != nil {
		trimmed := strings.TrimSpace(*patch.ImageURL)
		if trimmed == "" {
			return nil, ErrGalleryImageMissing
		}
		item.ImageURL = trimmed
	}
	if patch.Category != nil {
		category := strings.TrimSpace(*patch.Category)
		if !db.IsValidGalleryCategory(category) {
			return nil, fmt.Errorf("%w: %s", ErrGalleryCategoryInvalid, category)
		}
		item.Category = category
	}
	if patch.DisplayOrder != nil {
		item.DisplayOrder = *patch.DisplayOrder
	}
	if patch.Rotation != nil {
		rotation, err := normalizeRotation(*patch.Rotation)
		if err != nil {
			return nil, err
		}
		item.Rotation = rotation
	}
	if patch.IsFeatured != nil {
		item.IsFeatured = *patch.IsFeatured
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Rotate turns an image clockwise by 90 degrees. Rotation is a pure display
// value; the stored binary and its URL are never touched.
func (s *GalleryService) Rotate(id uint) (*db.GalleryImage, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	item.Rotation = (item.Rotation + 90) % 360
	if err := s.db.Model(item).Update("rotation", item.Rotation).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the catalog row, then best-effort deletes the stored
// binary and thumbnail. Storage failures are logged, never surfaced: the
// catalog row is already gone and the orphan is harmless.
func (s *GalleryService) Delete(ctx context.Context, id uint) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(&db.GalleryImage{}, id).Error; err != nil {
		return err
	}

	s.removeBinary(ctx, item.ImageURL)
	s.removeBinary(ctx, item.ThumbURL)
	return nil
}

func (s *GalleryService) removeBinary(ctx context.Context, rawURL string) {
	if s.store == nil || strings.TrimSpace(rawURL) == "" {
		return
	}
	key, ok := s.store.KeyForURL(rawURL)
	if !ok {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		log.Printf("gallery: failed to delete stored object %s: %v", key, err)
	}
}

// Reorder applies each (id, display_order) pair as an independent update.
// The batch is deliberately not one transaction; a pair that fails does not
// roll back the pairs before it.
func (s *GalleryService) Reorder(entries []ReorderEntry) error {
	var errs []error
	for _, entry := range entries {
		result := s.db.Model(&db.GalleryImage{}).
			Where("id = ?", entry.ID).
			Update("display_order", entry.DisplayOrder)
		if result.Error != nil {
			errs = append(errs, fmt.Errorf("image %d: %w", entry.ID, result.Error))
			continue
		}
		if result.RowsAffected == 0 {
			errs = append(errs, fmt.Errorf("image %d: %w", entry.ID, ErrGalleryNotFound))
		}
	}
	return errors.Join(errs...)
}

// Move splices the image to position (1-based) within its category and
// renumbers the whole category to a dense 1..N sequence, preserving the
// relative order of every other image.
func (s *GalleryService) Move(id uint, position int) ([]db.GalleryImage, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	items, err := s.ListByCategory(item.Category)
	if err != nil {
		return nil, err
	}

	from := -1
	for i := range items {
		if items[i].ID == id {
			from = i
			break
		}
	}
	if from < 0 {
		return nil, ErrGalleryNotFound
	}

	to := position - 1
	if to < 0 {
		to = 0
	}
	if to >= len(items) {
		to = len(items) - 1
	}

	moved := items[from]
	items = append(items[:from], items[from+1:]...)
	items = append(items[:to], append([]db.GalleryImage{moved}, items[to:]...)...)

	entries := make([]ReorderEntry, 0, len(items))
	for i := range items {
		items[i].DisplayOrder = i + 1
		entries = append(entries, ReorderEntry{ID: items[i].ID, DisplayOrder: items[i].DisplayOrder})
	}

	if err := s.Reorder(entries); err != nil {
		return nil, err
	}
	return items, nil
}

// SeedDefaults inserts the built-in default list for a category, assigning
// display order 1..N in list order. Failed entries are skipped and counted;
// seeding twice duplicates every row, matching the original site behaviour.
func (s *GalleryService) SeedDefaults(category string) (inserted, failed int, err error) {
	if !db.IsValidGalleryCategory(category) {
		return 0, 0, fmt.Errorf("%w: %s", ErrGalleryCategoryInvalid, category)
	}

	defaults, ok := defaultGalleryImages[category]
	if !ok {
		return 0, 0, ErrGalleryNoDefaults
	}

	for i, entry := range defaults {
		order := i + 1
		item := db.GalleryImage{
			Title:        entry.Title,
			ImageURL:     entry.ImageURL,
			Category:     category,
			DisplayOrder: order,
		}
		if createErr := s.db.Create(&item).Error; createErr != nil {
			log.Printf("gallery: seed %s #%d failed: %v", category, order, createErr)
			failed++
			continue
		}
		inserted++
	}
	return inserted, failed, nil
}

func nextDisplayOrder(tx *gorm.DB, category string) (int, error) {
	var maxOrder int
	if err := tx.Model(&db.GalleryImage{}).
		Where("category = ?", category).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&maxOrder).Error; err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}

func normalizeRotation(rotation int) (int, error) {
	normalized := ((rotation % 360) + 360) % 360
	switch normalized {
	case 0, 90, 180, 270:
		return normalized, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrGalleryRotationInvalid, rotation)
	}
}

type seedImage struct {
	Title    string
	ImageURL string
}

// Default images carried over from the original site.
var defaultGalleryImages = map[string][]seedImage{
	"lakes": {
		{Title: "Lake Scott", ImageURL: "https://i0.wp.com/kingsfamilylakes.com/wp-content/uploads/2021/10/IMG_4617.jpeg"},
		{Title: "Lake Shannon", ImageURL: "https://i0.wp.com/kingsfamilylakes.com/wp-content/uploads/2021/10/IMG_4628.jpeg"},
		{Title: "Lake Patrick", ImageURL: "https://i0.wp.com/kingsfamilylakes.com/wp-content/uploads/2021/10/IMG_4633.jpeg"},
		{Title: "Fishing Dock", ImageURL: "https://i0.wp.com/kingsfamilylakes.com/wp-content/uploads/2021/10/IMG_4635.jpeg"},
	},
	"deer-hunting": {
		{Title: "Hunting Grounds", ImageURL: "https://i0.wp.com/kingsfamilylakes.com/wp-content/uploads/2014/05/IMG_2289.jpg"},
		{Title: "Property View", ImageURL: "https://i0.wp.com/kingsfamilylakes.com/wp-content/uploads/2014/05/IMG_2294.jpg"},
	},
	"turkey-hunting": {
		{Title: "Turkey Hunting Area", ImageURL: "https://i0.wp.com/kingsfamilylakes.com/wp-content/uploads/2014/05/IMG_2294.jpg"},
		{Title: "Hunting Property", ImageURL: "https://i0.wp.com/kingsfamilylakes.com/wp-content/uploads/2014/05/IMG_2289.jpg"},
	},
	"fishing": {
		{Title: "Bass Fishing", ImageURL: "https://i0.wp.com/kingsfamilylakes.com/wp-content/uploads/2021/10/IMG_4635.jpeg"},
		{Title: "Lake View", ImageURL: "https://i0.wp.com/kingsfamilylakes.com/wp-content/uploads/2021/10/IMG_4617.jpeg"},
	},
}
