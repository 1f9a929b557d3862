package service

import (
	"errors"
	"strings"

	"github.com/lakelodge/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound    = errors.New("page not found")
	ErrPageSlugMissing = errors.New("page slug is required")
)

// PageService provides per-slug page content for the public pages and the
// admin editor.
type PageService struct {
	db *gorm.DB
}

// PageInput carries the editable fields of one page.
type PageInput struct {
	HeroTitle      string
	HeroSubtitle   string
	HeroImageURL   string
	HeroVideoURL   string
	Body           string
	SEOTitle       string
	SEODescription string
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// List returns all pages ordered by slug.
func (s *PageService) List() ([]db.PageContent, error) {
	var pages []db.PageContent
	if err := s.db.Order("slug asc").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// GetBySlug fetches a page for a given slug.
func (s *PageService) GetBySlug(slug string) (*db.PageContent, error) {
	var page db.PageContent
	if err := s.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// Save creates or replaces the content for a slug (read-modify-write, the
// admin screen always submits the full record).
func (s *PageService) Save(slug string, input PageInput) (*db.PageContent, error) {
	trimmedSlug := strings.TrimSpace(slug)
	if trimmedSlug == "" {
		return nil, ErrPageSlugMissing
	}

	var page db.PageContent
	err := s.db.Where("slug = ?", trimmedSlug).First(&page).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	page.Slug = trimmedSlug
	page.HeroTitle = strings.TrimSpace(input.HeroTitle)
	page.HeroSubtitle = strings.TrimSpace(input.HeroSubtitle)
	page.HeroImageURL = strings.TrimSpace(input.HeroImageURL)
	page.HeroVideoURL = strings.TrimSpace(input.HeroVideoURL)
	page.Body = input.Body
	page.SEOTitle = strings.TrimSpace(input.SEOTitle)
	page.SEODescription = strings.TrimSpace(input.SEODescription)

	if page.ID == 0 {
		if err := s.db.Create(&page).Error; err != nil {
			return nil, err
		}
		return &page, nil
	}

	if err := s.db.Save(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}
