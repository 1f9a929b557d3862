package service

import (
	"errors"
	"testing"

	"github.com/lakelodge/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPageTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&db.PageContent{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestPageSaveCreatesThenUpdates(t *testing.T) {
	gdb, cleanup := setupPageTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)

	created, err := svc.Save("home", PageInput{HeroTitle: "Welcome", Body: "# Hello"})
	if err != nil {
		t.Fatalf("failed to save new page: %v", err)
	}
	if created.ID == 0 || created.Slug != "home" {
		t.Fatalf("unexpected created page: %+v", created)
	}

	updated, err := svc.Save("home", PageInput{HeroTitle: "Welcome Back", Body: "# Hello again"})
	if err != nil {
		t.Fatalf("failed to update page: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected update in place, got new id %d", updated.ID)
	}
	if updated.HeroTitle != "Welcome Back" {
		t.Fatalf("expected updated hero title, got %q", updated.HeroTitle)
	}

	pages, err := svc.List()
	if err != nil {
		t.Fatalf("failed to list pages: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected one page row, got %d", len(pages))
	}
}

func TestPageSaveRequiresSlug(t *testing.T) {
	gdb, cleanup := setupPageTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	if _, err := svc.Save("   ", PageInput{HeroTitle: "x"}); !errors.Is(err, ErrPageSlugMissing) {
		t.Fatalf("expected ErrPageSlugMissing, got %v", err)
	}
}

func TestPageGetBySlugNotFound(t *testing.T) {
	gdb, cleanup := setupPageTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	if _, err := svc.GetBySlug("missing"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}
