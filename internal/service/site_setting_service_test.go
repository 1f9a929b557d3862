package service

import (
	"testing"

	"github.com/lakelodge/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSettingTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&db.SiteSetting{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestSiteSettingsDefaults(t *testing.T) {
	gdb, cleanup := setupSettingTestDB(t)
	defer cleanup()

	svc := NewSiteSettingService(gdb)
	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("failed to read settings: %v", err)
	}
	if settings.SiteName != "King's Family Lakes" {
		t.Fatalf("expected branded default name, got %q", settings.SiteName)
	}
	if settings.HuntingDailyRate != 150 || settings.LodgingNightRate != 100 {
		t.Fatalf("expected default rates, got %+v", settings)
	}
}

func TestSiteSettingsRoundTrip(t *testing.T) {
	gdb, cleanup := setupSettingTestDB(t)
	defer cleanup()

	svc := NewSiteSettingService(gdb)

	saved, err := svc.UpdateSettings(SiteSettings{
		SiteName:         "King's Family Lakes",
		Phone:            "555-0100",
		Email:            "bookings@example.com",
		AddressCity:      "Magnolia",
		AddressState:     "MS",
		HuntingDailyRate: 175.5,
		LodgingNightRate: 110,
	})
	if err != nil {
		t.Fatalf("failed to update settings: %v", err)
	}
	if saved.Phone != "555-0100" {
		t.Fatalf("unexpected saved settings: %+v", saved)
	}

	loaded, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("failed to reload settings: %v", err)
	}
	if loaded.Phone != "555-0100" || loaded.AddressCity != "Magnolia" {
		t.Fatalf("expected persisted values, got %+v", loaded)
	}
	if loaded.HuntingDailyRate != 175.5 {
		t.Fatalf("expected rate to round-trip, got %v", loaded.HuntingDailyRate)
	}

	// Updating twice overwrites instead of duplicating rows.
	if _, err := svc.UpdateSettings(SiteSettings{SiteName: "King's Family Lakes", Phone: "555-0199"}); err != nil {
		t.Fatalf("failed second update: %v", err)
	}
	var count int64
	gdb.Model(&db.SiteSetting{}).Where("key = ?", db.SettingKeyPhone).Count(&count)
	if count != 1 {
		t.Fatalf("expected one row per key, got %d", count)
	}

	loaded, _ = svc.GetSettings()
	if loaded.Phone != "555-0199" {
		t.Fatalf("expected overwritten phone, got %q", loaded.Phone)
	}
}

func TestSiteSettingsEmptyNameFallsBack(t *testing.T) {
	gdb, cleanup := setupSettingTestDB(t)
	defer cleanup()

	svc := NewSiteSettingService(gdb)
	saved, err := svc.UpdateSettings(SiteSettings{SiteName: "   "})
	if err != nil {
		t.Fatalf("failed to update settings: %v", err)
	}
	if saved.SiteName != "King's Family Lakes" {
		t.Fatalf("expected fallback site name, got %q", saved.SiteName)
	}
}
