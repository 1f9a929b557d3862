package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lakelodge/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteSettings is the typed view of the site_settings key/value table. It is
// read by nearly every public page for contact details, rates and branding.
type SiteSettings struct {
	SiteName          string  `json:"site_name"`
	Tagline           string  `json:"tagline"`
	Phone             string  `json:"phone"`
	Email             string  `json:"email"`
	AddressCity       string  `json:"address_city"`
	AddressState      string  `json:"address_state"`
	AddressDirections string  `json:"address_directions"`
	FacebookURL       string  `json:"facebook_url"`
	HuntingDailyRate  float64 `json:"hunting_daily_rate"`
	LodgingNightRate  float64 `json:"lodging_nightly_rate"`
	AdSenseClientID   string  `json:"adsense_client_id"`
}

// SiteSettingService reads and updates the site settings.
type SiteSettingService struct {
	db *gorm.DB
}

// NewSiteSettingService constructs a SiteSettingService.
func NewSiteSettingService(gdb *gorm.DB) *SiteSettingService {
	return &SiteSettingService{db: gdb}
}

var siteSettingKeys = []string{
	db.SettingKeySiteName,
	db.SettingKeyTagline,
	db.SettingKeyPhone,
	db.SettingKeyEmail,
	db.SettingKeyAddressCity,
	db.SettingKeyAddressState,
	db.SettingKeyAddressDirections,
	db.SettingKeyFacebookURL,
	db.SettingKeyHuntingDailyRate,
	db.SettingKeyLodgingNightRate,
	db.SettingKeyAdSenseClientID,
}

// GetSettings reads the settings, falling back to branded defaults for
// anything unset.
func (s *SiteSettingService) GetSettings() (SiteSettings, error) {
	result := defaultSiteSettings()

	var records []db.SiteSetting
	if err := s.db.Where("key IN ?", siteSettingKeys).Find(&records).Error; err != nil {
		return result, fmt.Errorf("load site settings: %w", err)
	}

	for _, record := range records {
		value := record.Value
		if strings.TrimSpace(value) == "" {
			continue
		}
		switch record.Key {
		case db.SettingKeySiteName:
			result.SiteName = value
		case db.SettingKeyTagline:
			result.Tagline = value
		case db.SettingKeyPhone:
			result.Phone = value
		case db.SettingKeyEmail:
			result.Email = value
		case db.SettingKeyAddressCity:
			result.AddressCity = value
		case db.SettingKeyAddressState:
			result.AddressState = value
		case db.SettingKeyAddressDirections:
			result.AddressDirections = value
		case db.SettingKeyFacebookURL:
			result.FacebookURL = value
		case db.SettingKeyHuntingDailyRate:
			if rate, err := strconv.ParseFloat(value, 64); err == nil {
				result.HuntingDailyRate = rate
			}
		case db.SettingKeyLodgingNightRate:
			if rate, err := strconv.ParseFloat(value, 64); err == nil {
				result.LodgingNightRate = rate
			}
		case db.SettingKeyAdSenseClientID:
			result.AdSenseClientID = value
		}
	}

	return result, nil
}

// UpdateSettings saves the settings in one transaction. An empty site name
// falls back to the default brand.
func (s *SiteSettingService) UpdateSettings(input SiteSettings) (SiteSettings, error) {
	sanitized := SiteSettings{
		SiteName:          strings.TrimSpace(input.SiteName),
		Tagline:           strings.TrimSpace(input.Tagline),
		Phone:             strings.TrimSpace(input.Phone),
		Email:             strings.TrimSpace(input.Email),
		AddressCity:       strings.TrimSpace(input.AddressCity),
		AddressState:      strings.TrimSpace(input.AddressState),
		AddressDirections: strings.TrimSpace(input.AddressDirections),
		FacebookURL:       strings.TrimSpace(input.FacebookURL),
		HuntingDailyRate:  input.HuntingDailyRate,
		LodgingNightRate:  input.LodgingNightRate,
		AdSenseClientID:   strings.TrimSpace(input.AdSenseClientID),
	}
	if sanitized.SiteName == "" {
		sanitized.SiteName = defaultSiteSettings().SiteName
	}

	values := map[string]string{
		db.SettingKeySiteName:          sanitized.SiteName,
		db.SettingKeyTagline:           sanitized.Tagline,
		db.SettingKeyPhone:             sanitized.Phone,
		db.SettingKeyEmail:             sanitized.Email,
		db.SettingKeyAddressCity:       sanitized.AddressCity,
		db.SettingKeyAddressState:      sanitized.AddressState,
		db.SettingKeyAddressDirections: sanitized.AddressDirections,
		db.SettingKeyFacebookURL:       sanitized.FacebookURL,
		db.SettingKeyHuntingDailyRate:  strconv.FormatFloat(sanitized.HuntingDailyRate, 'f', -1, 64),
		db.SettingKeyLodgingNightRate:  strconv.FormatFloat(sanitized.LodgingNightRate, 'f', -1, 64),
		db.SettingKeyAdSenseClientID:   sanitized.AdSenseClientID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, key := range siteSettingKeys {
			if err := upsertSetting(tx, key, values[key]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return SiteSettings{}, fmt.Errorf("update site settings: %w", err)
	}

	return sanitized, nil
}

func upsertSetting(tx *gorm.DB, key, value string) error {
	setting := db.SiteSetting{Key: key, Value: value}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}

func defaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:         "King's Family Lakes",
		Tagline:          "Hunting, fishing and lodging in the heart of the South",
		HuntingDailyRate: 150,
		LodgingNightRate: 100,
	}
}
