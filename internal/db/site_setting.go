package db

import "gorm.io/gorm"

// SiteSetting stores one admin-editable site-wide key/value pair.
type SiteSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName keeps the table name stable.
func (SiteSetting) TableName() string {
	return "site_settings"
}

const (
	SettingKeySiteName          = "site_name"
	SettingKeyTagline           = "tagline"
	SettingKeyPhone             = "phone"
	SettingKeyEmail             = "email"
	SettingKeyAddressCity       = "address_city"
	SettingKeyAddressState      = "address_state"
	SettingKeyAddressDirections = "address_directions"
	SettingKeyFacebookURL       = "facebook_url"
	SettingKeyHuntingDailyRate  = "hunting_daily_rate"
	SettingKeyLodgingNightRate  = "lodging_nightly_rate"
	SettingKeyAdSenseClientID   = "adsense_client_id"
)
