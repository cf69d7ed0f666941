package models

import "time"

// BrewDownload counts Homebrew bottle downloads. Exactly one row exists per
// (project, version, platform) triple, enforced by the composite unique index.
type BrewDownload struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Project   string    `gorm:"size:100;not null;uniqueIndex:idx_brew_downloads_unique;index:idx_brew_downloads_project" json:"project"`
	Version   string    `gorm:"size:100;not null;uniqueIndex:idx_brew_downloads_unique" json:"version"`
	Platform  string    `gorm:"size:100;not null;uniqueIndex:idx_brew_downloads_unique" json:"platform"`
	Count     int64     `gorm:"not null;default:0" json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BrewDownload) TableName() string {
	return "brew_downloads"
}
