package brew

import (
	"time"

	"github.com/tomplanche/vps-back/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordDownload counts one download of the (project, version, platform)
// triple and returns the resulting total.
//
// The increment is a single database-level upsert: insert with count=1, or
// bump the existing row on conflict with the unique triple index. Concurrent
// observations of the same triple therefore never lose updates, which a
// read-then-write through the ORM would not guarantee.
func RecordDownload(db *gorm.DB, projectName, version, platform string) (int64, error) {
	row := &models.BrewDownload{
		Project:  projectName,
		Version:  version,
		Platform: platform,
		Count:    1,
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "project"},
			{Name: "version"},
			{Name: "platform"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":      gorm.Expr("count + ?", 1),
			"updated_at": time.Now().UTC(),
		}),
	}).Create(row).Error
	if err != nil {
		return 0, err
	}

	var current models.BrewDownload
	err = db.Where("project = ? AND version = ? AND platform = ?", projectName, version, platform).
		First(&current).Error
	if err != nil {
		return 0, err
	}

	return current.Count, nil
}

// ProjectStats is the aggregated download count for one project, summed over
// all versions and platforms, plus a per-version breakdown.
type ProjectStats struct {
	Total    int64
	Versions map[string]int64
}

// Aggregate folds download rows into per-project stats. Platforms collapse
// into their version's count.
func Aggregate(rows []models.BrewDownload) map[string]ProjectStats {
	stats := make(map[string]ProjectStats)

	for _, row := range rows {
		entry, exists := stats[row.Project]
		if !exists {
			entry = ProjectStats{Versions: make(map[string]int64)}
		}
		entry.Total += row.Count
		entry.Versions[row.Version] += row.Count
		stats[row.Project] = entry
	}

	return stats
}
