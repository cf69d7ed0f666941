package brew

import (
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/tomplanche/vps-back/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A single connection keeps every goroutine on the same in-memory
	// database and serialises writers the way Postgres row locking would.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func TestRecordDownloadCreatesFirstRecord(t *testing.T) {
	db := newTestDB(t)

	count, err := RecordDownload(db, "rona", "2.17.7", "arm64_sequoia")
	if err != nil {
		t.Fatalf("RecordDownload failed: %v", err)
	}
	if count != 1 {
		t.Errorf("first download count = %d, want 1", count)
	}

	var rows int64
	if err := db.Model(&models.BrewDownload{}).Count(&rows).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("expected exactly 1 record, got %d", rows)
	}
}

func TestRecordDownloadSequentialIncrements(t *testing.T) {
	db := newTestDB(t)

	for want := int64(1); want <= 3; want++ {
		count, err := RecordDownload(db, "rona", "2.17.7", "arm64_sequoia")
		if err != nil {
			t.Fatalf("RecordDownload failed: %v", err)
		}
		if count != want {
			t.Errorf("download %d count = %d, want %d", want, count, want)
		}
	}
}

func TestRecordDownloadDistinctTriples(t *testing.T) {
	db := newTestDB(t)

	triples := [][3]string{
		{"rona", "2.17.7", "arm64_sequoia"},
		{"rona", "2.17.7", "ventura"},
		{"rona", "2.17.8", "arm64_sequoia"},
		{"clean-dev-dirs", "2.17.7", "arm64_sequoia"},
	}

	for _, triple := range triples {
		count, err := RecordDownload(db, triple[0], triple[1], triple[2])
		if err != nil {
			t.Fatalf("RecordDownload(%v) failed: %v", triple, err)
		}
		if count != 1 {
			t.Errorf("RecordDownload(%v) count = %d, want 1", triple, count)
		}
	}

	var rows int64
	if err := db.Model(&models.BrewDownload{}).Count(&rows).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if rows != int64(len(triples)) {
		t.Errorf("expected %d records, got %d", len(triples), rows)
	}
}

func TestRecordDownloadConcurrentNoLostUpdates(t *testing.T) {
	db := newTestDB(t)

	const workers = 20

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := RecordDownload(db, "rona", "2.17.7", "arm64_sequoia"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent RecordDownload failed: %v", err)
	}

	var row models.BrewDownload
	err := db.Where("project = ? AND version = ? AND platform = ?", "rona", "2.17.7", "arm64_sequoia").
		First(&row).Error
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if row.Count != workers {
		t.Errorf("final count = %d, want %d (lost updates)", row.Count, workers)
	}
}
