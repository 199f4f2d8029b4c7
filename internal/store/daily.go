package store

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/avandyck/daypack/internal/models"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// The daily_entries table is mid-migration on some backends: the pinned and
// position columns may not exist yet. Writes attempt the full schema first
// and retry once with the legacy column set when the backend rejects a
// missing column.
// TODO: drop the legacy retry once every backend has the migrated table.

// legacyDailyColumns is the pre-migration column set.
var legacyDailyColumns = []string{"id", "trace_date", "date", "worked_on", "shipped", "created_at", "updated_at"}

// mysqlErrBadField is the server error for a column the table doesn't have.
const mysqlErrBadField = 1054

// isMissingColumn reports whether err is a schema mismatch worth retrying
// with the legacy column set. SQLite phrases it differently than MySQL.
func isMissingColumn(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlErrBadField
	}
	return strings.Contains(err.Error(), "no such column") ||
		strings.Contains(err.Error(), "has no column")
}

// insertDailyEntry inserts a daily entry, falling back to the legacy schema
// when the full insert hits a missing column.
func insertDailyEntry(ctx context.Context, db *gorm.DB, e *models.DailyEntry) error {
	err := db.WithContext(ctx).Create(e).Error
	if err == nil || !isMissingColumn(err) {
		return err
	}
	log.Printf("store: daily entry insert failed, retrying with legacy schema: %v", err)
	return db.WithContext(ctx).Select(legacyDailyColumns).Create(e).Error
}

// updateDailyEntry replaces a daily entry, falling back to the legacy schema
// when the full update hits a missing column.
func updateDailyEntry(ctx context.Context, db *gorm.DB, e *models.DailyEntry) error {
	err := db.WithContext(ctx).Save(e).Error
	if err == nil || !isMissingColumn(err) {
		return err
	}
	log.Printf("store: daily entry update failed, retrying with legacy schema: %v", err)
	return db.WithContext(ctx).Model(e).Select(legacyDailyColumns).Updates(e).Error
}
