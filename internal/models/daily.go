package models

import (
	"time"

	"github.com/avandyck/daypack/internal/sanitize"
)

// DailyEntry is one day's log of what was worked on and shipped.
type DailyEntry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	TraceDate string    `gorm:"column:trace_date;size:10;index" json:"traceDate"`
	Date      string    `gorm:"size:10" json:"date"`
	WorkedOn  string    `gorm:"column:worked_on;type:text" json:"workedOn"`
	Shipped   string    `gorm:"type:text" json:"shipped"`
	Pinned    bool      `gorm:"default:false" json:"pinned"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e *DailyEntry) RecordID() string      { return e.ID }
func (e *DailyEntry) SetRecordID(id string) { e.ID = id }
func (e *DailyEntry) TraceDay() string      { return e.TraceDate }

// EnsureTrace backfills the trace date from the legacy date field, falling
// back to today when both are absent.
func (e *DailyEntry) EnsureTrace(today string) {
	if e.TraceDate == "" {
		e.TraceDate = e.Date
	}
	if e.TraceDate == "" {
		e.TraceDate = today
	}
	if e.Date == "" {
		e.Date = e.TraceDate
	}
}

// Clean sanitizes free-text fields in place.
func (e *DailyEntry) Clean() {
	e.WorkedOn = sanitize.Text(e.WorkedOn)
	e.Shipped = sanitize.Text(e.Shipped)
}
