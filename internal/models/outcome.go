package models

import (
	"time"

	"github.com/avandyck/daypack/internal/sanitize"
)

// WeeklyOutcome records what a week was meant to build, ship, and teach,
// graded by Status once the week closes.
type WeeklyOutcome struct {
	ID           string        `gorm:"primaryKey;size:36" json:"id"`
	TraceDate    string        `gorm:"column:trace_date;size:10;index" json:"traceDate"`
	WeekStarting string        `gorm:"column:week_starting;size:10" json:"weekStarting"`
	Build        string        `gorm:"type:text" json:"build"`
	Ship         string        `gorm:"type:text" json:"ship"`
	Learn        string        `gorm:"type:text" json:"learn"`
	Status       OutcomeStatus `gorm:"size:16" json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (o *WeeklyOutcome) RecordID() string      { return o.ID }
func (o *WeeklyOutcome) SetRecordID(id string) { o.ID = id }
func (o *WeeklyOutcome) TraceDay() string      { return o.TraceDate }

// EnsureTrace backfills the trace date from the week-starting date.
func (o *WeeklyOutcome) EnsureTrace(today string) {
	if o.TraceDate == "" {
		o.TraceDate = o.WeekStarting
	}
	if o.TraceDate == "" {
		o.TraceDate = today
	}
}

// Clean sanitizes free-text fields in place.
func (o *WeeklyOutcome) Clean() {
	o.Build = sanitize.Text(o.Build)
	o.Ship = sanitize.Text(o.Ship)
	o.Learn = sanitize.Text(o.Learn)
}
