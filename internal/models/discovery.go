package models

import (
	"time"

	"github.com/avandyck/daypack/internal/sanitize"
)

// Discovery is an article, tool, or repo worth keeping.
type Discovery struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	TraceDate   string    `gorm:"column:trace_date;size:10;index" json:"traceDate"`
	Title       string    `gorm:"size:256;not null" json:"title"`
	URL         string    `gorm:"column:url;size:512" json:"url"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:32" json:"category"`
	Impact      Impact    `gorm:"size:16;default:Linear" json:"impact"`
	Pinned      bool      `gorm:"default:false" json:"pinned"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (d *Discovery) RecordID() string      { return d.ID }
func (d *Discovery) SetRecordID(id string) { d.ID = id }
func (d *Discovery) TraceDay() string      { return d.TraceDate }

// EnsureTrace backfills the trace date, defaulting to today.
func (d *Discovery) EnsureTrace(today string) {
	if d.TraceDate == "" {
		d.TraceDate = today
	}
}

// Clean sanitizes free-text and URL fields in place.
func (d *Discovery) Clean() {
	d.Title = sanitize.Text(d.Title)
	d.Description = sanitize.Text(d.Description)
	d.Category = sanitize.Text(d.Category)
	d.URL = sanitize.URL(d.URL)
}
