package models

import (
	"time"

	"github.com/avandyck/daypack/internal/sanitize"
)

// Expense is a single spend record.
type Expense struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	TraceDate string          `gorm:"column:trace_date;size:10;index" json:"traceDate"`
	Title     string          `gorm:"size:256;not null" json:"title"`
	Amount    float64         `gorm:"type:decimal(10,2)" json:"amount"`
	Category  ExpenseCategory `gorm:"size:16;default:Other" json:"category"`
	Date      string          `gorm:"size:10" json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (e *Expense) RecordID() string      { return e.ID }
func (e *Expense) SetRecordID(id string) { e.ID = id }
func (e *Expense) TraceDay() string      { return e.TraceDate }

// EnsureTrace backfills the trace date from the legacy date field.
func (e *Expense) EnsureTrace(today string) {
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
func (e *Expense) Clean() {
	e.Title = sanitize.Text(e.Title)
}
