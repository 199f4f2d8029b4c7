package models

import (
	"time"

	"github.com/avandyck/daypack/internal/sanitize"
	"gorm.io/gorm"
)

// Todo is an actionable task. Status is the single source of truth for
// completion; the Completed column is kept in sync for backend compatibility
// and must never be written independently.
type Todo struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	TraceDate   string     `gorm:"column:trace_date;size:10;index" json:"traceDate"`
	Title       string     `gorm:"not null" json:"title"`
	Details     string     `gorm:"type:text" json:"details"`
	Deadline    string     `gorm:"size:10" json:"deadline"`
	Priority    Priority   `gorm:"size:8;default:Medium" json:"priority"`
	Status      TodoStatus `gorm:"size:16;default:Pending;index" json:"status"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt string     `gorm:"column:completed_at;size:32" json:"completedAt,omitempty"`
	TimeSlot    string     `gorm:"column:time_slot;size:16" json:"timeSlot,omitempty"`
	TargetTime  string     `gorm:"column:target_time;size:16" json:"targetTime,omitempty"`
	Pinned      bool       `gorm:"default:false" json:"pinned"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (t *Todo) RecordID() string      { return t.ID }
func (t *Todo) SetRecordID(id string) { t.ID = id }
func (t *Todo) TraceDay() string      { return t.TraceDate }

// EnsureTrace backfills the trace date, defaulting to today.
func (t *Todo) EnsureTrace(today string) {
	if t.TraceDate == "" {
		t.TraceDate = today
	}
}

// Clean sanitizes free-text fields in place.
func (t *Todo) Clean() {
	t.Title = sanitize.Text(t.Title)
	t.Details = sanitize.Text(t.Details)
}

// SetStatus moves the todo to the given status, maintaining the derived
// Completed flag and the CompletedAt timestamp: set on entry to Completed,
// cleared on exit. Any transition between states is allowed.
func (t *Todo) SetStatus(status TodoStatus, now time.Time) {
	entering := status == TodoStatusCompleted && t.Status != TodoStatusCompleted
	leaving := status != TodoStatusCompleted && t.Status == TodoStatusCompleted

	t.Status = status
	t.Completed = status == TodoStatusCompleted
	if entering {
		t.CompletedAt = now.Format(time.RFC3339)
	}
	if leaving {
		t.CompletedAt = ""
	}
}

// ToggleComplete flips between Completed and Pending.
func (t *Todo) ToggleComplete(now time.Time) {
	if t.Status == TodoStatusCompleted {
		t.SetStatus(TodoStatusPending, now)
	} else {
		t.SetStatus(TodoStatusCompleted, now)
	}
}

// BeforeSave keeps the persisted Completed column consistent with Status,
// whatever path the record arrived by.
func (t *Todo) BeforeSave(tx *gorm.DB) error {
	t.Completed = t.Status == TodoStatusCompleted
	if !t.Completed {
		t.CompletedAt = ""
	}
	return nil
}
