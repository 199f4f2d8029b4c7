package models

import (
	"time"

	"github.com/avandyck/daypack/internal/sanitize"
)

// Idea is a captured thought awaiting triage in the inbox.
type Idea struct {
	ID        string       `gorm:"primaryKey;size:36" json:"id"`
	TraceDate string       `gorm:"column:trace_date;size:10;index" json:"traceDate"`
	Thought   string       `gorm:"type:text;not null" json:"thought"`
	Category  IdeaCategory `gorm:"size:16" json:"category"`
	Urgency   Urgency      `gorm:"size:8;default:Medium" json:"urgency"`
	Status    IdeaStatus   `gorm:"size:16;default:Inbox;index" json:"status"`
	Platform  string       `gorm:"size:32" json:"platform,omitempty"` // content ideas only
	Executed  bool         `gorm:"default:false" json:"executed"`
	Pinned    bool         `gorm:"default:false" json:"pinned"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (i *Idea) RecordID() string      { return i.ID }
func (i *Idea) SetRecordID(id string) { i.ID = id }
func (i *Idea) TraceDay() string      { return i.TraceDate }

// EnsureTrace backfills the trace date, defaulting to today.
func (i *Idea) EnsureTrace(today string) {
	if i.TraceDate == "" {
		i.TraceDate = today
	}
}

// Clean sanitizes free-text fields in place.
func (i *Idea) Clean() {
	i.Thought = sanitize.Text(i.Thought)
	i.Platform = sanitize.Text(i.Platform)
}
