package models

import (
	"time"

	"github.com/avandyck/daypack/internal/sanitize"
)

// DecisionGate is a pending decision and, once made, its outcome.
type DecisionGate struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	TraceDate string     `gorm:"column:trace_date;size:10;index" json:"traceDate"`
	Decision  string     `gorm:"type:text;not null" json:"decision"`
	Outcome   string     `gorm:"type:text" json:"outcome"`
	Status    GateStatus `gorm:"size:8;default:Pending" json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (g *DecisionGate) RecordID() string      { return g.ID }
func (g *DecisionGate) SetRecordID(id string) { g.ID = id }
func (g *DecisionGate) TraceDay() string      { return g.TraceDate }

// EnsureTrace backfills the trace date, defaulting to today.
func (g *DecisionGate) EnsureTrace(today string) {
	if g.TraceDate == "" {
		g.TraceDate = today
	}
}

// Clean sanitizes free-text fields in place.
func (g *DecisionGate) Clean() {
	g.Decision = sanitize.Text(g.Decision)
	g.Outcome = sanitize.Text(g.Outcome)
}
