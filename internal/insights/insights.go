// Package insights derives a fixed set of named metrics from the full entity
// history, plus threshold-triggered "gaps" (warnings) and "wins" (praise).
// All thresholds are fixed literals; the arithmetic is single-pass scans.
package insights

import (
	"fmt"
	"time"

	"github.com/avandyck/daypack/internal/dates"
	"github.com/avandyck/daypack/internal/models"
)

// systemStart is the date tracking began; older records are ignored.
const systemStart = "2025-01-01"

// consistencyWindow is the trailing window for consistency and completion
// rates, in days.
const consistencyWindow = 30

// Data is the full entity history the metrics are computed from.
type Data struct {
	Dailies     []models.DailyEntry
	Todos       []models.Todo
	Ideas       []models.Idea
	Outcomes    []models.WeeklyOutcome
	Gates       []models.DecisionGate
	Contacts    []models.Contact
	Discoveries []models.Discovery
	Expenses    []models.Expense
}

// Report is the computed metric set. It doubles as the export schema.
type Report struct {
	GeneratedAt        string             `json:"generatedAt"`
	Streak             int                `json:"streak"`
	ConsistencyPercent float64            `json:"consistencyPercent"`
	TaskCompletionRate float64            `json:"taskCompletionRate"`
	IdeaExecutionRate  float64            `json:"ideaExecutionRate"`
	OutcomeSuccessRate float64            `json:"outcomeSuccessRate"`
	OverdueTasks       int                `json:"overdueTasks"`
	PendingGates       int                `json:"pendingGates"`
	IdeasByCategory    map[string]int     `json:"ideasByCategory"`
	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
	Gaps               []string           `json:"gaps"`
	Wins               []string           `json:"wins"`
}

// Compute derives the report for the given local date.
func Compute(d Data, today time.Time) Report {
	r := Report{
		GeneratedAt:        dates.LocalDate(today),
		IdeasByCategory:    map[string]int{},
		ExpensesByCategory: map[string]float64{},
		Gaps:               []string{},
		Wins:               []string{},
	}

	todayStr := dates.LocalDate(today)
	windowStart := dates.LocalDate(today.AddDate(0, 0, -(consistencyWindow - 1)))

	// Distinct logged days since the system start.
	logged := map[string]bool{}
	for _, e := range d.Dailies {
		if e.TraceDate >= systemStart {
			logged[e.TraceDate] = true
		}
	}

	// Streak: consecutive days ending today, no gaps allowed.
	for day := today; logged[dates.LocalDate(day)]; day = day.AddDate(0, 0, -1) {
		r.Streak++
	}

	// Consistency: days logged in the trailing window over window length.
	daysLogged := 0
	for day := range logged {
		if day >= windowStart && day <= todayStr {
			daysLogged++
		}
	}
	r.ConsistencyPercent = ratio(daysLogged, consistencyWindow)

	// Task completion over the trailing window, plus overdue count.
	var windowTodos, windowDone int
	for _, t := range d.Todos {
		if t.TraceDate < systemStart {
			continue
		}
		if t.TraceDate >= windowStart {
			windowTodos++
			if t.Status == models.TodoStatusCompleted {
				windowDone++
			}
		}
		if t.Deadline != "" && t.Deadline < todayStr && t.Status != models.TodoStatusCompleted {
			r.OverdueTasks++
		}
	}
	r.TaskCompletionRate = ratio(windowDone, windowTodos)

	// Idea execution rate and category counts over the full history.
	var ideas, executed int
	for _, i := range d.Ideas {
		if i.TraceDate < systemStart {
			continue
		}
		ideas++
		if i.Executed {
			executed++
		}
		r.IdeasByCategory[string(i.Category)]++
	}
	r.IdeaExecutionRate = ratio(executed, ideas)

	// Weekly outcome success rate; Status is the single representation.
	var outcomes, successful int
	for _, o := range d.Outcomes {
		if o.TraceDate < systemStart {
			continue
		}
		outcomes++
		if o.Status == models.OutcomeSuccessful {
			successful++
		}
	}
	r.OutcomeSuccessRate = ratio(successful, outcomes)

	for _, g := range d.Gates {
		if g.Status == models.GateStatusPending {
			r.PendingGates++
		}
	}

	for _, e := range d.Expenses {
		if e.TraceDate >= systemStart {
			r.ExpensesByCategory[string(e.Category)] += e.Amount
		}
	}

	r.Gaps = gaps(r)
	r.Wins = wins(r)
	return r
}

// gaps returns threshold-triggered warning strings.
func gaps(r Report) []string {
	out := []string{}
	if r.OverdueTasks > 0 {
		out = append(out, fmt.Sprintf("%d overdue task(s) need attention", r.OverdueTasks))
	}
	if r.Streak == 0 {
		out = append(out, "logging streak is broken: no entry today")
	}
	if r.ConsistencyPercent < 50 {
		out = append(out, fmt.Sprintf("logged only %.0f%% of the last %d days", r.ConsistencyPercent, consistencyWindow))
	}
	if r.PendingGates > 3 {
		out = append(out, fmt.Sprintf("%d decisions are waiting on you", r.PendingGates))
	}
	return out
}

// wins returns threshold-triggered praise strings.
func wins(r Report) []string {
	out := []string{}
	if r.Streak >= 7 {
		out = append(out, fmt.Sprintf("%d-day logging streak", r.Streak))
	}
	if r.TaskCompletionRate >= 80 {
		out = append(out, fmt.Sprintf("%.0f%% task completion in the last %d days", r.TaskCompletionRate, consistencyWindow))
	}
	if r.IdeaExecutionRate >= 50 {
		out = append(out, fmt.Sprintf("%.0f%% of ideas executed", r.IdeaExecutionRate))
	}
	if r.OutcomeSuccessRate >= 75 {
		out = append(out, fmt.Sprintf("%.0f%% of weekly outcomes hit", r.OutcomeSuccessRate))
	}
	return out
}

// ratio returns num/den as a percentage, 0 when the denominator is 0.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}
