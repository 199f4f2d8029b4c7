package dashboard

import (
	"sort"

	"github.com/avandyck/daypack/internal/dates"
	"github.com/avandyck/daypack/internal/models"
)

// TodoGroups is the task list projection: pinned, then overdue, then due
// today, then future, then completed ordered by completion date.
type TodoGroups struct {
	Pinned    []models.Todo `json:"pinned"`
	Overdue   []models.Todo `json:"overdue"`
	Today     []models.Todo `json:"today"`
	Future    []models.Todo `json:"future"`
	Completed []models.Todo `json:"completed"`
}

// GroupTodos splits todos into the task view's display groups for the given
// local date.
func GroupTodos(todos []models.Todo, today string) TodoGroups {
	g := TodoGroups{
		Pinned:    []models.Todo{},
		Overdue:   []models.Todo{},
		Today:     []models.Todo{},
		Future:    []models.Todo{},
		Completed: []models.Todo{},
	}
	for _, t := range todos {
		switch {
		case t.Status == models.TodoStatusCompleted:
			g.Completed = append(g.Completed, t)
		case t.Pinned:
			g.Pinned = append(g.Pinned, t)
		case t.Deadline != "" && t.Deadline < today:
			g.Overdue = append(g.Overdue, t)
		case t.Deadline == today:
			g.Today = append(g.Today, t)
		default:
			g.Future = append(g.Future, t)
		}
	}

	byUrgency := func(list []models.Todo) {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Priority.Rank() != list[j].Priority.Rank() {
				return list[i].Priority.Rank() < list[j].Priority.Rank()
			}
			return list[i].Deadline < list[j].Deadline
		})
	}
	byUrgency(g.Pinned)
	byUrgency(g.Overdue)
	byUrgency(g.Today)
	byUrgency(g.Future)

	sort.SliceStable(g.Completed, func(i, j int) bool {
		return g.Completed[i].CompletedAt > g.Completed[j].CompletedAt
	})
	return g
}

// SortIdeas orders the inbox: executed ideas last, pinned first within the
// same executed state, newest trace date first within the same pinned state.
func SortIdeas(ideas []models.Idea) []models.Idea {
	out := make([]models.Idea, len(ideas))
	copy(out, ideas)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Executed != out[j].Executed {
			return !out[i].Executed
		}
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].TraceDate > out[j].TraceDate
	})
	return out
}

// SortDiscoveries orders discoveries pinned first, then newest first, then
// by impact.
func SortDiscoveries(discoveries []models.Discovery) []models.Discovery {
	out := make([]models.Discovery, len(discoveries))
	copy(out, discoveries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		if out[i].TraceDate != out[j].TraceDate {
			return out[i].TraceDate > out[j].TraceDate
		}
		return out[i].Impact.Rank() < out[j].Impact.Rank()
	})
	return out
}

// SortDailyEntries orders the daily log pinned first, then newest first,
// with the manual position as the tiebreak within a day.
func SortDailyEntries(entries []models.DailyEntry) []models.DailyEntry {
	out := make([]models.DailyEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		if out[i].TraceDate != out[j].TraceDate {
			return out[i].TraceDate > out[j].TraceDate
		}
		return out[i].Position < out[j].Position
	})
	return out
}

// Summary is the dashboard landing projection.
type Summary struct {
	Date         string `json:"date"`
	TodosOpen    int    `json:"todosOpen"`
	TodosOverdue int    `json:"todosOverdue"`
	IdeasInbox   int    `json:"ideasInbox"`
	GatesPending int    `json:"gatesPending"`
	LoggedToday  bool   `json:"loggedToday"`
	Contacts     int    `json:"contacts"`
	Discoveries  int    `json:"discoveries"`
}

// BuildSummary derives the landing counts for the given local date.
func BuildSummary(d Data, today string) Summary {
	s := Summary{Date: today, Contacts: len(d.Contacts), Discoveries: len(d.Discoveries)}
	for _, t := range d.Todos {
		if t.Status == models.TodoStatusCompleted {
			continue
		}
		s.TodosOpen++
		if t.Deadline != "" && t.Deadline < today {
			s.TodosOverdue++
		}
	}
	for _, i := range d.Ideas {
		if i.Status == models.IdeaStatusInbox {
			s.IdeasInbox++
		}
	}
	for _, g := range d.Gates {
		if g.Status == models.GateStatusPending {
			s.GatesPending++
		}
	}
	for _, e := range d.Dailies {
		if e.TraceDate == today {
			s.LoggedToday = true
			break
		}
	}
	return s
}

// Data bundles the collections the projections read. The zero value is
// usable; missing collections read as empty.
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

// todayLocal is indirected for tests.
var todayLocal = dates.Today
