package store

import (
	"context"

	"github.com/avandyck/daypack/internal/models"
)

// Daily entries. Inserts and updates go through the versioned-schema
// adapter in daily.go.

func (s *Store) GetDailyEntries() []models.DailyEntry {
	return cached[models.DailyEntry](s, keyDailyEntries)
}

func (s *Store) FetchDailyEntries(ctx context.Context) []models.DailyEntry {
	out, _ := fetchAll[models.DailyEntry](ctx, s, keyDailyEntries)
	return out
}

func (s *Store) SaveDailyEntry(ctx context.Context, e *models.DailyEntry) []models.DailyEntry {
	return saveRecord(ctx, s, keyDailyEntries, e, insertDailyEntry)
}

func (s *Store) UpdateDailyEntry(ctx context.Context, e *models.DailyEntry) []models.DailyEntry {
	return updateRecord(ctx, s, keyDailyEntries, e, updateDailyEntry)
}

func (s *Store) DeleteDailyEntry(ctx context.Context, id string) []models.DailyEntry {
	return deleteRecord[models.DailyEntry](ctx, s, keyDailyEntries, id)
}

// Ideas.

func (s *Store) GetIdeas() []models.Idea {
	return cached[models.Idea](s, keyIdeas)
}

func (s *Store) FetchIdeas(ctx context.Context) []models.Idea {
	out, _ := fetchAll[models.Idea](ctx, s, keyIdeas)
	return out
}

func (s *Store) SaveIdea(ctx context.Context, i *models.Idea) []models.Idea {
	return saveRecord(ctx, s, keyIdeas, i, defaultInsert[models.Idea])
}

func (s *Store) UpdateIdea(ctx context.Context, i *models.Idea) []models.Idea {
	return updateRecord(ctx, s, keyIdeas, i, defaultUpdate[models.Idea])
}

func (s *Store) DeleteIdea(ctx context.Context, id string) []models.Idea {
	return deleteRecord[models.Idea](ctx, s, keyIdeas, id)
}

// Weekly outcomes.

func (s *Store) GetOutcomes() []models.WeeklyOutcome {
	return cached[models.WeeklyOutcome](s, keyOutcomes)
}

func (s *Store) FetchOutcomes(ctx context.Context) []models.WeeklyOutcome {
	out, _ := fetchAll[models.WeeklyOutcome](ctx, s, keyOutcomes)
	return out
}

func (s *Store) SaveOutcome(ctx context.Context, o *models.WeeklyOutcome) []models.WeeklyOutcome {
	return saveRecord(ctx, s, keyOutcomes, o, defaultInsert[models.WeeklyOutcome])
}

func (s *Store) UpdateOutcome(ctx context.Context, o *models.WeeklyOutcome) []models.WeeklyOutcome {
	return updateRecord(ctx, s, keyOutcomes, o, defaultUpdate[models.WeeklyOutcome])
}

func (s *Store) DeleteOutcome(ctx context.Context, id string) []models.WeeklyOutcome {
	return deleteRecord[models.WeeklyOutcome](ctx, s, keyOutcomes, id)
}

// Todos.

func (s *Store) GetTodos() []models.Todo {
	return cached[models.Todo](s, keyTodos)
}

func (s *Store) FetchTodos(ctx context.Context) []models.Todo {
	out, _ := fetchAll[models.Todo](ctx, s, keyTodos)
	return out
}

func (s *Store) SaveTodo(ctx context.Context, t *models.Todo) []models.Todo {
	if t.Status == "" {
		t.Status = models.TodoStatusPending
	}
	syncTodoCompletion(t)
	return saveRecord(ctx, s, keyTodos, t, defaultInsert[models.Todo])
}

func (s *Store) UpdateTodo(ctx context.Context, t *models.Todo) []models.Todo {
	syncTodoCompletion(t)
	return updateRecord(ctx, s, keyTodos, t, defaultUpdate[models.Todo])
}

// syncTodoCompletion derives the completion columns from Status before the
// optimistic cache write, so the cached record matches what the BeforeSave
// hook persists. A full-record update out of Completed may still carry the
// caller's stale CompletedAt.
func syncTodoCompletion(t *models.Todo) {
	t.Completed = t.Status == models.TodoStatusCompleted
	if !t.Completed {
		t.CompletedAt = ""
	}
}

func (s *Store) DeleteTodo(ctx context.Context, id string) []models.Todo {
	return deleteRecord[models.Todo](ctx, s, keyTodos, id)
}

// ToggleTodo flips the completion state of the todo with the given id and
// persists the change. Unknown ids are a no-op.
func (s *Store) ToggleTodo(ctx context.Context, id string) []models.Todo {
	todos := s.GetTodos()
	for i := range todos {
		if todos[i].ID == id {
			t := todos[i]
			t.ToggleComplete(s.now())
			return s.UpdateTodo(ctx, &t)
		}
	}
	return todos
}

// Decision gates.

func (s *Store) GetGates() []models.DecisionGate {
	return cached[models.DecisionGate](s, keyGates)
}

func (s *Store) FetchGates(ctx context.Context) []models.DecisionGate {
	out, _ := fetchAll[models.DecisionGate](ctx, s, keyGates)
	return out
}

func (s *Store) SaveGate(ctx context.Context, g *models.DecisionGate) []models.DecisionGate {
	if g.Status == "" {
		g.Status = models.GateStatusPending
	}
	return saveRecord(ctx, s, keyGates, g, defaultInsert[models.DecisionGate])
}

func (s *Store) UpdateGate(ctx context.Context, g *models.DecisionGate) []models.DecisionGate {
	return updateRecord(ctx, s, keyGates, g, defaultUpdate[models.DecisionGate])
}

func (s *Store) DeleteGate(ctx context.Context, id string) []models.DecisionGate {
	return deleteRecord[models.DecisionGate](ctx, s, keyGates, id)
}

// Contacts.

func (s *Store) GetContacts() []models.Contact {
	return cached[models.Contact](s, keyContacts)
}

func (s *Store) FetchContacts(ctx context.Context) []models.Contact {
	out, _ := fetchAll[models.Contact](ctx, s, keyContacts)
	return out
}

func (s *Store) SaveContact(ctx context.Context, c *models.Contact) []models.Contact {
	return saveRecord(ctx, s, keyContacts, c, defaultInsert[models.Contact])
}

func (s *Store) UpdateContact(ctx context.Context, c *models.Contact) []models.Contact {
	return updateRecord(ctx, s, keyContacts, c, defaultUpdate[models.Contact])
}

func (s *Store) DeleteContact(ctx context.Context, id string) []models.Contact {
	return deleteRecord[models.Contact](ctx, s, keyContacts, id)
}

// Discoveries.

func (s *Store) GetDiscoveries() []models.Discovery {
	return cached[models.Discovery](s, keyDiscoveries)
}

func (s *Store) FetchDiscoveries(ctx context.Context) []models.Discovery {
	out, _ := fetchAll[models.Discovery](ctx, s, keyDiscoveries)
	return out
}

func (s *Store) SaveDiscovery(ctx context.Context, d *models.Discovery) []models.Discovery {
	return saveRecord(ctx, s, keyDiscoveries, d, defaultInsert[models.Discovery])
}

func (s *Store) UpdateDiscovery(ctx context.Context, d *models.Discovery) []models.Discovery {
	return updateRecord(ctx, s, keyDiscoveries, d, defaultUpdate[models.Discovery])
}

func (s *Store) DeleteDiscovery(ctx context.Context, id string) []models.Discovery {
	return deleteRecord[models.Discovery](ctx, s, keyDiscoveries, id)
}

// Expenses.

func (s *Store) GetExpenses() []models.Expense {
	return cached[models.Expense](s, keyExpenses)
}

func (s *Store) FetchExpenses(ctx context.Context) []models.Expense {
	out, _ := fetchAll[models.Expense](ctx, s, keyExpenses)
	return out
}

func (s *Store) SaveExpense(ctx context.Context, e *models.Expense) []models.Expense {
	return saveRecord(ctx, s, keyExpenses, e, defaultInsert[models.Expense])
}

func (s *Store) UpdateExpense(ctx context.Context, e *models.Expense) []models.Expense {
	return updateRecord(ctx, s, keyExpenses, e, defaultUpdate[models.Expense])
}

func (s *Store) DeleteExpense(ctx context.Context, id string) []models.Expense {
	return deleteRecord[models.Expense](ctx, s, keyExpenses, id)
}
