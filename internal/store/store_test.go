package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avandyck/daypack/internal/cache"
	"github.com/avandyck/daypack/internal/db"
	"github.com/avandyck/daypack/internal/models"
	"github.com/go-sql-driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixedNow keeps trace dates deterministic across a test.
var fixedNow = time.Date(2026, 2, 10, 15, 0, 0, 0, time.Local)

func openBackend(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open backend: %v", err)
	}
	// One connection so every goroutine sees the same in-memory database.
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate backend: %v", err)
	}
	return gdb
}

func newTestStore(t *testing.T, backend *gorm.DB) *Store {
	t.Helper()
	c, err := cache.Open(":memory:")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	return New(Options{
		DB:    backend,
		Cache: c,
		Now:   func() time.Time { return fixedNow },
	})
}

func TestSaveTodo_RoundTrip(t *testing.T) {
	s := newTestStore(t, openBackend(t))
	ctx := context.Background()

	s.SaveTodo(ctx, &models.Todo{Title: "Ship report", Deadline: "2026-02-10", Priority: models.PriorityHigh})

	got := s.FetchTodos(ctx)
	if len(got) != 1 {
		t.Fatalf("FetchTodos returned %d records, want 1", len(got))
	}
	todo := got[0]
	if todo.Title != "Ship report" || todo.Deadline != "2026-02-10" || todo.Priority != models.PriorityHigh {
		t.Errorf("fields = %+v", todo)
	}
	if todo.Completed {
		t.Error("Completed = true, want default false")
	}
	if todo.Status != models.TodoStatusPending {
		t.Errorf("Status = %q, want Pending", todo.Status)
	}
	if todo.ID == "" {
		t.Error("ID was not generated")
	}
	if todo.TraceDate != "2026-02-10" {
		t.Errorf("TraceDate = %q, want 2026-02-10", todo.TraceDate)
	}
}

func TestUpdate_ReplacesOnlyTarget(t *testing.T) {
	s := newTestStore(t, openBackend(t))
	ctx := context.Background()

	s.SaveIdea(ctx, &models.Idea{ID: "a", Thought: "first", Category: models.IdeaCategoryProduct})
	s.SaveIdea(ctx, &models.Idea{ID: "b", Thought: "second", Category: models.IdeaCategoryContent})

	s.UpdateIdea(ctx, &models.Idea{ID: "a", Thought: "first, revised", Category: models.IdeaCategoryProduct, TraceDate: "2026-02-10"})

	got := s.GetIdeas()
	byID := map[string]models.Idea{}
	for _, i := range got {
		byID[i.ID] = i
	}
	if byID["a"].Thought != "first, revised" {
		t.Errorf("updated thought = %q", byID["a"].Thought)
	}
	if byID["b"].Thought != "second" {
		t.Errorf("untouched record altered: %+v", byID["b"])
	}
}

func TestDelete_RemovesByID(t *testing.T) {
	s := newTestStore(t, openBackend(t))
	ctx := context.Background()

	s.SaveContact(ctx, &models.Contact{ID: "c1", Name: "Sam"})
	s.SaveContact(ctx, &models.Contact{ID: "c2", Name: "Alex"})

	s.DeleteContact(ctx, "c1")

	for _, c := range s.GetContacts() {
		if c.ID == "c1" {
			t.Error("deleted record still present in cache")
		}
	}
	got := s.FetchContacts(ctx)
	if len(got) != 1 || got[0].ID != "c2" {
		t.Errorf("backend state after delete = %+v", got)
	}
}

func TestFetch_Idempotent(t *testing.T) {
	s := newTestStore(t, openBackend(t))
	ctx := context.Background()

	s.SaveExpense(ctx, &models.Expense{Title: "Domain", Amount: 12.50, Category: models.ExpenseCategoryTools, Date: "2026-02-01"})
	s.SaveExpense(ctx, &models.Expense{Title: "Course", Amount: 99, Category: models.ExpenseCategoryEducation, Date: "2026-02-05"})

	first := s.FetchExpenses(ctx)
	second := s.FetchExpenses(ctx)
	if len(first) != len(second) {
		t.Fatalf("fetch sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("order changed between fetches: %q vs %q", first[i].ID, second[i].ID)
		}
	}
	cachedNow := s.GetExpenses()
	if len(cachedNow) != len(second) {
		t.Errorf("cache (%d) does not equal fetched collection (%d)", len(cachedNow), len(second))
	}
}

func TestFetch_OrdersNewestFirst(t *testing.T) {
	s := newTestStore(t, openBackend(t))
	ctx := context.Background()

	s.SaveGate(ctx, &models.DecisionGate{ID: "old", Decision: "old", TraceDate: "2026-01-01"})
	s.SaveGate(ctx, &models.DecisionGate{ID: "new", Decision: "new", TraceDate: "2026-02-01"})

	got := s.FetchGates(ctx)
	if len(got) != 2 || got[0].ID != "new" {
		t.Errorf("order = %+v, want newest first", got)
	}
}

func TestSave_RollsBackCacheOnBackendFailure(t *testing.T) {
	backend := openBackend(t)
	s := newTestStore(t, backend)
	ctx := context.Background()

	s.SaveIdea(ctx, &models.Idea{ID: "keep", Thought: "kept"})
	before := s.GetIdeas()

	// Simulated backend failure: the table is gone.
	if err := backend.Migrator().DropTable(&models.Idea{}); err != nil {
		t.Fatal(err)
	}

	after := s.SaveIdea(ctx, &models.Idea{ID: "lost", Thought: "dropped"})
	if len(after) != len(before) {
		t.Errorf("returned collection = %d records, want pre-write %d", len(after), len(before))
	}
	got := s.GetIdeas()
	if len(got) != len(before) {
		t.Fatalf("cache = %d records after failed save, want %d", len(got), len(before))
	}
	if got[0].ID != "keep" {
		t.Errorf("cache content changed: %+v", got)
	}
}

func TestUpdate_RollsBackCacheOnBackendFailure(t *testing.T) {
	backend := openBackend(t)
	s := newTestStore(t, backend)
	ctx := context.Background()

	s.SaveDiscovery(ctx, &models.Discovery{ID: "d1", Title: "orig", URL: "https://example.com"})
	if err := backend.Migrator().DropTable(&models.Discovery{}); err != nil {
		t.Fatal(err)
	}

	s.UpdateDiscovery(ctx, &models.Discovery{ID: "d1", Title: "changed", URL: "https://example.com"})

	got := s.GetDiscoveries()
	if len(got) != 1 || got[0].Title != "orig" {
		t.Errorf("cache after failed update = %+v, want original", got)
	}
}

func TestDelete_RollsBackCacheOnBackendFailure(t *testing.T) {
	backend := openBackend(t)
	s := newTestStore(t, backend)
	ctx := context.Background()

	s.SaveOutcome(ctx, &models.WeeklyOutcome{ID: "w1", WeekStarting: "2026-02-02", Status: models.OutcomePartial})
	if err := backend.Migrator().DropTable(&models.WeeklyOutcome{}); err != nil {
		t.Fatal(err)
	}

	s.DeleteOutcome(ctx, "w1")

	got := s.GetOutcomes()
	if len(got) != 1 || got[0].ID != "w1" {
		t.Errorf("cache after failed delete = %+v, want record retained", got)
	}
}

func TestFetch_StaleFallbackOnBackendFailure(t *testing.T) {
	backend := openBackend(t)
	s := newTestStore(t, backend)
	ctx := context.Background()

	s.SaveTodo(ctx, &models.Todo{ID: "t1", Title: "cached"})
	if err := backend.Migrator().DropTable(&models.Todo{}); err != nil {
		t.Fatal(err)
	}

	got := s.FetchTodos(ctx)
	if len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("fetch fallback = %+v, want last good cache", got)
	}
}

func TestRateLimiter_DropsWriteAndLeavesCacheUnchanged(t *testing.T) {
	backend := openBackend(t)
	c, err := cache.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	s := New(Options{DB: backend, Cache: c, Window: time.Hour, Budget: 1})
	ctx := context.Background()

	// Exhaust the single-request budget.
	s.FetchIdeas(ctx)

	s.SaveIdea(ctx, &models.Idea{ID: "blocked", Thought: "dropped"})

	if got := s.GetIdeas(); len(got) != 0 {
		t.Errorf("cache = %+v after rate-limited save, want unchanged", got)
	}
	var count int64
	backend.Model(&models.Idea{}).Count(&count)
	if count != 0 {
		t.Errorf("backend received %d inserts despite exhausted budget", count)
	}
}

func TestLocalOnly_WritesResolveAgainstCache(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	if !s.LocalOnly() {
		t.Fatal("store with nil db should be local-only")
	}
	s.SaveIdea(ctx, &models.Idea{ID: "i1", Thought: "offline"})
	if got := s.GetIdeas(); len(got) != 1 || got[0].ID != "i1" {
		t.Errorf("cache = %+v", got)
	}

	s.UpdateIdea(ctx, &models.Idea{ID: "i1", Thought: "offline, edited"})
	if got := s.GetIdeas(); got[0].Thought != "offline, edited" {
		t.Errorf("Thought = %q", got[0].Thought)
	}

	s.DeleteIdea(ctx, "i1")
	if got := s.GetIdeas(); len(got) != 0 {
		t.Errorf("cache after delete = %+v", got)
	}

	// Fetch serves the cache without a backend.
	if got := s.FetchIdeas(ctx); len(got) != 0 {
		t.Errorf("fetch in local-only mode = %+v", got)
	}
}

func TestGet_CorruptCacheReadsEmpty(t *testing.T) {
	c, err := cache.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	c.Put(keyTodos, "{not json")
	s := New(Options{Cache: c})

	if got := s.GetTodos(); len(got) != 0 {
		t.Errorf("GetTodos on corrupt cache = %+v, want empty", got)
	}
}

func TestSave_SanitizesFreeText(t *testing.T) {
	s := newTestStore(t, openBackend(t))
	ctx := context.Background()

	got := s.SaveContact(ctx, &models.Contact{
		Name:     "<b>Sam</b>",
		Email:    "Sam@Example.com",
		LinkedIn: "javascript:alert(1)",
		Notes:    "<script>x</script>met at conf",
	})
	if got[0].Name != "Sam" {
		t.Errorf("Name = %q", got[0].Name)
	}
	if got[0].Email != "sam@example.com" {
		t.Errorf("Email = %q", got[0].Email)
	}
	if got[0].LinkedIn != "" {
		t.Errorf("LinkedIn = %q, want rejected", got[0].LinkedIn)
	}
	if got[0].Notes != "met at conf" {
		t.Errorf("Notes = %q", got[0].Notes)
	}
}

func TestToggleTodo_StateConsistency(t *testing.T) {
	s := newTestStore(t, openBackend(t))
	ctx := context.Background()

	s.SaveTodo(ctx, &models.Todo{ID: "t1", Title: "task"})

	got := s.ToggleTodo(ctx, "t1")
	if got[0].Status != models.TodoStatusCompleted || !got[0].Completed {
		t.Errorf("after toggle: status=%q completed=%v", got[0].Status, got[0].Completed)
	}
	if got[0].CompletedAt == "" {
		t.Error("CompletedAt not set on completion")
	}

	got = s.ToggleTodo(ctx, "t1")
	if got[0].Status != models.TodoStatusPending || got[0].Completed {
		t.Errorf("after second toggle: status=%q completed=%v", got[0].Status, got[0].Completed)
	}
	if got[0].CompletedAt != "" {
		t.Errorf("CompletedAt = %q, want cleared", got[0].CompletedAt)
	}
}

func TestUpdateTodo_ClearsCompletionOnLeavingCompleted(t *testing.T) {
	backend := openBackend(t)
	s := newTestStore(t, backend)
	ctx := context.Background()

	s.SaveTodo(ctx, &models.Todo{ID: "t1", Title: "draft notes"})
	got := s.ToggleTodo(ctx, "t1")
	if got[0].CompletedAt == "" {
		t.Fatal("setup: CompletedAt not set on completion")
	}

	// A full-record update out of Completed, with the stale CompletedAt
	// still populated the way a client PUT would send it.
	reopened := got[0]
	reopened.Status = models.TodoStatusPending
	got = s.UpdateTodo(ctx, &reopened)
	if got[0].Completed || got[0].CompletedAt != "" {
		t.Errorf("returned: completed=%v completedAt=%q, want cleared", got[0].Completed, got[0].CompletedAt)
	}

	cached := s.GetTodos()
	if cached[0].CompletedAt != "" {
		t.Errorf("cache CompletedAt = %q, want cleared", cached[0].CompletedAt)
	}

	var row models.Todo
	if err := backend.First(&row, "id = ?", "t1").Error; err != nil {
		t.Fatalf("backend read: %v", err)
	}
	if row.CompletedAt != "" || row.Completed {
		t.Errorf("backend: completed=%v completedAt=%q, want cleared", row.Completed, row.CompletedAt)
	}
}

func TestSyncAll_RefreshesEveryCollection(t *testing.T) {
	backend := openBackend(t)
	s := newTestStore(t, backend)
	ctx := context.Background()

	// Seed the backend directly, bypassing the cache.
	backend.Create(&models.Todo{ID: "t1", Title: "seeded", TraceDate: "2026-02-01"})
	backend.Create(&models.Idea{ID: "i1", Thought: "seeded", TraceDate: "2026-02-01"})
	backend.Create(&models.Contact{ID: "c1", Name: "seeded", TraceDate: "2026-02-01"})

	if err := s.SyncAll(ctx); err != nil {
		t.Fatalf("SyncAll: %v", err)
	}
	if len(s.GetTodos()) != 1 || len(s.GetIdeas()) != 1 || len(s.GetContacts()) != 1 {
		t.Error("SyncAll did not refresh all collections")
	}
}

func TestDailyEntry_LegacySchemaRetry(t *testing.T) {
	// Backend whose daily_entries table predates the pinned/position columns.
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := gdb.Exec(`CREATE TABLE daily_entries (
		id TEXT PRIMARY KEY, trace_date TEXT, date TEXT,
		worked_on TEXT, shipped TEXT, created_at DATETIME, updated_at DATETIME
	)`).Error; err != nil {
		t.Fatal(err)
	}

	s := newTestStore(t, gdb)
	ctx := context.Background()

	got := s.SaveDailyEntry(ctx, &models.DailyEntry{ID: "d1", WorkedOn: "retry path", Pinned: true})
	if len(got) != 1 {
		t.Fatalf("save against legacy schema failed, collection = %+v", got)
	}

	var count int64
	gdb.Table("daily_entries").Count(&count)
	if count != 1 {
		t.Errorf("backend rows = %d, want 1 via legacy retry", count)
	}
}

func TestIsMissingColumn(t *testing.T) {
	if !isMissingColumn(&mysql.MySQLError{Number: 1054, Message: "Unknown column 'pinned' in 'field list'"}) {
		t.Error("MySQL 1054 should classify as missing column")
	}
	if isMissingColumn(&mysql.MySQLError{Number: 1146, Message: "Table 'daily_entries' doesn't exist"}) {
		t.Error("missing table must not trigger the legacy retry")
	}
	if !isMissingColumn(errors.New("no such column: pinned")) {
		t.Error("SQLite missing column should classify as missing column")
	}
	if isMissingColumn(errors.New("database is locked")) {
		t.Error("unrelated errors must not trigger the legacy retry")
	}
}

func TestDailyEntry_TraceBackfilledFromLegacyDate(t *testing.T) {
	backend := openBackend(t)
	s := newTestStore(t, backend)
	ctx := context.Background()

	backend.Create(&models.DailyEntry{ID: "d1", Date: "2026-01-15", WorkedOn: "old row"})

	got := s.FetchDailyEntries(ctx)
	if len(got) != 1 {
		t.Fatalf("fetch = %+v", got)
	}
	if got[0].TraceDate != "2026-01-15" {
		t.Errorf("TraceDate = %q, want backfilled 2026-01-15", got[0].TraceDate)
	}
}

func TestPinnedDefaultsFalseThroughRoundTrip(t *testing.T) {
	s := newTestStore(t, openBackend(t))
	ctx := context.Background()

	s.SaveIdea(ctx, &models.Idea{Thought: "unpinned"})
	got := s.FetchIdeas(ctx)
	if len(got) != 1 || got[0].Pinned || got[0].Executed {
		t.Errorf("defaults after round trip = %+v", got)
	}
}
