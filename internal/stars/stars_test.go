package stars

import (
	"context"
	"testing"
	"time"

	"github.com/avandyck/daypack/internal/cache"
	"github.com/avandyck/daypack/internal/models"
	"github.com/avandyck/daypack/internal/store"
	"github.com/google/go-github/v68/github"
)

type fakeLister struct {
	pages [][]*github.StarredRepository
	calls int
}

func (f *fakeLister) ListStarred(ctx context.Context, user string, opts *github.ActivityListStarredOptions) ([]*github.StarredRepository, *github.Response, error) {
	f.calls++
	idx := opts.Page - 1
	if idx >= len(f.pages) {
		return nil, &github.Response{NextPage: 0}, nil
	}
	next := opts.Page + 1
	if idx == len(f.pages)-1 {
		next = 0
	}
	return f.pages[idx], &github.Response{NextPage: next}, nil
}

// starredAt is a fixed UTC instant; trace dates derived from it must land on
// the machine's local calendar day, not the UTC one.
var starredAt = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func starred(fullName, url, desc, lang string) *github.StarredRepository {
	at := github.Timestamp{Time: starredAt}
	return &github.StarredRepository{
		StarredAt: &at,
		Repository: &github.Repository{
			FullName:    github.Ptr(fullName),
			HTMLURL:     github.Ptr(url),
			Description: github.Ptr(desc),
			Language:    github.Ptr(lang),
		},
	}
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	c, err := cache.Open(":memory:")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	return store.New(store.Options{Cache: c})
}

func TestRunImportsStars(t *testing.T) {
	st := newTestStore(t)
	lister := &fakeLister{pages: [][]*github.StarredRepository{
		{
			starred("pkg/errors", "https://github.com/pkg/errors", "Error helpers", "Go"),
			starred("tailwindlabs/tailwindcss", "https://github.com/tailwindlabs/tailwindcss", "CSS framework", ""),
		},
	}}
	imp, err := New(Opts{Store: st, Lister: lister})
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}

	created, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if created != 2 {
		t.Fatalf("created = %d, want 2", created)
	}

	got := st.GetDiscoveries()
	if len(got) != 2 {
		t.Fatalf("discoveries = %d, want 2", len(got))
	}
	byURL := map[string]models.Discovery{}
	for _, d := range got {
		byURL[d.URL] = d
	}
	d := byURL["https://github.com/pkg/errors"]
	if d.Title != "pkg/errors" || d.Category != "go" {
		t.Fatalf("unexpected discovery: %+v", d)
	}
	if want := starredAt.In(time.Local).Format("2006-01-02"); d.TraceDate != want {
		t.Fatalf("trace date = %q, want local day %q of the star time", d.TraceDate, want)
	}
	if byURL["https://github.com/tailwindlabs/tailwindcss"].Category != "github" {
		t.Fatal("expected fallback category for repo without language")
	}
}

func TestRunSkipsKnownURLs(t *testing.T) {
	st := newTestStore(t)
	st.SaveDiscovery(context.Background(), &models.Discovery{
		Title: "already here",
		URL:   "https://github.com/pkg/errors",
	})

	lister := &fakeLister{pages: [][]*github.StarredRepository{
		{starred("pkg/errors", "https://github.com/pkg/errors", "", "Go")},
	}}
	imp, err := New(Opts{Store: st, Lister: lister})
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}

	created, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if created != 0 {
		t.Fatalf("created = %d, want 0", created)
	}
	if n := len(st.GetDiscoveries()); n != 1 {
		t.Fatalf("discoveries = %d, want 1", n)
	}
}

func TestRunPaginates(t *testing.T) {
	st := newTestStore(t)
	lister := &fakeLister{pages: [][]*github.StarredRepository{
		{starred("a/one", "https://github.com/a/one", "", "Go")},
		{starred("b/two", "https://github.com/b/two", "", "Go")},
	}}
	imp, err := New(Opts{Store: st, Lister: lister})
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}

	created, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if created != 2 {
		t.Fatalf("created = %d, want 2", created)
	}
	if lister.calls != 2 {
		t.Fatalf("calls = %d, want 2", lister.calls)
	}
}

func TestNewRequiresToken(t *testing.T) {
	if _, err := New(Opts{Store: newTestStore(t)}); err == nil {
		t.Fatal("expected error without token or lister")
	}
}
