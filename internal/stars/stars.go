// Package stars imports the authenticated user's starred GitHub repos into
// the Discoveries collection.
package stars

import (
	"context"
	"fmt"
	"strings"

	"github.com/avandyck/daypack/internal/dates"
	"github.com/avandyck/daypack/internal/models"
	"github.com/avandyck/daypack/internal/store"
	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// maxPages bounds the import; a personal star list past this is noise.
const maxPages = 10

// starLister abstracts the GitHub API method we use, enabling test mocks.
type starLister interface {
	ListStarred(ctx context.Context, user string, opts *github.ActivityListStarredOptions) ([]*github.StarredRepository, *github.Response, error)
}

// Importer pulls starred repos and records the new ones as discoveries.
type Importer struct {
	lister starLister
	store  *store.Store
}

// Opts holds parameters for creating an Importer.
type Opts struct {
	Token string
	Store *store.Store
	// For testing: inject a mock lister instead of the real GitHub API.
	Lister starLister
}

// New creates an Importer.
func New(opts Opts) (*Importer, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("stars: store is required")
	}
	if opts.Lister == nil && opts.Token == "" {
		return nil, fmt.Errorf("stars: github token is required")
	}
	imp := &Importer{lister: opts.Lister, store: opts.Store}
	if imp.lister == nil {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		imp.lister = github.NewClient(oauth2.NewClient(context.Background(), ts)).Activity
	}
	return imp, nil
}

// Run imports starred repos as discoveries, skipping URLs already present.
// Returns the number of discoveries created.
func (i *Importer) Run(ctx context.Context) (int, error) {
	seen := map[string]bool{}
	for _, d := range i.store.GetDiscoveries() {
		if d.URL != "" {
			seen[d.URL] = true
		}
	}

	created := 0
	opts := &github.ActivityListStarredOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for page := 1; page <= maxPages; page++ {
		opts.Page = page
		starred, resp, err := i.lister.ListStarred(ctx, "", opts)
		if err != nil {
			return created, fmt.Errorf("stars: list starred page %d: %w", page, err)
		}
		for _, s := range starred {
			repo := s.GetRepository()
			url := repo.GetHTMLURL()
			if url == "" || seen[url] {
				continue
			}
			seen[url] = true
			i.store.SaveDiscovery(ctx, &models.Discovery{
				Title:       repo.GetFullName(),
				URL:         url,
				Description: repo.GetDescription(),
				Category:    categoryFor(repo),
				Impact:      models.ImpactLinear,
				TraceDate:   dates.LocalDate(s.GetStarredAt().Time),
			})
			created++
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
	}
	return created, nil
}

// categoryFor derives a rough discovery category from repo metadata.
func categoryFor(repo *github.Repository) string {
	if lang := repo.GetLanguage(); lang != "" {
		return strings.ToLower(lang)
	}
	return "github"
}
