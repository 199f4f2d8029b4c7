package main

import (
	"fmt"
	"io"
	"time"

	"github.com/avandyck/daypack/internal/cache"
	"github.com/avandyck/daypack/internal/config"
	"github.com/avandyck/daypack/internal/db"
	"github.com/avandyck/daypack/internal/insights"
	"github.com/avandyck/daypack/internal/notify"
	"github.com/avandyck/daypack/internal/store"
)

const defaultConfigPath = "daypack.yaml"

// openStore loads config, opens the local cache, and connects the hosted
// backend when one is configured. A failed backend connection degrades to
// local-only mode with a warning instead of aborting.
func openStore(out io.Writer, configPath string) (*config.Config, *store.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	c, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		return nil, nil, err
	}

	opts := store.Options{
		Cache:  c,
		Window: time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		Budget: cfg.RateLimit.Budget,
	}
	if cfg.Backend.Configured() {
		gormDB, err := db.Connect(cfg.Backend)
		if err != nil {
			fmt.Fprintf(out, "Backend unreachable, running local-only: %v\n", err)
		} else {
			opts.DB = gormDB
		}
	}

	return cfg, store.New(opts), nil
}

// buildNotifiers constructs the configured digest notifiers. Missing
// credentials simply yield fewer notifiers.
func buildNotifiers(cfg *config.Config) ([]notify.Notifier, error) {
	var notifiers []notify.Notifier
	if cfg.Notify.Slack.BotToken != "" {
		n, err := notify.NewSlack(notify.SlackOpts{
			BotToken:  cfg.Notify.Slack.BotToken,
			ChannelID: cfg.Notify.Slack.ChannelID,
		})
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
	}
	if cfg.Notify.Discord.BotToken != "" {
		n, err := notify.NewDiscord(notify.DiscordOpts{
			BotToken:  cfg.Notify.Discord.BotToken,
			ChannelID: cfg.Notify.Discord.ChannelID,
		})
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
	}
	return notifiers, nil
}

// gatherData snapshots every collection from the store's cache.
func gatherData(st *store.Store) insights.Data {
	return insights.Data{
		Dailies:     st.GetDailyEntries(),
		Todos:       st.GetTodos(),
		Ideas:       st.GetIdeas(),
		Outcomes:    st.GetOutcomes(),
		Gates:       st.GetGates(),
		Contacts:    st.GetContacts(),
		Discoveries: st.GetDiscoveries(),
		Expenses:    st.GetExpenses(),
	}
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
