package insights

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// FallbackSummary is shown when the coach is unconfigured or unreachable.
const FallbackSummary = "Coaching summary unavailable. Review the gaps and wins above and pick one thing to improve tomorrow."

// Coach produces a short free-text coaching summary from a computed report
// via the Anthropic API. Entirely additive: callers get FallbackSummary on
// missing configuration or any API failure.
type Coach struct {
	client anthropic.Client
	model  string
	ok     bool
}

// NewCoach returns a Coach. An empty API key yields a disabled coach that
// always falls back.
func NewCoach(apiKey, model string) *Coach {
	if apiKey == "" {
		return &Coach{}
	}
	return &Coach{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		ok:     true,
	}
}

// Summary returns a coaching paragraph for the report, or FallbackSummary.
func (c *Coach) Summary(ctx context.Context, r Report) string {
	if !c.ok {
		return FallbackSummary
	}

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 512,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(coachPrompt(r))),
		},
	})
	if err != nil {
		log.Printf("insights: coach: %v", err)
		return FallbackSummary
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return FallbackSummary
	}
	return out
}

// coachPrompt renders the templated prompt from the computed metrics.
func coachPrompt(r Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are a direct, encouraging productivity coach. Based on these metrics for %s, write one short paragraph of advice.\n\n", r.GeneratedAt)
	fmt.Fprintf(&sb, "Logging streak: %d days\n", r.Streak)
	fmt.Fprintf(&sb, "30-day consistency: %.0f%%\n", r.ConsistencyPercent)
	fmt.Fprintf(&sb, "30-day task completion: %.0f%%\n", r.TaskCompletionRate)
	fmt.Fprintf(&sb, "Idea execution rate: %.0f%%\n", r.IdeaExecutionRate)
	fmt.Fprintf(&sb, "Overdue tasks: %d\n", r.OverdueTasks)
	if len(r.Gaps) > 0 {
		fmt.Fprintf(&sb, "Gaps: %s\n", strings.Join(r.Gaps, "; "))
	}
	if len(r.Wins) > 0 {
		fmt.Fprintf(&sb, "Wins: %s\n", strings.Join(r.Wins, "; "))
	}
	return sb.String()
}
