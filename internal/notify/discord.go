package notify

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// discordClient abstracts the discordgo methods we use, enabling test mocks.
type discordClient interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Discord posts digests to a single Discord channel.
type Discord struct {
	client    discordClient
	channelID string
}

// DiscordOpts holds parameters for creating a Discord notifier.
type DiscordOpts struct {
	BotToken  string
	ChannelID string
	// For testing: inject a mock client instead of the real Discord API.
	Client discordClient
}

// NewDiscord creates a Discord notifier.
func NewDiscord(opts DiscordOpts) (*Discord, error) {
	if opts.Client == nil && opts.BotToken == "" {
		return nil, fmt.Errorf("discord: bot token is required")
	}
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("discord: channel id is required")
	}
	d := &Discord{channelID: opts.ChannelID, client: opts.Client}
	if d.client == nil {
		session, err := discordgo.New("Bot " + opts.BotToken)
		if err != nil {
			return nil, fmt.Errorf("discord: create session: %w", err)
		}
		d.client = session
	}
	return d, nil
}

func (d *Discord) Name() string { return "discord" }

// Send posts the digest as a single message.
func (d *Discord) Send(ctx context.Context, title, body string) error {
	content := fmt.Sprintf("**%s**\n```%s```", title, body)
	if _, err := d.client.ChannelMessageSend(d.channelID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord: send message: %w", err)
	}
	return nil
}
