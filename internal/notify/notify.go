// Package notify delivers the insights digest to chat channels. Delivery is
// best-effort: a failed send is logged and never blocks the caller.
package notify

import (
	"context"
	"log"
)

// Notifier sends a titled message to a configured channel.
type Notifier interface {
	Send(ctx context.Context, title, body string) error
	Name() string
}

// Broadcast sends the digest through every notifier, logging failures.
func Broadcast(ctx context.Context, notifiers []Notifier, title, body string) {
	for _, n := range notifiers {
		if err := n.Send(ctx, title, body); err != nil {
			log.Printf("notify: %s: %v", n.Name(), err)
		}
	}
}
