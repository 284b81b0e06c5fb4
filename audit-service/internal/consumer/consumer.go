// Package consumer turns record events read from the stream into audit log
// lines and keeps a running count per event type.
package consumer

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/socialmedia/records/shared/events"
)

type Consumer struct {
	log *slog.Logger

	mu     sync.Mutex
	counts map[string]int
}

func New(log *slog.Logger) *Consumer {
	if log == nil {
		log = slog.Default()
	}
	return &Consumer{log: log, counts: make(map[string]int)}
}

// Handle is the events.Handler for the record stream. A payload that fails to
// decode is returned as an error so the message stays pending.
func (c *Consumer) Handle(ctx context.Context, event events.Event) error {
	switch event.Type {
	case events.AccountRegistered:
		var data events.AccountRegisteredEvent
		if err := event.DecodeData(&data); err != nil {
			return err
		}
		c.log.InfoContext(ctx, "account registered",
			"account_id", data.AccountID, "username", data.Username, "at", event.Timestamp)

	case events.MessagePosted:
		var data events.MessagePostedEvent
		if err := event.DecodeData(&data); err != nil {
			return err
		}
		c.log.InfoContext(ctx, "message posted",
			"message_id", data.MessageID, "posted_by", data.PostedBy, "length", data.Length, "at", event.Timestamp)

	case events.MessageUpdated:
		var data events.MessageUpdatedEvent
		if err := event.DecodeData(&data); err != nil {
			return err
		}
		c.log.InfoContext(ctx, "message updated",
			"message_id", data.MessageID, "posted_by", data.PostedBy, "length", data.Length, "at", event.Timestamp)

	case events.MessageDeleted:
		var data events.MessageDeletedEvent
		if err := event.DecodeData(&data); err != nil {
			return err
		}
		c.log.InfoContext(ctx, "message deleted",
			"message_id", data.MessageID, "posted_by", data.PostedBy, "at", event.Timestamp)

	default:
		c.log.WarnContext(ctx, "unknown event type", "type", event.Type)
	}

	c.mu.Lock()
	c.counts[event.Type]++
	c.mu.Unlock()
	return nil
}

// Counts returns a snapshot of events handled so far, keyed by type.
func (c *Consumer) Counts() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.counts)
}
