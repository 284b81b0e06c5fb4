package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types
const (
	AccountRegistered = "account.registered"

	MessagePosted  = "message.posted"
	MessageUpdated = "message.updated"
	MessageDeleted = "message.deleted"
)

// RecordEventsStream is the default stream every record mutation is published to.
const RecordEventsStream = "record.events"

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// DecodeData re-marshals the generic Data payload into a typed event struct.
func (e Event) DecodeData(out any) error {
	dataBytes, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", e.Type, err)
	}
	if err := json.Unmarshal(dataBytes, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s payload: %w", e.Type, err)
	}
	return nil
}

// Account events
type AccountRegisteredEvent struct {
	AccountID string `json:"accountId"`
	Username  string `json:"username"`
}

// Message events
type MessagePostedEvent struct {
	MessageID string `json:"messageId"`
	PostedBy  string `json:"postedBy"`
	Length    int    `json:"length"`
}

type MessageUpdatedEvent struct {
	MessageID string `json:"messageId"`
	PostedBy  string `json:"postedBy"`
	Length    int    `json:"length"`
}

type MessageDeletedEvent struct {
	MessageID string `json:"messageId"`
	PostedBy  string `json:"postedBy"`
}
