package events

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestDecodeMessage(t *testing.T) {
	req := require.New(t)

	raw, err := encodeEvent(MessagePosted, MessagePostedEvent{MessageID: "m-1", PostedBy: "a-1", Length: 5})
	req.NoError(err)

	event, err := decodeMessage(redis.XMessage{ID: "1-0", Values: map[string]any{"event": string(raw)}})
	req.NoError(err)
	req.Equal(MessagePosted, event.Type)
	req.False(event.Timestamp.IsZero())

	var data MessagePostedEvent
	req.NoError(event.DecodeData(&data))
	req.Equal(MessagePostedEvent{MessageID: "m-1", PostedBy: "a-1", Length: 5}, data)
}

func TestDecodeMessage_InvalidFormat(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
	}{
		{name: "missing event field", values: map[string]any{}},
		{name: "non-string event field", values: map[string]any{"event": 42}},
		{name: "malformed json", values: map[string]any{"event": "{not json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeMessage(redis.XMessage{ID: "1-0", Values: tt.values})
			require.Error(t, err)
		})
	}
}

func TestNopPublisher(t *testing.T) {
	var e Emitter = NopPublisher{}
	require.NoError(t, e.Publish(context.Background(), RecordEventsStream, AccountRegistered, nil))
}
