package command

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/socialmedia/records/record-service/internal/store"
	"github.com/socialmedia/records/shared/cqrs"
	"github.com/socialmedia/records/shared/events"
	"github.com/socialmedia/records/shared/models"
)

// RecordCommandService applies every mutation to the in-memory stores and
// announces it on the record event stream.
type RecordCommandService struct {
	accounts  *store.AccountStore
	messages  *store.MessageStore
	publisher events.Emitter
	stream    string
	log       *slog.Logger
}

func NewRecordCommandService(
	accounts *store.AccountStore,
	messages *store.MessageStore,
	publisher events.Emitter,
	stream string,
	log *slog.Logger,
) *RecordCommandService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if stream == "" {
		stream = events.RecordEventsStream
	}
	return &RecordCommandService{
		accounts:  accounts,
		messages:  messages,
		publisher: publisher,
		stream:    stream,
		log:       log,
	}
}

func (s *RecordCommandService) Register(ctx context.Context, cmd cqrs.RegisterAccountCommand) (*models.Account, error) {
	account, err := s.accounts.Register(cmd.Username, cmd.Password)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.AccountRegistered, events.AccountRegisteredEvent{
		AccountID: account.ID,
		Username:  account.Username,
	})
	return account, nil
}

// PostMessage resolves the author before touching the message store, so an
// unknown author is reported even when the text is also invalid.
func (s *RecordCommandService) PostMessage(ctx context.Context, cmd cqrs.PostMessageCommand) (*models.Message, error) {
	if _, ok := s.accounts.FindByID(cmd.PostedBy); !ok {
		return nil, store.ErrUnknownAuthor
	}
	message, err := s.messages.Post(cmd.Text, cmd.PostedBy)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.MessagePosted, events.MessagePostedEvent{
		MessageID: message.ID,
		PostedBy:  message.PostedBy,
		Length:    utf8.RuneCountInString(message.Text),
	})
	return message, nil
}

func (s *RecordCommandService) UpdateMessage(ctx context.Context, cmd cqrs.UpdateMessageCommand) (*models.Message, error) {
	message, err := s.messages.Update(cmd.MessageID, cmd.Text)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.MessageUpdated, events.MessageUpdatedEvent{
		MessageID: message.ID,
		PostedBy:  message.PostedBy,
		Length:    utf8.RuneCountInString(message.Text),
	})
	return message, nil
}

// DeleteMessage returns nil, nil when there was nothing to delete.
func (s *RecordCommandService) DeleteMessage(ctx context.Context, cmd cqrs.DeleteMessageCommand) (*models.Message, error) {
	message, ok := s.messages.Delete(cmd.MessageID)
	if !ok {
		return nil, nil
	}
	s.publish(ctx, events.MessageDeleted, events.MessageDeletedEvent{
		MessageID: message.ID,
		PostedBy:  message.PostedBy,
	})
	return message, nil
}

// publish never fails the command: the stores are the source of truth.
func (s *RecordCommandService) publish(ctx context.Context, eventType string, data any) {
	if err := s.publisher.Publish(ctx, s.stream, eventType, data); err != nil {
		s.log.Warn("Failed to publish event", "type", eventType, "error", err)
	}
}
