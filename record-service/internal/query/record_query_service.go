package query

import (
	"context"

	"github.com/socialmedia/records/record-service/internal/store"
	"github.com/socialmedia/records/shared/cqrs"
	"github.com/socialmedia/records/shared/models"
)

// RecordQueryService answers reads straight from the in-memory stores.
// Authentication lives here because it never mutates state.
type RecordQueryService struct {
	accounts *store.AccountStore
	messages *store.MessageStore
}

func NewRecordQueryService(accounts *store.AccountStore, messages *store.MessageStore) *RecordQueryService {
	return &RecordQueryService{accounts: accounts, messages: messages}
}

func (s *RecordQueryService) Authenticate(_ context.Context, cmd cqrs.AuthenticateCommand) (*models.Account, error) {
	return s.accounts.Authenticate(cmd.Username, cmd.Password)
}

func (s *RecordQueryService) GetAccount(_ context.Context, q cqrs.GetAccountQuery) (*models.Account, error) {
	account, ok := s.accounts.FindByID(q.AccountID)
	if !ok {
		return nil, store.ErrNotFound
	}
	return account, nil
}

func (s *RecordQueryService) ListMessages(context.Context) []models.Message {
	return s.messages.ListAll()
}

// GetMessage returns nil, false for an unknown ID; that is not an error.
func (s *RecordQueryService) GetMessage(_ context.Context, q cqrs.GetMessageQuery) (*models.Message, bool) {
	return s.messages.GetByID(q.MessageID)
}

// ListMessagesByAccount does not check that the account exists.
func (s *RecordQueryService) ListMessagesByAccount(_ context.Context, q cqrs.ListMessagesByAccountQuery) []models.Message {
	return s.messages.ListByAuthor(q.AccountID)
}

// Stats reports collection sizes for the health endpoint.
func (s *RecordQueryService) Stats(context.Context) (accounts, messages int) {
	return s.accounts.Len(), s.messages.Len()
}
