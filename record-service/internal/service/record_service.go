// Package service composes the record stores into the operations consumed by
// the HTTP layer:
//   - internal/command: RecordCommandService (writes, event publishing)
//   - internal/query:   RecordQueryService   (reads, authentication)
package service

import (
	"log/slog"

	"github.com/socialmedia/records/record-service/internal/command"
	"github.com/socialmedia/records/record-service/internal/query"
	"github.com/socialmedia/records/record-service/internal/store"
	"github.com/socialmedia/records/shared/events"
)

// RecordService is one explicitly constructed instance per process.
type RecordService struct {
	*command.RecordCommandService
	*query.RecordQueryService
}

type Options struct {
	Hasher    store.PasswordHasher
	Publisher events.Emitter
	Stream    string
	Logger    *slog.Logger
}

// New builds both stores and wires the command and query sides over them.
func New(opts Options) *RecordService {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	accounts := store.NewAccountStore(opts.Hasher)
	messages := store.NewMessageStore(accounts)
	return &RecordService{
		RecordCommandService: command.NewRecordCommandService(accounts, messages, opts.Publisher, opts.Stream, opts.Logger),
		RecordQueryService:   query.NewRecordQueryService(accounts, messages),
	}
}
