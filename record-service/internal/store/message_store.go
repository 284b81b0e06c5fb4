package store

import (
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/socialmedia/records/shared/models"
	"github.com/socialmedia/records/shared/utils"
)

// MaxMessageLength is counted in Unicode code points.
const MaxMessageLength = 255

// AuthorResolver is the part of AccountStore that MessageStore reads.
type AuthorResolver interface {
	FindByID(id string) (*models.Account, bool)
}

// MessageStore owns every posted message in insertion order.
type MessageStore struct {
	mu       sync.RWMutex
	authors  AuthorResolver
	messages []*models.Message
}

func NewMessageStore(authors AuthorResolver) *MessageStore {
	return &MessageStore{authors: authors}
}

// Post stores a new message. An unresolvable author is reported before bad content.
func (s *MessageStore) Post(text, postedBy string) (*models.Message, error) {
	if _, ok := s.authors.FindByID(postedBy); !ok {
		return nil, ErrUnknownAuthor
	}
	if err := validateContent(text); err != nil {
		return nil, err
	}

	message := &models.Message{
		ID:       utils.GenerateID(),
		Text:     text,
		PostedBy: postedBy,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)

	clone := *message
	return &clone, nil
}

// ListAll returns a snapshot of every message. Later mutations are not reflected in it.
func (s *MessageStore) ListAll() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Map(s.messages, func(m *models.Message, _ int) models.Message {
		return *m
	})
}

func (s *MessageStore) GetByID(id string) (*models.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, m, ok := s.find(id)
	if !ok {
		return nil, false
	}
	clone := *m
	return &clone, true
}

// ListByAuthor never fails: an unknown account simply has no messages.
func (s *MessageStore) ListByAuthor(accountID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.FilterMap(s.messages, func(m *models.Message, _ int) (models.Message, bool) {
		return *m, m.PostedBy == accountID
	})
}

// Update replaces the text of a message, keeping its ID and author.
func (s *MessageStore) Update(id, text string) (*models.Message, error) {
	if err := validateContent(text); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, m, ok := s.find(id)
	if !ok {
		return nil, ErrNotFound
	}
	m.Text = text

	clone := *m
	return &clone, nil
}

// Delete removes and returns the message. Deleting an absent ID is a no-op.
func (s *MessageStore) Delete(id string) (*models.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, m, ok := s.find(id)
	if !ok {
		return nil, false
	}
	s.messages = slices.Delete(s.messages, i, i+1)
	return m, true
}

func (s *MessageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// find must be called with mu held.
func (s *MessageStore) find(id string) (int, *models.Message, bool) {
	i := slices.IndexFunc(s.messages, func(m *models.Message) bool { return m.ID == id })
	if i < 0 {
		return -1, nil, false
	}
	return i, s.messages[i], true
}

func validateContent(text string) error {
	n := utf8.RuneCountInString(text)
	if n == 0 || n > MaxMessageLength {
		return ErrInvalidContent
	}
	return nil
}
