package store

import (
	"sync"
	"unicode/utf8"

	"github.com/socialmedia/records/shared/models"
	"github.com/socialmedia/records/shared/utils"
)

// MinPasswordLength is only enforced at registration.
const MinPasswordLength = 4

// AccountStore owns every registered account. Usernames are unique and
// compared case-sensitively.
type AccountStore struct {
	mu         sync.RWMutex
	hasher     PasswordHasher
	byID       map[string]*models.Account
	byUsername map[string]*models.Account
}

func NewAccountStore(hasher PasswordHasher) *AccountStore {
	if hasher == nil {
		hasher = BcryptHasher{}
	}
	return &AccountStore{
		hasher:     hasher,
		byID:       make(map[string]*models.Account),
		byUsername: make(map[string]*models.Account),
	}
}

// Register validates the credentials and stores a new account under a fresh ID.
// The uniqueness check and the insert happen under one write lock; hashing
// happens before it is taken.
func (s *AccountStore) Register(username, password string) (*models.Account, error) {
	if username == "" {
		return nil, ErrInvalidUsername
	}
	if _, exists := s.FindByUsername(username); exists {
		return nil, ErrDuplicateUsername
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	stored, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		ID:       utils.GenerateID(),
		Username: username,
		Password: stored,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byUsername[username]; exists {
		return nil, ErrDuplicateUsername
	}
	s.byID[account.ID] = account
	s.byUsername[account.Username] = account

	clone := *account
	return &clone, nil
}

// Authenticate returns the account whose username and password both match.
func (s *AccountStore) Authenticate(username, password string) (*models.Account, error) {
	account, ok := s.FindByUsername(username)
	if !ok || !s.hasher.Matches(password, account.Password) {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// FindByID returns a copy of the account, or false when there is none.
func (s *AccountStore) FindByID(id string) (*models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAccount(s.byID[id])
}

func (s *AccountStore) FindByUsername(username string) (*models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAccount(s.byUsername[username])
}

// UpdatePassword replaces the stored password. The registration length rule is
// not re-applied.
func (s *AccountStore) UpdatePassword(id, password string) (*models.Account, error) {
	stored, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	account.Password = stored

	clone := *account
	return &clone, nil
}

// Len reports the number of registered accounts.
func (s *AccountStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func cloneAccount(a *models.Account) (*models.Account, bool) {
	if a == nil {
		return nil, false
	}
	clone := *a
	return &clone, true
}
