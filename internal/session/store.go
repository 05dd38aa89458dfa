// Package session keeps the account registry and the active-session
// pointer.
//
// Passwords are stored and compared in clear text. That mirrors the
// storefront's prototype-grade contract; whether to harden it is an open
// question deliberately left unanswered here, because the persisted
// registry format is part of the behavior under test.
package session

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fairyhunter13/minimal-shop/internal/model"
	"github.com/fairyhunter13/minimal-shop/internal/obs"
	"github.com/fairyhunter13/minimal-shop/internal/storage"
)

const (
	usersKey       = "minimal_users"
	currentUserKey = "minimal_current_user"
)

// Domain validation failures returned by Signup and Login. The caller
// decides user-facing messaging.
var (
	ErrDuplicateAccount   = errors.New("an account with this email already exists")
	ErrAccountNotFound    = errors.New("no account found with this email")
	ErrInvalidCredentials = errors.New("incorrect password")
)

// Store holds the credential registry, keyed by lowercased email, and at
// most one active account.
type Store struct {
	mu       sync.Mutex
	registry map[string]model.Credential
	current  *model.Account
	kv       storage.KV
}

// New restores the registry and the persisted session pointer. Corrupt or
// unreadable data for either key is treated as absent; the session pointer
// is accepted without re-validating the password.
func New(kv storage.KV) *Store {
	s := &Store{registry: make(map[string]model.Credential), kv: kv}
	if raw, ok, err := kv.Get(usersKey); err != nil {
		obs.Logger.Error("users_load_failed", zap.Error(err))
	} else if ok {
		var reg map[string]model.Credential
		if err := json.Unmarshal([]byte(raw), &reg); err != nil {
			obs.Logger.Error("users_corrupt", zap.Error(err))
		} else if reg != nil {
			s.registry = reg
		}
	}
	if raw, ok, err := kv.Get(currentUserKey); err != nil {
		obs.Logger.Error("session_load_failed", zap.Error(err))
	} else if ok {
		var acct model.Account
		if err := json.Unmarshal([]byte(raw), &acct); err != nil {
			obs.Logger.Error("session_corrupt", zap.Error(err))
		} else {
			s.current = &acct
		}
	}
	return s
}

// Signup registers a new account and makes it the active session. The
// email is normalized to lowercase before the duplicate check.
func (s *Store) Signup(email, password, name string) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	emailLower := strings.ToLower(email)
	if _, exists := s.registry[emailLower]; exists {
		return model.Account{}, ErrDuplicateAccount
	}
	acct := model.Account{
		ID:        uuid.NewString(),
		Email:     emailLower,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	s.registry[emailLower] = model.Credential{Account: acct, Password: password}
	s.persistRegistryLocked()
	s.setCurrentLocked(acct)
	return acct, nil
}

// Login validates the password for an existing account and makes it the
// active session.
func (s *Store) Login(email, password string) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.registry[strings.ToLower(email)]
	if !ok {
		return model.Account{}, ErrAccountNotFound
	}
	if rec.Password != password {
		return model.Account{}, ErrInvalidCredentials
	}
	s.setCurrentLocked(rec.Account)
	return rec.Account, nil
}

// Logout clears the active session and its persisted record.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if err := s.kv.Remove(currentUserKey); err != nil {
		obs.Logger.Error("session_remove_failed", zap.Error(err))
	}
}

// Current reports the authenticated account, if any.
func (s *Store) Current() (model.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.Account{}, false
	}
	return *s.current, true
}

func (s *Store) setCurrentLocked(acct model.Account) {
	s.current = &acct
	b, err := json.Marshal(acct)
	if err != nil {
		obs.Logger.Error("session_encode_failed", zap.Error(err))
		return
	}
	if err := s.kv.Set(currentUserKey, string(b)); err != nil {
		obs.Logger.Error("session_persist_failed", zap.Error(err))
	}
}

func (s *Store) persistRegistryLocked() {
	b, err := json.Marshal(s.registry)
	if err != nil {
		obs.Logger.Error("users_encode_failed", zap.Error(err))
		return
	}
	if err := s.kv.Set(usersKey, string(b)); err != nil {
		obs.Logger.Error("users_persist_failed", zap.Error(err))
	}
}
