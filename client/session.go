package client

import (
	"errors"
	"sync"
)

const storageKeyEmail = "userEmail"

var (
	ErrEmailRequired = errors.New("email is required")
	ErrUnknownEmail  = errors.New("invalid email address")
	ErrNotLoggedIn   = errors.New("no user logged in")
)

// Storage est l'équivalent du localStorage du navigateur
type Storage interface {
	Get(key string) string
	Set(key, value string)
	Remove(key string)
}

type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemoryStorage) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Page est la destination de navigation après connexion
type Page string

const (
	PageLogin Page = "/"
	PageAdmin Page = "/admin"
	PageUser  Page = "/user"
)

type Session struct {
	api   *Client
	store Storage
}

func NewSession(api *Client, store Storage) *Session {
	return &Session{api: api, store: store}
}

// Login résout l'email en utilisateur et route selon son champ role,
// seule source de vérité pour l'autorisation.
func (s *Session) Login(email string) (*User, Page, error) {
	if email == "" {
		return nil, PageLogin, ErrEmailRequired
	}

	user, err := s.api.GetUserByEmail(email)
	if err != nil {
		return nil, PageLogin, ErrUnknownEmail
	}

	s.store.Set(storageKeyEmail, email)

	if user.Role == "admin" {
		return user, PageAdmin, nil
	}
	return user, PageUser, nil
}

func (s *Session) Email() string {
	return s.store.Get(storageKeyEmail)
}

// CurrentUser résout l'email stocké en utilisateur
func (s *Session) CurrentUser() (*User, error) {
	email := s.Email()
	if email == "" {
		return nil, ErrNotLoggedIn
	}
	return s.api.GetUserByEmail(email)
}

func (s *Session) Logout() {
	s.store.Remove(storageKeyEmail)
}
