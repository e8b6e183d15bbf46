// Package session holds the admin login flag behind a small key/value store.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bassista/tourdesk/internal/logger"
)

const (
	keyLoggedIn = "logged_in"
	keyMobile   = "mobile"
	keyLoginAt  = "login_at"
)

// KVStore is the storage contract shared by the memory, file and sqlite backends.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Info describes the current session.
type Info struct {
	Authenticated bool      `json:"authenticated"`
	Mobile        string    `json:"mobile,omitempty"`
	LoginAt       time.Time `json:"login_at,omitzero"`
}

// Session is the admin-authenticated flag.
type Session struct {
	mu    sync.Mutex
	store KVStore
}

func New(store KVStore) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Session{store: store}
}

// IsAuthenticated reports the stored flag. A store error counts as logged out.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok, err := s.store.Get(ctx, keyLoggedIn)
	if err != nil {
		logger.WithComponent("session").Errorf("read session: %v", err)
		return false
	}
	return ok && v == "true"
}

// Login marks the session authenticated for mobile.
func (s *Session) Login(ctx context.Context, mobile string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Set(ctx, keyMobile, mobile); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := s.store.Set(ctx, keyLoginAt, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := s.store.Set(ctx, keyLoggedIn, "true"); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	logger.WithComponent("session").Infof("admin %s logged in", maskMobile(mobile))
	return nil
}

// Logout clears every session key.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var errs []error
	for _, key := range []string{keyLoggedIn, keyMobile, keyLoginAt} {
		if err := s.store.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	logger.WithComponent("session").Info("admin logged out")
	return nil
}

// Info returns the current session details.
func (s *Session) Info(ctx context.Context) Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	var info Info
	if v, ok, err := s.store.Get(ctx, keyLoggedIn); err != nil || !ok || v != "true" {
		return info
	}
	info.Authenticated = true
	if v, ok, _ := s.store.Get(ctx, keyMobile); ok {
		info.Mobile = v
	}
	if v, ok, _ := s.store.Get(ctx, keyLoginAt); ok {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			info.LoginAt = ts
		}
	}
	return info
}

func maskMobile(m string) string {
	if len(m) <= 4 {
		return m
	}
	return "******" + m[len(m)-4:]
}
