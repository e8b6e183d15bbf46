package session

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bassista/tourdesk/internal/cache"
	"github.com/bassista/tourdesk/internal/config"
	"github.com/bassista/tourdesk/internal/repository"
)

// MemoryStore keeps values for the process lifetime.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// FileStore serves values from an in-memory cache that is flushed to a JSON file
// periodically and reloaded when the file changes on disk.
type FileStore struct {
	store *cache.Store
	done  <-chan struct{}
}

// OpenFileStore loads path and starts the watcher and persistence scheduler.
// Both stop when ctx is cancelled; Wait blocks until the final flush is done.
func OpenFileStore(ctx context.Context, path string, interval time.Duration) (*FileStore, error) {
	repo, err := repository.NewJSONRepository(path)
	if err != nil {
		return nil, err
	}
	doc, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	store := cache.NewStore(*doc)
	if err := repo.StartWatcher(ctx, store); err != nil {
		return nil, err
	}
	done := cache.StartPersistenceScheduler(ctx, store, repo, interval)
	return &FileStore{store: store, done: done}, nil
}

func (f *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.store.Value(key)
	return v, ok, nil
}

func (f *FileStore) Set(_ context.Context, key, value string) error {
	f.store.SetValue(key, value)
	return nil
}

func (f *FileStore) Delete(_ context.Context, key string) error {
	f.store.DeleteValue(key)
	return nil
}

// Wait blocks until the persistence scheduler has flushed and exited.
func (f *FileStore) Wait() {
	<-f.done
}

// Open builds the store selected by cfg. The returned close function releases
// backend resources; for the file backend, cancel ctx first so the final flush runs.
func Open(ctx context.Context, cfg config.SessionConfig) (KVStore, func() error, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", config.SessionBackendMemory:
		return NewMemoryStore(), func() error { return nil }, nil
	case config.SessionBackendFile:
		fs, err := OpenFileStore(ctx, cfg.FilePath, cfg.PersistInterval)
		if err != nil {
			return nil, nil, fmt.Errorf("open session file: %w", err)
		}
		return fs, func() error { fs.Wait(); return nil }, nil
	case config.SessionBackendSQLite:
		path := cfg.FilePath
		if filepath.Ext(path) == ".json" {
			path = strings.TrimSuffix(path, ".json") + ".db"
		}
		repo, err := repository.OpenSQLite(ctx, path)
		if err != nil {
			return nil, nil, fmt.Errorf("open session db: %w", err)
		}
		return repo, repo.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
}
