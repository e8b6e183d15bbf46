package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bassista/tourdesk/internal/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
)

// CacheStore defines the interface for cache operations needed by the watcher callback.
type CacheStore interface {
	GetLastUpdate() int64
	IsDirty() bool
	Snapshot() (SessionDocument, error)
	Replace(doc SessionDocument) error
}

// JSONRepository handles disk persistence and watching of the session file.
type JSONRepository struct {
	path      string
	dir       string
	base      string
	validator *validator.Validate
	debounce  time.Duration
	mu        sync.Mutex
}

// NewJSONRepository creates a repository for the given JSON file path.
// It returns the repository interface to avoid leaking implementation details.
func NewJSONRepository(path string) (Repository, error) {
	if path == "" {
		return nil, errors.New("session file path is required")
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if dir == "" || dir == "." {
		dir = "."
	}

	return &JSONRepository{
		path:      path,
		dir:       dir,
		base:      base,
		validator: validator.New(),
		debounce:  200 * time.Millisecond,
	}, nil
}

// Load reads the JSON file, parses and validates it.
// A missing file yields an empty document.
func (r *JSONRepository) Load(ctx context.Context) (*SessionDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadUnlocked()
}

func (r *JSONRepository) loadUnlocked() (*SessionDocument, error) {
	file, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := &SessionDocument{}
		doc.ApplyDefaults()
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open session file: %w", err)
	}
	defer file.Close()

	var doc SessionDocument
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}

	doc.ApplyDefaults()

	if err := r.validator.Struct(&doc); err != nil {
		return nil, fmt.Errorf("validate session file: %w", err)
	}

	return &doc, nil
}

// Save validates and writes the document atomically to disk.
func (r *JSONRepository) Save(ctx context.Context, doc *SessionDocument) error {
	if doc == nil {
		return errors.New("document is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.validator.Struct(doc); err != nil {
		return fmt.Errorf("validate before save: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveUnlocked(doc)
}

func (r *JSONRepository) saveUnlocked(doc *SessionDocument) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	tmpFile, err := os.CreateTemp(r.dir, r.base+".tmp-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
	}()

	if _, err := tmpFile.Write(payload); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpFile.Name(), r.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	return nil
}

// StartWatcher reloads the cache when the session file is edited outside the process.
// It watches the parent directory so temp+rename replacements are observed, filters
// events by basename and debounces bursts into one reload. Cancel ctx to stop it.
func (r *JSONRepository) StartWatcher(ctx context.Context, cacheStore CacheStore) error {
	if cacheStore == nil {
		return errors.New("cache store is required")
	}
	onChange := r.MakeWatcherCallback(cacheStore)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(r.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch dir: %w", err)
	}

	log := logger.WithComponent("session-file")
	go func() {
		defer watcher.Close()

		var debounce *time.Timer
		schedule := func() {
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(r.debounce, onChange)
		}

		for {
			select {
			case <-ctx.Done():
				if debounce != nil {
					debounce.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != r.base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Chmod|fsnotify.Remove|fsnotify.Rename) != 0 {
					schedule()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warnf("watcher error: %v", err)
			}
		}
	}()

	return nil
}

// MakeWatcherCallback returns the reload step run after a file change.
// The cache is replaced only when the file is at least as new, the cache holds no
// unsaved changes, and the content actually differs.
func (r *JSONRepository) MakeWatcherCallback(cacheStore CacheStore) func() {
	log := logger.WithComponent("session-file")
	return func() {
		diskDoc, err := r.Load(context.Background())
		if err != nil {
			log.Errorf("watch reload failed: %v", err)
			return
		}
		cacheLastUpdate := cacheStore.GetLastUpdate()
		diskLastUpdate := diskDoc.Metadata.LastUpdate

		if diskLastUpdate < cacheLastUpdate {
			log.Debugf("disk version is older than cache: disk=%d cache=%d", diskLastUpdate, cacheLastUpdate)
			return
		}

		if cacheStore.IsDirty() {
			// pending changes are flushed by the persistence scheduler
			log.Warn("disk data is newer but cache is dirty; skipping reload")
			return
		}

		if diskLastUpdate == cacheLastUpdate {
			snapshot, err := cacheStore.Snapshot()
			if err != nil {
				log.Errorf("cache reload error: failed to get snapshot: %v", err)
				return
			}
			if AreDocumentsEqual(&snapshot, diskDoc) {
				return
			}
		}
		if err := cacheStore.Replace(*diskDoc); err != nil {
			log.Errorf("cache reload error: %v", err)
			return
		}
		log.Info("session reloaded from newer disk version")
	}
}
