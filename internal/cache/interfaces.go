package cache

import "github.com/bassista/tourdesk/internal/repository"

// ValueStore is the key/value API the session uses.
type ValueStore interface {
	Value(key string) (string, bool)
	SetValue(key, value string)
	DeleteValue(key string)
}

// PersistableStore is the cache API needed by the persistence scheduler.
type PersistableStore interface {
	IsDirty() bool
	Snapshot() (repository.SessionDocument, error)
	ClearDirty()
	SetLastUpdate(ts int64)
}

// AppStore is the full contract: session values, persistence scheduler and file watcher.
type AppStore interface {
	repository.CacheStore
	ValueStore
	PersistableStore
}
