package repository

import "context"

// Saver persists a SessionDocument.
// Small interface used by background jobs like the persistence scheduler.
type Saver interface {
	Save(ctx context.Context, doc *SessionDocument) error
}

// Repository abstracts persistence and watching of the session file.
// JSONRepository implements this interface.
type Repository interface {
	Saver
	Load(ctx context.Context) (*SessionDocument, error)
	StartWatcher(ctx context.Context, cacheStore CacheStore) error
}
