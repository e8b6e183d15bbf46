package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bassista/tourdesk/internal/repository"
)

func createTestDocument() repository.SessionDocument {
	return repository.SessionDocument{
		Metadata: repository.Metadata{LastUpdate: 1000},
		Values:   map[string]string{"logged_in": "true", "mobile": "9876543210"},
	}
}

func TestNewStore(t *testing.T) {
	doc := createTestDocument()
	store := NewStore(doc)

	if store.GetLastUpdate() != doc.Metadata.LastUpdate {
		t.Errorf("expected lastUpdate %d, got %d", doc.Metadata.LastUpdate, store.GetLastUpdate())
	}
	if store.IsDirty() {
		t.Error("expected store to not be dirty initially")
	}

	doc.Values["logged_in"] = "false"
	if v, _ := store.Value("logged_in"); v != "true" {
		t.Error("store must not share the caller's map")
	}
}

func TestNewStore_NilValues(t *testing.T) {
	store := NewStore(repository.SessionDocument{})
	store.SetValue("k", "v")
	if v, ok := store.Value("k"); !ok || v != "v" {
		t.Errorf("expected k=v, got %q %v", v, ok)
	}
}

func TestStore_SetValueMarksDirtyOnlyOnChange(t *testing.T) {
	store := NewStore(createTestDocument())

	store.SetValue("logged_in", "true")
	if store.IsDirty() {
		t.Error("setting the same value must not mark dirty")
	}

	store.SetValue("logged_in", "false")
	if !store.IsDirty() {
		t.Error("expected dirty after change")
	}
}

func TestStore_DeleteValue(t *testing.T) {
	store := NewStore(createTestDocument())

	store.DeleteValue("missing")
	if store.IsDirty() {
		t.Error("deleting a missing key must not mark dirty")
	}

	store.DeleteValue("mobile")
	if _, ok := store.Value("mobile"); ok {
		t.Error("expected mobile to be deleted")
	}
	if !store.IsDirty() {
		t.Error("expected dirty after delete")
	}
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	store := NewStore(createTestDocument())

	snap, err := store.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	snap.Values["logged_in"] = "false"

	if v, _ := store.Value("logged_in"); v != "true" {
		t.Error("snapshot must not alias store data")
	}
}

func TestStore_Replace(t *testing.T) {
	store := NewStore(createTestDocument())
	store.MarkDirty()

	newDoc := repository.SessionDocument{Metadata: repository.Metadata{LastUpdate: 2000}}
	if err := store.Replace(newDoc); err != nil {
		t.Fatalf("replace: %v", err)
	}

	if store.IsDirty() {
		t.Error("expected clean after replace")
	}
	if store.GetLastUpdate() != 2000 {
		t.Errorf("expected lastUpdate 2000, got %d", store.GetLastUpdate())
	}
	if _, ok := store.Value("logged_in"); ok {
		t.Error("expected values to be replaced")
	}
}

func TestStore_Concurrency(t *testing.T) {
	store := NewStore(createTestDocument())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			store.SetValue(fmt.Sprintf("k%d", i), "v")
		}(i)
		go func() {
			defer wg.Done()
			_, _ = store.Snapshot()
		}()
		go func(i int) {
			defer wg.Done()
			store.DeleteValue(fmt.Sprintf("k%d", i-1))
		}(i)
	}
	wg.Wait()
}

// mockSaver implements repository.Saver for testing
type mockSaver struct {
	mu        sync.Mutex
	savedDocs []*repository.SessionDocument
	saveErr   error
}

func (m *mockSaver) Save(ctx context.Context, doc *repository.SessionDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedDocs = append(m.savedDocs, doc)
	return nil
}

func (m *mockSaver) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.savedDocs)
}

func TestStartPersistenceScheduler_PeriodicFlush(t *testing.T) {
	store := NewStore(createTestDocument())
	store.MarkDirty()

	saver := &mockSaver{}
	ctx, cancel := context.WithCancel(context.Background())

	done := StartPersistenceScheduler(ctx, store, saver, 20*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done

	if saver.Count() < 1 {
		t.Error("expected at least one save operation")
	}
	if store.IsDirty() {
		t.Error("expected store to be clean after flush")
	}
	if store.GetLastUpdate() <= 1000 {
		t.Error("expected lastUpdate to advance after flush")
	}
}

func TestStartPersistenceScheduler_NotDirtySkipsFlush(t *testing.T) {
	store := NewStore(createTestDocument())
	saver := &mockSaver{}
	ctx, cancel := context.WithCancel(context.Background())

	done := StartPersistenceScheduler(ctx, store, saver, 20*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	cancel()
	<-done

	if saver.Count() > 0 {
		t.Error("expected no saves when store is not dirty")
	}
}

func TestStartPersistenceScheduler_SaveError(t *testing.T) {
	store := NewStore(createTestDocument())
	store.MarkDirty()

	saver := &mockSaver{saveErr: errors.New("disk full")}
	ctx, cancel := context.WithCancel(context.Background())

	done := StartPersistenceScheduler(ctx, store, saver, 20*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	cancel()
	<-done

	if !store.IsDirty() {
		t.Error("expected store to remain dirty after save error")
	}
}

func TestStartPersistenceScheduler_FinalFlushOnShutdown(t *testing.T) {
	store := NewStore(createTestDocument())
	saver := &mockSaver{}
	ctx, cancel := context.WithCancel(context.Background())

	done := StartPersistenceScheduler(ctx, store, saver, 10*time.Second)
	store.SetValue("logged_in", "false")
	cancel()
	<-done

	if saver.Count() != 1 {
		t.Errorf("expected one final flush on shutdown, got %d", saver.Count())
	}
}
