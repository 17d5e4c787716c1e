package enquiry

import (
	"testing"
	"time"

	"github.com/villamar/stay-enquiries/internal/attachments"
	"github.com/villamar/stay-enquiries/internal/domain"
)

func newTestSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		State:     domain.FlowSelectingDates,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestStore_PutAndGet(t *testing.T) {
	store := NewStore(time.Hour, time.Hour, nil)
	defer store.Close()

	store.Put(newTestSession("s1"))

	session, ok := store.Get("s1")
	if !ok {
		t.Fatal("Expected the session to be present")
	}
	if session.ID != "s1" {
		t.Fatalf("Expected session s1, got %s", session.ID)
	}

	if _, ok := store.Get("missing"); ok {
		t.Fatal("Expected a miss for an unknown ID")
	}
}

func TestStore_Remove(t *testing.T) {
	store := NewStore(time.Hour, time.Hour, nil)
	defer store.Close()

	store.Put(newTestSession("s1"))
	store.Remove("s1")

	if _, ok := store.Get("s1"); ok {
		t.Fatal("Expected the session gone after Remove")
	}
}

func TestStore_ExpiryEvictsAndFiresCallback(t *testing.T) {
	evicted := make(chan *Session, 1)
	store := NewStore(50*time.Millisecond, 10*time.Millisecond, func(s *Session) {
		evicted <- s
	})
	defer store.Close()

	store.Put(newTestSession("s1"))

	select {
	case s := <-evicted:
		if s.ID != "s1" {
			t.Fatalf("Expected s1 evicted, got %s", s.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected the session to expire")
	}

	if _, ok := store.Get("s1"); ok {
		t.Fatal("Expected the expired session gone")
	}
}

func TestStore_EvictionReleasesStagedDocuments(t *testing.T) {
	mgr := attachments.New(1<<20, nil)
	released := make(chan *Session, 1)
	store := NewStore(50*time.Millisecond, 10*time.Millisecond, func(s *Session) {
		s.Release(mgr)
		released <- s
	})
	defer store.Close()

	session := newTestSession("s1")
	session.Form.Slots = []domain.GuestSlot{{ID: "slot-main", Index: 0}}
	ref, err := mgr.Attach(&session.Form, "slot-main", "passport.jpg", jpegBytes)
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	store.Put(session)

	select {
	case <-released:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected the session to expire")
	}

	if ref.Data != nil {
		t.Fatal("Expected the staged document released on eviction")
	}
}

func TestStore_GetRefreshesTTL(t *testing.T) {
	store := NewStore(120*time.Millisecond, 10*time.Millisecond, nil)
	defer store.Close()

	store.Put(newTestSession("s1"))

	// Keep touching the session well past the original TTL.
	deadline := time.Now().Add(400 * time.Millisecond)
	for time.Now().Before(deadline) {
		if _, ok := store.Get("s1"); !ok {
			t.Fatal("An actively touched session must not expire")
		}
		time.Sleep(25 * time.Millisecond)
	}
}
