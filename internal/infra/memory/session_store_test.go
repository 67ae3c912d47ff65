package memory

import (
	"testing"

	"guidance-service/internal/assessment"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	if _, ok := store.Get("s1"); ok {
		t.Fatal("expected miss on empty store")
	}

	session := assessment.NewSession("s1", "u1", 10, nil, nil)
	store.Put(session)

	got, ok := store.Get("s1")
	if !ok {
		t.Fatal("expected session after Put")
	}
	if got != session {
		t.Fatal("expected the same session instance back")
	}

	store.Delete("s1")
	if _, ok := store.Get("s1"); ok {
		t.Fatal("expected miss after Delete")
	}
}
