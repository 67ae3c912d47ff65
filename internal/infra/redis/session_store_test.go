package redis

import (
	"testing"
	"time"

	"guidance-service/internal/assessment"
	miniredis "github.com/alicebob/miniredis/v2"
)

func TestSessionStoreSetsAndClearsKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewSessionStore(newClient(mr), time.Minute)
	session := assessment.NewSession("s1", "u1", 10, nil, nil)

	store.Put(session)

	got, ok := store.Get("s1")
	if !ok || got != session {
		t.Fatalf("expected session back, got %v ok=%v", got, ok)
	}
	if val, err := mr.Get("assessment:session:s1"); err != nil || val != "u1" {
		t.Fatalf("expected liveness marker for u1, got %q err=%v", val, err)
	}

	store.Delete("s1")
	if _, ok := store.Get("s1"); ok {
		t.Fatal("expected session gone after Delete")
	}
	if mr.Exists("assessment:session:s1") {
		t.Fatal("expected liveness marker cleared")
	}
}
