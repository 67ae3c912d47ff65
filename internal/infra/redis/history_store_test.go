package redis

import (
	"context"
	"testing"
	"time"

	"guidance-service/internal/domain"
	miniredis "github.com/alicebob/miniredis/v2"
)

func TestHistoryStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewHistoryStore(newClient(mr))
	ctx := context.Background()

	first := domain.HistoryEntry{
		UserID: "u1",
		Grade:  9,
		Recommendations: []domain.RankedResult{
			{Name: "Commerce", MatchPercent: 82, Careers: []string{"CA", "Banker"}},
		},
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	second := domain.HistoryEntry{
		UserID: "u1",
		Grade:  10,
		Recommendations: []domain.RankedResult{
			{Name: "Science (PCM)", MatchPercent: 91, Careers: []string{"Engineering"}},
		},
		CreatedAt: time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
	}

	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := store.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Grade != 10 || entries[1].Grade != 9 {
		t.Fatalf("expected newest first, got %+v", entries)
	}
	if entries[0].Recommendations[0].Name != "Science (PCM)" {
		t.Fatalf("recommendations lost in round trip: %+v", entries[0])
	}
}

func TestHistoryStoreEmptyList(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewHistoryStore(newClient(mr))

	entries, err := store.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty history, got %+v", entries)
	}
}
