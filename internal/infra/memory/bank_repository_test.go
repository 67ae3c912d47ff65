package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"guidance-service/internal/assessment"
)

type countingLoader struct {
	BankLoader
	calls int
}

func (l *countingLoader) LoadBank(ctx context.Context) (assessment.Bank, error) {
	l.calls++
	return l.BankLoader.LoadBank(ctx)
}

type failingLoader struct{}

func (failingLoader) LoadBank(context.Context) (assessment.Bank, error) {
	return nil, errors.New("db down")
}

func TestBankRepositoryCachesWithinTTL(t *testing.T) {
	ctx := context.Background()
	loader := &countingLoader{BankLoader: NewStaticBankLoader(assessment.DefaultBank())}
	repo := NewBankRepository(loader, time.Minute)

	for i := 0; i < 5; i++ {
		bank, err := repo.GetBank(ctx)
		if err != nil {
			t.Fatalf("get bank: %v", err)
		}
		if len(bank) == 0 {
			t.Fatal("expected questions in bank")
		}
	}

	if loader.calls != 1 {
		t.Fatalf("expected 1 loader call, got %d", loader.calls)
	}
}

func TestBankRepositoryReloadsAfterExpiry(t *testing.T) {
	ctx := context.Background()
	loader := &countingLoader{BankLoader: NewStaticBankLoader(assessment.DefaultBank())}
	repo := NewBankRepository(loader, time.Minute)

	at := time.Now()
	repo.clock = func() time.Time { return at }

	if _, err := repo.GetBank(ctx); err != nil {
		t.Fatalf("get bank: %v", err)
	}

	// jitter adds at most 10%, so two TTLs later the cache has expired
	at = at.Add(2 * time.Minute)
	if _, err := repo.GetBank(ctx); err != nil {
		t.Fatalf("get bank after expiry: %v", err)
	}

	if loader.calls != 2 {
		t.Fatalf("expected 2 loader calls, got %d", loader.calls)
	}
}

func TestBankRepositoryPropagatesLoadError(t *testing.T) {
	repo := NewBankRepository(failingLoader{}, time.Minute)

	if _, err := repo.GetBank(context.Background()); err == nil {
		t.Fatal("expected loader error to propagate")
	}
}
