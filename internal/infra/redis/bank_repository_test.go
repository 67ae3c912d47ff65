package redis

import (
	"context"
	"testing"
	"time"

	"guidance-service/internal/assessment"
	"guidance-service/internal/infra/memory"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type countingLoader struct {
	memory.BankLoader
	calls int
}

func (l *countingLoader) LoadBank(ctx context.Context) (assessment.Bank, error) {
	l.calls++
	return l.BankLoader.LoadBank(ctx)
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}

func TestBankRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	loader := &countingLoader{BankLoader: memory.NewStaticBankLoader(assessment.DefaultBank())}
	repo := NewBankRepository(client, loader, time.Minute)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
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
	if !mr.Exists(bankKey) {
		t.Fatal("expected bank cached under " + bankKey)
	}
}

func TestBankRepositoryReloadsAfterEviction(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)
	loader := &countingLoader{BankLoader: memory.NewStaticBankLoader(assessment.DefaultBank())}
	repo := NewBankRepository(client, loader, time.Minute)

	ctx := context.Background()
	if _, err := repo.GetBank(ctx); err != nil {
		t.Fatalf("get bank: %v", err)
	}

	mr.Del(bankKey)

	if _, err := repo.GetBank(ctx); err != nil {
		t.Fatalf("get bank after eviction: %v", err)
	}
	if loader.calls != 2 {
		t.Fatalf("expected 2 loader calls, got %d", loader.calls)
	}
}
