package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"guidance-service/internal/assessment"
	"guidance-service/internal/infra/memory"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const bankKey = "assessment:bank"

// BankRepository caches the question bank as a JSON blob in Redis and falls
// back to a loader on cache miss.
type BankRepository struct {
	client *redis.Client
	loader memory.BankLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewBankRepository(client *redis.Client, loader memory.BankLoader, ttl time.Duration) *BankRepository {
	return &BankRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *BankRepository) GetBank(ctx context.Context) (assessment.Bank, error) {
	if bank, ok := r.cached(ctx); ok {
		return bank, nil
	}

	result, err, _ := r.sf.Do(bankKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if bank, ok := r.cached(ctx); ok {
			return bank, nil
		}

		bank, err := r.loader.LoadBank(ctx)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(bank)
		if err != nil {
			return nil, err
		}
		// best-effort cache fill
		_ = r.client.Set(ctx, bankKey, data, r.ttlWithJitter()).Err()
		return bank, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(assessment.Bank), nil
}

func (r *BankRepository) cached(ctx context.Context) (assessment.Bank, bool) {
	data, err := r.client.Get(ctx, bankKey).Bytes()
	if err != nil || len(data) == 0 {
		return nil, false
	}
	var bank assessment.Bank
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, false
	}
	return bank, true
}

func (r *BankRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
