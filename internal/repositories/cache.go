package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ledgerly/ledger-api/internal/logger"
	"github.com/ledgerly/ledger-api/internal/models"
)

// LedgerCacheRepository caches per-user ledger summaries in Redis
type LedgerCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached summaries
}

// NewLedgerCacheRepository creates a new repository instance with the given TTL
func NewLedgerCacheRepository(client *redis.Client, expiration time.Duration) *LedgerCacheRepository {
	return &LedgerCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func summaryKey(userID uuid.UUID) string {
	return fmt.Sprintf("ledger_summary:%s", userID)
}

// Get fetches a cached summary for the user
func (r *LedgerCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.LedgerSummary, error) {
	key := summaryKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("ledger summary not found in cache for user %s", userID)
		}
		return nil, err
	}

	var summary models.LedgerSummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", summary,
		"error", nil,
	)

	return &summary, nil
}

// Set stores a summary for the user with the configured TTL
func (r *LedgerCacheRepository) Set(ctx context.Context, userID uuid.UUID, summary *models.LedgerSummary) error {
	key := summaryKey(userID)

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", string(data),
		"error", err,
	)

	return err
}

// Invalidate drops the cached summary for the user, if any
func (r *LedgerCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	key := summaryKey(userID)

	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	return err
}
