package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

const verdictTTL = time.Hour

// ScamVerdictCache caches classifier verdicts in Redis, keyed by message
// hash. Key format: scam:<sha256(message)>
type ScamVerdictCache struct {
	client *redis.Client
}

func NewScamVerdictCache(client *redis.Client) *ScamVerdictCache {
	return &ScamVerdictCache{client: client}
}

// Get returns the cached verdict for a message, if any.
func (c *ScamVerdictCache) Get(ctx context.Context, message string) (*domain.ScamVerdict, bool, error) {
	raw, err := c.client.Get(ctx, c.key(message)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("verdict get: %w", err)
	}

	var verdict domain.ScamVerdict
	if err := json.Unmarshal(raw, &verdict); err != nil {
		return nil, false, fmt.Errorf("verdict decode: %w", err)
	}
	return &verdict, true, nil
}

// Put stores a verdict (expires after verdictTTL).
func (c *ScamVerdictCache) Put(ctx context.Context, message string, verdict *domain.ScamVerdict) error {
	raw, err := json.Marshal(verdict)
	if err != nil {
		return fmt.Errorf("verdict encode: %w", err)
	}
	return c.client.Set(ctx, c.key(message), raw, verdictTTL).Err()
}

func (c *ScamVerdictCache) key(message string) string {
	sum := sha256.Sum256([]byte(message))
	return "scam:" + hex.EncodeToString(sum[:])
}
