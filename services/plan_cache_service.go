package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/TripMitra/trip-mitra-backend/logger"
	"github.com/TripMitra/trip-mitra-backend/types"
	"github.com/redis/go-redis/v9"
)

// PlanCacheInterface defines the contract for caching deterministic plan
// results.
type PlanCacheInterface interface {
	Get(ctx context.Context, text string, language types.Language) (*types.PlanResult, bool)
	Set(ctx context.Context, text string, language types.Language, result types.PlanResult)
}

// PlanCacheService caches planner output in Redis. The pipeline is
// deterministic for a given (text, language) pair, so cached entries never go
// stale; the TTL only bounds memory. The cache is best-effort: Redis failures
// degrade to recomputation, never to request errors.
type PlanCacheService struct {
	redis     *redis.Client
	ttl       time.Duration
	keyPrefix string
}

func NewPlanCacheService(redisClient *redis.Client, ttl time.Duration) *PlanCacheService {
	return &PlanCacheService{
		redis:     redisClient,
		ttl:       ttl,
		keyPrefix: "plan:",
	}
}

// Get returns a cached plan result for the input, if present.
func (s *PlanCacheService) Get(ctx context.Context, text string, language types.Language) (*types.PlanResult, bool) {
	data, err := s.redis.Get(ctx, s.cacheKey(text, language)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.GetLogger().Warnw("Plan cache read failed", "error", err)
		}
		return nil, false
	}

	var result types.PlanResult
	if err := json.Unmarshal(data, &result); err != nil {
		logger.GetLogger().Warnw("Plan cache entry corrupt, ignoring", "error", err)
		return nil, false
	}
	return &result, true
}

// Set stores a plan result. Failures are logged and swallowed.
func (s *PlanCacheService) Set(ctx context.Context, text string, language types.Language, result types.PlanResult) {
	data, err := json.Marshal(result)
	if err != nil {
		logger.GetLogger().Warnw("Plan cache marshal failed", "error", err)
		return
	}
	if err := s.redis.Set(ctx, s.cacheKey(text, language), data, s.ttl).Err(); err != nil {
		logger.GetLogger().Warnw("Plan cache write failed", "error", err)
	}
}

// cacheKey hashes the normalized input so arbitrary user text never becomes
// a raw Redis key.
func (s *PlanCacheService) cacheKey(text string, language types.Language) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	sum := sha256.Sum256([]byte(normalized))
	return s.keyPrefix + string(language) + ":" + hex.EncodeToString(sum[:])
}
