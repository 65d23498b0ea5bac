package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"mindcare-api/internal/analysis"
)

const cacheKeyVersion = "v1:"

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return cacheKeyVersion + hex.EncodeToString(sum[:])
}

// loadCached treats every cache failure as a miss.
func (uc *implUseCase) loadCached(ctx context.Context, key string) (analysis.Analysis, bool) {
	if uc.cache == nil {
		return analysis.Analysis{}, false
	}

	raw, ok, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.loadCached.Get: %v", err)
	}
	if err != nil || !ok {
		uc.metrics.CacheLookup(false)
		return analysis.Analysis{}, false
	}

	var a analysis.Analysis
	if err := json.Unmarshal(raw, &a); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.loadCached.Unmarshal: %v", err)
		uc.metrics.CacheLookup(false)
		return analysis.Analysis{}, false
	}
	uc.metrics.CacheLookup(true)
	return a, true
}

func (uc *implUseCase) storeCached(ctx context.Context, key string, a analysis.Analysis) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(a)
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.storeCached.Marshal: %v", err)
		return
	}
	if err := uc.cache.Set(ctx, key, raw); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.storeCached.Set: %v", err)
	}
}
