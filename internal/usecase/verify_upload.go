package usecase

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/ivanKorotkov735/cursor/internal/domain"
)

type VerifyUploadRequest struct {
	Data []byte
}

// VerifyUpload scores uploaded bytes and optionally caches the result
// by digest. The score is a pure function of the bytes, so a cache hit
// is indistinguishable from a recompute; the cache is advisory and its
// failures never fail the request.
type VerifyUpload struct {
	Engine *ScoreEngineV0
	Cache  VerificationCache
	TTL    time.Duration
}

func (uc *VerifyUpload) Execute(ctx context.Context, req VerifyUploadRequest) (*domain.VerificationResult, error) {
	engine := uc.Engine
	if engine == nil {
		engine = &ScoreEngineV0{}
	}
	eval, err := engine.Evaluate(req.Data)
	if err != nil {
		return nil, err
	}
	key := hex.EncodeToString(eval.Digest[:])
	if uc.Cache != nil {
		if cached, ok, err := uc.Cache.Get(ctx, key); err == nil && ok {
			return cached, nil
		}
		_ = uc.Cache.Put(ctx, key, eval.Result, uc.TTL)
	}
	result := eval.Result
	return &result, nil
}
