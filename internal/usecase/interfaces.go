package usecase

import (
	"context"
	"time"

	"github.com/ivanKorotkov735/cursor/internal/domain"
)

// VerificationCache stores results keyed by the upload digest.
// Implementations must be safe for concurrent use.
type VerificationCache interface {
	Get(ctx context.Context, key string) (*domain.VerificationResult, bool, error)
	Put(ctx context.Context, key string, value domain.VerificationResult, ttl time.Duration) error
}
