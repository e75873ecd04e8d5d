package usecase

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/ivanKorotkov735/cursor/internal/domain"
)

// Threshold bands over the normalized score. Both comparisons are
// strict less-than, so a score of exactly 0.60 lands in "pass".
const (
	blockThreshold  = 0.30
	reviewThreshold = 0.60
)

// Maximum value of the 16-bit integer taken from the digest prefix.
const scoreDenominator = 65535.0

const placeholderExplanation = "Deterministic placeholder score for prototype"

type Evaluation struct {
	Digest [sha256.Size]byte
	Result domain.VerificationResult
}

// ScoreEngineV0 derives a pseudo-score from the SHA-256 digest of the
// uploaded bytes: the first two digest bytes, read as a big-endian
// 16-bit integer, normalized into [0, 1]. Identical bytes always yield
// the identical score and verdict.
type ScoreEngineV0 struct{}

func (e *ScoreEngineV0) Evaluate(data []byte) (Evaluation, error) {
	digest := sha256.Sum256(data)
	score := scoreFromDigest(digest)
	result, err := domain.NewVerificationResult(score, verdictFor(score), []string{placeholderExplanation})
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluation{Digest: digest, Result: result}, nil
}

func scoreFromDigest(digest [sha256.Size]byte) float64 {
	raw := binary.BigEndian.Uint16(digest[:2])
	return float64(raw) / scoreDenominator
}

func verdictFor(score float64) domain.Verdict {
	switch {
	case score < blockThreshold:
		return domain.VerdictBlock
	case score < reviewThreshold:
		return domain.VerdictReview
	default:
		return domain.VerdictPass
	}
}
