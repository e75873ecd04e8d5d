package domain

// ModelVersion identifies the scoring logic in effect. The baseline
// engine is a deterministic placeholder, not a real model.
const ModelVersion = "baseline-0.0.1"

type Verdict string

const (
	VerdictBlock  Verdict = "block"
	VerdictReview Verdict = "review"
	VerdictPass   Verdict = "pass"
)

func (v Verdict) Valid() bool {
	switch v {
	case VerdictBlock, VerdictReview, VerdictPass:
		return true
	}
	return false
}

// VerificationResult is the response entity for a single verification.
// It has no identity beyond the request that produced it.
type VerificationResult struct {
	ModelVersion string   `json:"model_version"`
	ScoreHuman   float64  `json:"score_human"`
	Verdict      Verdict  `json:"verdict"`
	Explanations []string `json:"explanations,omitempty"`
}

// NewVerificationResult validates the score and verdict before the
// result can leave the scoring layer.
func NewVerificationResult(score float64, verdict Verdict, explanations []string) (VerificationResult, error) {
	if score < 0 || score > 1 {
		return VerificationResult{}, ErrInvalidResult
	}
	if !verdict.Valid() {
		return VerificationResult{}, ErrInvalidResult
	}
	return VerificationResult{
		ModelVersion: ModelVersion,
		ScoreHuman:   score,
		Verdict:      verdict,
		Explanations: explanations,
	}, nil
}
