package models

// SentimentLabel is the polarity reported by a text classifier
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "POSITIVE"
	SentimentNegative SentimentLabel = "NEGATIVE"
)

// SentimentResult is one classification of a team description
type SentimentResult struct {
	Label SentimentLabel `json:"label"`
	Score float64        `json:"score"` // 0-1, confidence in Label
}

// ScorerState is the readiness of a sentiment scorer
type ScorerState int

const (
	ScorerUnloaded ScorerState = iota
	ScorerLoading
	ScorerLoaded
	ScorerErrored
)

func (s ScorerState) String() string {
	switch s {
	case ScorerLoading:
		return "loading"
	case ScorerLoaded:
		return "loaded"
	case ScorerErrored:
		return "error"
	default:
		return "unloaded"
	}
}

// ScorerStatus is a point-in-time view of scorer readiness
type ScorerStatus struct {
	State ScorerState
	Err   error
}

func (s ScorerStatus) Loading() bool { return s.State == ScorerLoading }
func (s ScorerStatus) Loaded() bool  { return s.State == ScorerLoaded }
