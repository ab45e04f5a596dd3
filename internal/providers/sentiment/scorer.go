package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/cricketiq/prediction-api/internal/models"
)

const (
	// DefaultURL is the hosted sentiment classifier
	DefaultURL = "https://api-inference.huggingface.co/models/distilbert-base-uncased-finetuned-sst-2-english"

	defaultRateLimit = 5.0
	defaultBurst     = 10

	warmupText    = "The team played well."
	warmupTimeout = 2 * time.Minute
)

// ErrScorerNotLoaded is returned by Score before the model is ready
var ErrScorerNotLoaded = errors.New("sentiment model not loaded yet")

// Scorer is a remote text-classification client with a readiness lifecycle:
// unloaded -> loading -> loaded | errored, and errored -> loading on retry.
type Scorer struct {
	url        string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.SugaredLogger

	mu    sync.Mutex
	state models.ScorerState
	err   error
}

// Option configures the scorer
type Option func(*Scorer)

// WithURL sets the classifier endpoint
func WithURL(url string) Option {
	return func(s *Scorer) {
		s.url = url
	}
}

// WithToken sets the bearer token
func WithToken(token string) Option {
	return func(s *Scorer) {
		s.token = token
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scorer) {
		s.httpClient = client
	}
}

// WithRateLimit sets custom rate limiting
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Scorer) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scorer) {
		s.logger = logger.Sugar()
	}
}

// NewScorer creates an unloaded scorer
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		url:        DefaultURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
		logger:     zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Status returns the current readiness
func (s *Scorer) Status() models.ScorerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.ScorerStatus{State: s.state, Err: s.err}
}

// Initialize starts loading the model in the background. Calls while loading
// or loaded are no-ops; a call after a failure retries.
func (s *Scorer) Initialize() {
	s.mu.Lock()
	if s.state == models.ScorerLoading || s.state == models.ScorerLoaded {
		s.mu.Unlock()
		return
	}
	s.state = models.ScorerLoading
	s.err = nil
	s.mu.Unlock()

	go s.load()
}

func (s *Scorer) load() {
	ctx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
	defer cancel()

	s.logger.Infow("Loading sentiment model", "url", s.url)
	_, err := s.classify(ctx, warmupText, true)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = models.ScorerErrored
		s.err = err
		s.logger.Errorw("Sentiment model failed to load", "error", err)
		return
	}
	s.state = models.ScorerLoaded
	s.logger.Infow("Sentiment model loaded")
}

// Score classifies text and returns the most likely label
func (s *Scorer) Score(ctx context.Context, text string) (models.SentimentResult, error) {
	if !s.Status().Loaded() {
		return models.SentimentResult{}, ErrScorerNotLoaded
	}
	return s.classify(ctx, text, false)
}

type classifyRequest struct {
	Inputs  string          `json:"inputs"`
	Options *classifyOption `json:"options,omitempty"`
}

type classifyOption struct {
	WaitForModel bool `json:"wait_for_model"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (s *Scorer) classify(ctx context.Context, text string, waitForModel bool) (models.SentimentResult, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return models.SentimentResult{}, fmt.Errorf("rate limiter: %w", err)
	}

	payload := classifyRequest{Inputs: text}
	if waitForModel {
		payload.Options = &classifyOption{WaitForModel: true}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return models.SentimentResult{}, fmt.Errorf("classifier error %d: %s", resp.StatusCode, string(raw))
	}

	return parseScores(raw)
}

// parseScores accepts either [[{label,score}...]] or [{label,score}...] and
// returns the highest scoring entry.
func parseScores(raw []byte) (models.SentimentResult, error) {
	var entries []labelScore
	var nested [][]labelScore
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 {
		entries = nested[0]
	} else if err := json.Unmarshal(raw, &entries); err != nil {
		return models.SentimentResult{}, fmt.Errorf("decode response: %w", err)
	}
	if len(entries) == 0 {
		return models.SentimentResult{}, errors.New("classifier returned no labels")
	}

	best := entries[0]
	for _, e := range entries[1:] {
		if e.Score > best.Score {
			best = e
		}
	}
	return models.SentimentResult{
		Label: models.SentimentLabel(strings.ToUpper(best.Label)),
		Score: best.Score,
	}, nil
}
