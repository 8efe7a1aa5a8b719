package engine

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"matchfilter/internal/analysis"
	"matchfilter/internal/models"
	"matchfilter/internal/observability"
)

const defaultWorkers = 4

// Service orchestrates the scoring pipeline for single conversations and
// batches. It owns no per-conversation state; everything it needs for one
// call lives in the config snapshot taken at call start.
type Service struct {
	store      *ConfigStore
	classifier analysis.Classifier
	logger     zerolog.Logger
	workers    int
}

// BatchEntry is the per-contact outcome of a batch filter: either a result or
// the error that prevented one.
type BatchEntry struct {
	Result *models.FilterResult
	Err    error
}

// NewService creates a filter service. workers bounds the parallelism of
// FilterAll; values below one fall back to the default.
func NewService(store *ConfigStore, classifier analysis.Classifier, logger zerolog.Logger, workers int) *Service {
	if workers < 1 {
		workers = defaultWorkers
	}
	return &Service{
		store:      store,
		classifier: classifier,
		logger:     logger,
		workers:    workers,
	}
}

// Filter classifies one conversation against the current configuration.
// Malformed messages are rejected with a ValidationError before any scoring.
func (s *Service) Filter(ctx context.Context, conv models.Conversation) (models.FilterResult, error) {
	return s.filterWithSnapshot(conv, s.store.Snapshot())
}

// filterWithSnapshot runs validation and scoring against one fixed snapshot,
// so a batch can pin its config once and reuse it for every conversation.
func (s *Service) filterWithSnapshot(conv models.Conversation, snapshot *Snapshot) (models.FilterResult, error) {
	if err := ValidateConversation(conv); err != nil {
		return models.FilterResult{}, err
	}

	result := s.score(conv, snapshot)

	verdict := "engaged"
	if result.IsTimewaster {
		verdict = "timewaster"
	}
	observability.FilterDecisions.WithLabelValues(verdict).Inc()
	s.logger.Info().
		Str("match_id", conv.MatchID).
		Str("match_name", conv.MatchName).
		Bool("is_timewaster", result.IsTimewaster).
		Float64("overall_score", result.OverallScore).
		Float64("confidence", result.Confidence).
		Msg("Conversation filtered")

	return result, nil
}

// Analyze produces the descriptive report for one conversation. Sentiment,
// topics and intents feed this report only, never the filter classification.
func (s *Service) Analyze(ctx context.Context, conv models.Conversation) (models.AnalysisResult, error) {
	if err := ValidateConversation(conv); err != nil {
		return models.AnalysisResult{}, err
	}

	stats := ComputeStats(conv.Messages)

	result := models.AnalysisResult{
		MessageCount: len(conv.Messages),
		AvgLength:    stats.AvgLength,
		FlowScore:    analysis.FlowScore(conv.Messages),
		Topics:       []string{},
	}
	if len(conv.Messages) == 0 {
		return result, nil
	}

	contents := make([]string, 0, len(conv.Messages))
	engagement := 0.0
	questions := 0
	intents := make(map[string]int)
	for _, msg := range conv.Messages {
		contents = append(contents, msg.Content)
		engagement += analysis.EngagementScore(msg.Content)
		intents[analysis.DetectIntent(msg.Content)]++
		if strings.Contains(msg.Content, "?") {
			questions++
		}

		switch s.classifier.Classify(msg.Content) {
		case analysis.SentimentPositive:
			result.SentimentDistribution.Positive++
		case analysis.SentimentNegative:
			result.SentimentDistribution.Negative++
		default:
			result.SentimentDistribution.Neutral++
		}
	}

	result.OverallEngagement = engagement / float64(len(conv.Messages))
	result.QuestionRatio = float64(questions) / float64(len(conv.Messages))
	result.Topics = s.classifier.ExtractTopics(contents)
	result.IntentDistribution = intents

	observability.ConversationsAnalyzed.Inc()
	return result, nil
}

// FilterAll classifies a batch of conversations keyed by contact name with
// bounded parallelism. The config snapshot is taken once, so every
// conversation in the batch is scored against the same config even when a
// replace lands mid-batch. Each entry is independent: a validation failure on
// one conversation surfaces in its entry without touching the others. When
// ctx is cancelled no further conversations are started; the ones already
// running finish, and the ones never started report the context error.
func (s *Service) FilterAll(ctx context.Context, conversations map[string]models.Conversation) map[string]BatchEntry {
	observability.BatchSize.Observe(float64(len(conversations)))

	entries := make(map[string]BatchEntry, len(conversations))
	if len(conversations) == 0 {
		return entries
	}

	snapshot := s.store.Snapshot()

	type keyedEntry struct {
		key   string
		entry BatchEntry
	}

	jobs := make(chan string)
	results := make(chan keyedEntry, len(conversations))

	workers := s.workers
	if workers > len(conversations) {
		workers = len(conversations)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key := range jobs {
				result, err := s.filterWithSnapshot(conversations[key], snapshot)
				if err != nil {
					results <- keyedEntry{key: key, entry: BatchEntry{Err: err}}
					continue
				}
				results <- keyedEntry{key: key, entry: BatchEntry{Result: &result}}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for key := range conversations {
			select {
			case jobs <- key:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(results)

	for keyed := range results {
		if keyed.entry.Err != nil {
			observability.BatchFailures.Inc()
			s.logger.Warn().
				Str("contact", keyed.key).
				Err(keyed.entry.Err).
				Msg("Conversation skipped in batch filter")
		}
		entries[keyed.key] = keyed.entry
	}

	// Conversations never handed to a worker because of cancellation.
	for key := range conversations {
		if _, done := entries[key]; !done {
			entries[key] = BatchEntry{Err: ctx.Err()}
		}
	}

	return entries
}

// score runs the full pipeline for one conversation against a fixed snapshot.
func (s *Service) score(conv models.Conversation, snapshot *Snapshot) models.FilterResult {
	start := time.Now()
	defer func() {
		observability.ScoringDuration.Observe(time.Since(start).Seconds())
	}()

	if len(conv.Messages) == 0 {
		return EmptyConversationResult(snapshot.Config)
	}

	stats := ComputeStats(conv.Messages)
	contentScore := stats.ContentScore(snapshot.Config)
	patternScore, flags := snapshot.Patterns.Evaluate(conv.Messages)
	timeScore := TimeScore(ResponseLatencies(conv.Messages), snapshot.Config.MaxResponseTime)

	return Aggregate(contentScore, patternScore, timeScore, flags, snapshot.Config)
}
