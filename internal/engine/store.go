package engine

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/rs/zerolog"

	"matchfilter/internal/models"
	"matchfilter/internal/observability"
)

// Snapshot is an immutable view of the filter configuration together with its
// compiled red-flag patterns. Every filter/analyze call takes one snapshot at
// the start and uses it throughout, so a concurrent replace can never show a
// half-updated config to in-flight scoring.
type Snapshot struct {
	Config   models.FilterConfig
	Patterns *PatternSet
}

// ConfigStore holds the process-wide filter configuration. Replacement is
// copy-on-write: readers hold the old snapshot, writers swap in a fully built
// new one under the lock.
type ConfigStore struct {
	mu      sync.RWMutex
	current *Snapshot
	logger  zerolog.Logger
}

// NewConfigStore creates a store seeded with the given configuration.
// The seed is compiled leniently: patterns that fail to compile are skipped
// with a warning instead of refusing to start.
func NewConfigStore(cfg models.FilterConfig, logger zerolog.Logger) *ConfigStore {
	store := &ConfigStore{logger: logger}
	store.current = store.buildSnapshot(cfg)
	return store
}

// DefaultConfig returns the bootstrap configuration: the stock thresholds and
// the stock red-flag pattern list.
func DefaultConfig() models.FilterConfig {
	return models.FilterConfig{
		MinMessageLength:   5,
		MaxResponseTime:    24 * 60 * 60,
		MinEngagementScore: 0.5,
		MinQuestionRatio:   0.2,
		MaxOneWordRatio:    0.5,
		RedFlagPatterns: []string{
			`(?i)instagram`,
			`(?i)snapchat`,
			`(?i)follow me`,
			`(?i)my profile`,
			`(?i)venmo`,
			`(?i)cashapp`,
			`(?i)paypal`,
			`(?i)send money`,
			`(?i)not here often`,
			`(?i)check my bio`,
		},
	}
}

// Snapshot returns the current immutable snapshot.
func (s *ConfigStore) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Get returns a copy of the current configuration.
func (s *ConfigStore) Get() models.FilterConfig {
	return s.Snapshot().Config
}

// Replace validates the new configuration and atomically swaps it in. On any
// validation failure the store is left untouched and the error enumerates
// every failing field.
func (s *ConfigStore) Replace(cfg models.FilterConfig) error {
	if err := ValidateConfig(cfg); err != nil {
		observability.ConfigReplacements.WithLabelValues("rejected").Inc()
		return err
	}

	snapshot := s.buildSnapshot(cfg)

	s.mu.Lock()
	s.current = snapshot
	s.mu.Unlock()

	observability.ConfigReplacements.WithLabelValues("applied").Inc()
	s.logger.Info().
		Int("patterns", snapshot.Patterns.Len()).
		Float64("min_engagement_score", cfg.MinEngagementScore).
		Msg("Filter configuration replaced")
	return nil
}

// ValidateConfig checks ranges and pattern syntax for a config update.
func ValidateConfig(cfg models.FilterConfig) error {
	verr := &ValidationError{}

	if cfg.MinMessageLength < 0 {
		verr.add("min_message_length", "must be >= 0")
	}
	if cfg.MaxResponseTime <= 0 {
		verr.add("max_response_time", "must be > 0")
	}
	if cfg.MinEngagementScore < 0 || cfg.MinEngagementScore > 1 {
		verr.add("min_engagement_score", "must be between 0 and 1")
	}
	if cfg.MinQuestionRatio < 0 || cfg.MinQuestionRatio > 1 {
		verr.add("min_question_ratio", "must be between 0 and 1")
	}
	if cfg.MaxOneWordRatio < 0 || cfg.MaxOneWordRatio > 1 {
		verr.add("max_one_word_ratio", "must be between 0 and 1")
	}
	for i, pattern := range cfg.RedFlagPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			verr.add(fmt.Sprintf("red_flag_patterns[%d]", i), fmt.Sprintf("does not compile: %v", err))
		}
	}

	return verr.orNil()
}

// buildSnapshot copies the config and compiles its patterns. Skipped patterns
// are logged as configuration warnings; they can occur when the seed config
// arrives from an unvalidated source.
func (s *ConfigStore) buildSnapshot(cfg models.FilterConfig) *Snapshot {
	cfg.RedFlagPatterns = append([]string(nil), cfg.RedFlagPatterns...)
	patterns := CompilePatterns(cfg.RedFlagPatterns)
	for _, source := range patterns.Skipped() {
		s.logger.Warn().Str("pattern", source).Msg("Skipping red-flag pattern that fails to compile")
	}
	return &Snapshot{Config: cfg, Patterns: patterns}
}
