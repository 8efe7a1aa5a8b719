package engine

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchfilter/internal/models"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	return NewConfigStore(DefaultConfig(), zerolog.Nop())
}

func TestConfigStore_Defaults(t *testing.T) {
	store := newTestStore(t)

	cfg := store.Get()
	assert.Equal(t, 5, cfg.MinMessageLength)
	assert.Equal(t, int64(86400), cfg.MaxResponseTime)
	assert.Equal(t, 0.5, cfg.MinEngagementScore)
	assert.Equal(t, 0.2, cfg.MinQuestionRatio)
	assert.Equal(t, 0.5, cfg.MaxOneWordRatio)
	assert.Len(t, cfg.RedFlagPatterns, 10)
}

func TestConfigStore_ReplaceRoundTrip(t *testing.T) {
	store := newTestStore(t)

	next := models.FilterConfig{
		MinMessageLength:   10,
		MaxResponseTime:    3600,
		MinEngagementScore: 0.7,
		MinQuestionRatio:   0.3,
		MaxOneWordRatio:    0.25,
		RedFlagPatterns:    []string{`(?i)onlyfans`},
	}

	require.NoError(t, store.Replace(next))
	assert.Equal(t, next, store.Get())
}

func TestConfigStore_RejectsInvalidAtomically(t *testing.T) {
	store := newTestStore(t)
	before := store.Get()

	invalid := models.FilterConfig{
		MinMessageLength:   -1,
		MaxResponseTime:    0,
		MinEngagementScore: 1.5,
		MinQuestionRatio:   -0.2,
		MaxOneWordRatio:    2,
		RedFlagPatterns:    []string{`[broken`},
	}

	err := store.Replace(invalid)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// Every failing field is reported, not just the first.
	fields := make([]string, 0, len(verr.Fields))
	for _, field := range verr.Fields {
		fields = append(fields, field.Field)
	}
	assert.ElementsMatch(t, []string{
		"min_message_length",
		"max_response_time",
		"min_engagement_score",
		"min_question_ratio",
		"max_one_word_ratio",
		"red_flag_patterns[0]",
	}, fields)

	// The store is untouched.
	assert.Equal(t, before, store.Get())
}

func TestConfigStore_SnapshotIsolation(t *testing.T) {
	store := newTestStore(t)

	snapshot := store.Snapshot()
	next := DefaultConfig()
	next.MinEngagementScore = 0.9
	require.NoError(t, store.Replace(next))

	// The old snapshot still sees the old config in its entirety.
	assert.Equal(t, 0.5, snapshot.Config.MinEngagementScore)
	assert.Equal(t, 0.9, store.Snapshot().Config.MinEngagementScore)
}

func TestConfigStore_SeedCompilesLeniently(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RedFlagPatterns = []string{`(?i)instagram`, `[broken`}

	store := NewConfigStore(cfg, zerolog.Nop())

	// The broken pattern is skipped, the valid one still evaluates.
	snapshot := store.Snapshot()
	assert.Equal(t, 1, snapshot.Patterns.Len())
	assert.Equal(t, []string{`[broken`}, snapshot.Patterns.Skipped())
}

func TestConfigStore_ConcurrentReadersAndReplace(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cfg := store.Get()
				// A reader must observe a whole config, never a mix: the
				// replace below always flips both fields together.
				if cfg.MinMessageLength == 7 {
					assert.Equal(t, 0.7, cfg.MinEngagementScore)
				} else {
					assert.Equal(t, 0.5, cfg.MinEngagementScore)
				}
			}
		}()
	}

	next := DefaultConfig()
	next.MinMessageLength = 7
	next.MinEngagementScore = 0.7
	require.NoError(t, store.Replace(next))

	wg.Wait()
}

func TestValidateConfig_EmptyPatternListIsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RedFlagPatterns = nil
	assert.NoError(t, ValidateConfig(cfg))
}
