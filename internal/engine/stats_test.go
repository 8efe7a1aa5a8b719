package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"matchfilter/internal/models"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		messages []models.Message
		expected MessageStats
	}{
		{
			name:     "empty conversation",
			messages: nil,
			expected: MessageStats{},
		},
		{
			name: "mixed senders",
			messages: []models.Message{
				{Content: "Hey there!", Sender: models.SenderMatch},
				{Content: "Hi! How are you?", Sender: models.SenderUser},
				{Content: "I'm good, thanks! What do you do for fun?", Sender: models.SenderMatch},
			},
			expected: MessageStats{
				AvgLength:         float64(10+16+41) / 3,
				QuestionRatio:     0.5,
				OneWordRatio:      0,
				MatchMessageCount: 2,
				UserMessageCount:  1,
			},
		},
		{
			name: "one word match replies",
			messages: []models.Message{
				{Content: "What's your favorite food?", Sender: models.SenderUser},
				{Content: "pizza", Sender: models.SenderMatch},
				{Content: "Nice! Where from?", Sender: models.SenderUser},
				{Content: "idk", Sender: models.SenderMatch},
			},
			expected: MessageStats{
				AvgLength:         float64(26+5+17+3) / 4,
				QuestionRatio:     0,
				OneWordRatio:      1,
				MatchMessageCount: 2,
				UserMessageCount:  2,
			},
		},
		{
			name: "match sent nothing",
			messages: []models.Message{
				{Content: "Hello?", Sender: models.SenderUser},
				{Content: "Anyone there?", Sender: models.SenderUser},
			},
			expected: MessageStats{
				AvgLength:        float64(6+13) / 2,
				UserMessageCount: 2,
			},
		},
		{
			name: "empty content counts as zero words",
			messages: []models.Message{
				{Content: "", Sender: models.SenderMatch},
			},
			expected: MessageStats{
				MatchMessageCount: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeStats(tt.messages)
			assert.InDelta(t, tt.expected.AvgLength, stats.AvgLength, 1e-9)
			assert.InDelta(t, tt.expected.QuestionRatio, stats.QuestionRatio, 1e-9)
			assert.InDelta(t, tt.expected.OneWordRatio, stats.OneWordRatio, 1e-9)
			assert.Equal(t, tt.expected.MatchMessageCount, stats.MatchMessageCount)
			assert.Equal(t, tt.expected.UserMessageCount, stats.UserMessageCount)
		})
	}
}

func TestContentScore_Monotonicity(t *testing.T) {
	cfg := DefaultConfig()

	// Raising the average length never lowers the score, up to the point all
	// messages already exceed the minimum length.
	previous := -1.0
	for _, avgLength := range []float64{0, 1, 2, 3, 4, 5, 10, 50} {
		stats := MessageStats{AvgLength: avgLength, QuestionRatio: 0.1, OneWordRatio: 0.2}
		score := stats.ContentScore(cfg)
		assert.GreaterOrEqual(t, score, previous, "avg_length %v lowered the score", avgLength)
		previous = score
	}

	// More one-word replies never raise the score.
	previous = 2.0
	for _, ratio := range []float64{0, 0.25, 0.5, 0.75, 1} {
		stats := MessageStats{AvgLength: 10, QuestionRatio: 0.3, OneWordRatio: ratio}
		score := stats.ContentScore(cfg)
		assert.LessOrEqual(t, score, previous, "one_word_ratio %v raised the score", ratio)
		previous = score
	}
}

func TestContentScore_Bounds(t *testing.T) {
	tests := []struct {
		name  string
		cfg   models.FilterConfig
		stats MessageStats
	}{
		{
			name:  "all signals at their worst",
			cfg:   DefaultConfig(),
			stats: MessageStats{AvgLength: 0, QuestionRatio: 0, OneWordRatio: 1},
		},
		{
			name:  "all signals at their best",
			cfg:   DefaultConfig(),
			stats: MessageStats{AvgLength: 100, QuestionRatio: 1, OneWordRatio: 0},
		},
		{
			name:  "zero thresholds treated as satisfied",
			cfg:   models.FilterConfig{MaxResponseTime: 1},
			stats: MessageStats{AvgLength: 0, QuestionRatio: 0, OneWordRatio: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := tt.stats.ContentScore(tt.cfg)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		})
	}
}

func TestContentScore_PerfectConversation(t *testing.T) {
	stats := MessageStats{AvgLength: 20, QuestionRatio: 0.5, OneWordRatio: 0}
	assert.InDelta(t, 1.0, stats.ContentScore(DefaultConfig()), 1e-9)
}
