package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"matchfilter/internal/models"
)

func conversationOf(senders ...string) []models.Message {
	messages := make([]models.Message, len(senders))
	for i, sender := range senders {
		messages[i] = models.Message{Content: "hello", Sender: sender}
	}
	return messages
}

func TestFlowScore(t *testing.T) {
	tests := []struct {
		name     string
		messages []models.Message
		expected float64
	}{
		{
			name:     "no messages is neutral",
			messages: nil,
			expected: 0.5,
		},
		{
			name:     "two messages is still too short to judge",
			messages: conversationOf(models.SenderUser, models.SenderMatch),
			expected: 0.5,
		},
		{
			name: "perfectly alternating and balanced",
			messages: conversationOf(
				models.SenderUser, models.SenderMatch,
				models.SenderUser, models.SenderMatch,
			),
			expected: 0.6*1.0 + 0.4*1.0,
		},
		{
			name: "one-sided conversation",
			messages: conversationOf(
				models.SenderUser, models.SenderUser,
				models.SenderUser, models.SenderUser,
			),
			expected: 0.6*0.0 + 0.4*0.0,
		},
		{
			name: "balanced but clumped",
			messages: conversationOf(
				models.SenderUser, models.SenderUser,
				models.SenderMatch, models.SenderMatch,
			),
			expected: 0.6*1.0 + 0.4*(1.0/3.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FlowScore(tt.messages)
			assert.InDelta(t, tt.expected, score, 1e-9)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		})
	}
}

func TestFlowScore_Deterministic(t *testing.T) {
	messages := conversationOf(
		models.SenderMatch, models.SenderUser, models.SenderMatch,
		models.SenderUser, models.SenderUser, models.SenderMatch,
	)
	first := FlowScore(messages)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FlowScore(messages))
	}
}
