package engine

import (
	"strings"
	"unicode/utf8"

	"matchfilter/internal/models"
)

// Content score factor weights. Length dominates, questions and one-word
// replies split the remainder.
const (
	lengthFactorWeight   = 0.4
	questionFactorWeight = 0.3
	oneWordFactorWeight  = 0.3
)

// MessageStats holds per-conversation message statistics. Ratios are over
// match-sent messages only; red flags and engagement signals describe the
// other party's behavior, not our own.
type MessageStats struct {
	AvgLength         float64
	QuestionRatio     float64
	OneWordRatio      float64
	MatchMessageCount int
	UserMessageCount  int
}

// ComputeStats derives message statistics from a conversation. All values are
// defined (zero) for empty input; nothing here divides by a zero count.
func ComputeStats(messages []models.Message) MessageStats {
	var stats MessageStats

	totalLength := 0
	questions := 0
	oneWord := 0
	for _, msg := range messages {
		totalLength += utf8.RuneCountInString(msg.Content)

		if msg.Sender != models.SenderMatch {
			stats.UserMessageCount++
			continue
		}
		stats.MatchMessageCount++
		if strings.Contains(msg.Content, "?") {
			questions++
		}
		if len(strings.Fields(msg.Content)) == 1 {
			oneWord++
		}
	}

	if len(messages) > 0 {
		stats.AvgLength = float64(totalLength) / float64(len(messages))
	}
	if stats.MatchMessageCount > 0 {
		stats.QuestionRatio = float64(questions) / float64(stats.MatchMessageCount)
		stats.OneWordRatio = float64(oneWord) / float64(stats.MatchMessageCount)
	}
	return stats
}

// ContentScore combines the statistics into a [0,1] score. Longer messages
// and more questions raise it, one-word replies above the configured ceiling
// lower it. Each factor is monotonic in its input.
func (s MessageStats) ContentScore(cfg models.FilterConfig) float64 {
	lengthFactor := 1.0
	if cfg.MinMessageLength > 0 {
		lengthFactor = clamp01(s.AvgLength / float64(cfg.MinMessageLength))
	}

	questionFactor := 1.0
	if cfg.MinQuestionRatio > 0 {
		questionFactor = clamp01(s.QuestionRatio / cfg.MinQuestionRatio)
	}

	oneWordFactor := 1.0
	if cfg.MaxOneWordRatio > 0 {
		oneWordFactor = 1 - clamp01(s.OneWordRatio/cfg.MaxOneWordRatio)
	} else if s.OneWordRatio > 0 {
		oneWordFactor = 0
	}

	score := lengthFactor*lengthFactorWeight +
		questionFactor*questionFactorWeight +
		oneWordFactor*oneWordFactorWeight
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
