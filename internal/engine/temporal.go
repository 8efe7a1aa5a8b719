package engine

import "matchfilter/internal/models"

// ResponseLatencies computes, in seconds, how long the match took to reply to
// each user message it directly follows. Runs of same-sender messages have no
// defined latency and are skipped. Timestamps are not assumed to be in order;
// a pair that would yield a negative latency is treated as unknown and
// skipped rather than poisoning the score.
func ResponseLatencies(messages []models.Message) []int64 {
	var latencies []int64
	for i := 1; i < len(messages); i++ {
		if messages[i].Sender != models.SenderMatch || messages[i-1].Sender != models.SenderUser {
			continue
		}
		latency := messages[i].Timestamp - messages[i-1].Timestamp
		if latency < 0 {
			continue
		}
		latencies = append(latencies, latency)
	}
	return latencies
}

// TimeScore is the fraction of measurable latencies at or below the
// configured maximum. With no measurable latencies there is no evidence of
// slowness, so the score defaults to the best case.
func TimeScore(latencies []int64, maxResponseTime int64) float64 {
	if len(latencies) == 0 {
		return 1.0
	}
	prompt := 0
	for _, latency := range latencies {
		if latency <= maxResponseTime {
			prompt++
		}
	}
	return float64(prompt) / float64(len(latencies))
}
