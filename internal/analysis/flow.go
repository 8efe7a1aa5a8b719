package analysis

import "matchfilter/internal/models"

const (
	minFlowMessages   = 3
	balanceWeight     = 0.6
	alternationWeight = 0.4

	// Score for conversations too short to judge.
	neutralFlowScore = 0.5
)

// FlowScore estimates conversational balance in [0,1]. It blends how evenly
// both parties contribute with how regularly the senders alternate.
// Conversations shorter than three messages get the neutral score.
func FlowScore(messages []models.Message) float64 {
	if len(messages) < minFlowMessages {
		return neutralFlowScore
	}

	userCount, matchCount := 0, 0
	for _, msg := range messages {
		if msg.Sender == models.SenderUser {
			userCount++
		} else {
			matchCount++
		}
	}

	total := float64(len(messages))
	imbalance := float64(userCount - matchCount)
	if imbalance < 0 {
		imbalance = -imbalance
	}
	balance := 1 - imbalance/total

	turns := 0
	for i := 1; i < len(messages); i++ {
		if messages[i].Sender != messages[i-1].Sender {
			turns++
		}
	}
	alternation := float64(turns) / float64(len(messages)-1)

	return balanceWeight*balance + alternationWeight*alternation
}
