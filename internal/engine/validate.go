package engine

import (
	"fmt"

	"matchfilter/internal/models"
)

// ValidateConversation rejects malformed messages before any scoring runs.
// Every offending message is reported, keyed by its position. Timestamps are
// not range-checked here: any numeric instant is well formed, and the
// temporal analyzer already skips negative latencies.
func ValidateConversation(conv models.Conversation) error {
	verr := &ValidationError{}

	for i, msg := range conv.Messages {
		if msg.Sender != models.SenderUser && msg.Sender != models.SenderMatch {
			verr.add(
				fmt.Sprintf("messages[%d].sender", i),
				fmt.Sprintf("must be %q or %q", models.SenderUser, models.SenderMatch),
			)
		}
	}

	return verr.orNil()
}
