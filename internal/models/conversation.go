package models

// Message senders. Every message in a conversation is attributed to one of
// the two parties: the account owner ("user") or the matched contact ("match").
const (
	SenderUser  = "user"
	SenderMatch = "match"
)

// Message represents a single chat message exchanged with a match
// @Description Single chat message
type Message struct {
	Content   string `json:"content" example:"Hey there!"`   // Message text, may be empty
	Timestamp int64  `json:"timestamp" example:"1620984600"` // Seconds since epoch
	Sender    string `json:"sender" example:"match"`         // Message sender (user or match)
}

// Conversation represents the full message history with a single match
// @Description Conversation with a matched contact
type Conversation struct {
	MatchID   string    `json:"match_id" example:"match1"` // Opaque contact identifier
	MatchName string    `json:"match_name" example:"Emma"` // Display name, not used for identity
	Messages  []Message `json:"messages"`                  // Messages in chronological order as supplied
}
