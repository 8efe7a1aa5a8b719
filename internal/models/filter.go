package models

// FilterConfig holds the tunable thresholds, weights and red-flag patterns
// used by the timewaster filter. Replaced in full, never merged field-by-field.
// @Description Timewaster filter configuration
type FilterConfig struct {
	MinMessageLength   int      `json:"min_message_length" example:"5"`     // Messages shorter than this count toward the too-short signal
	MaxResponseTime    int64    `json:"max_response_time" example:"86400"`  // Response latencies above this many seconds count as slow
	MinEngagementScore float64  `json:"min_engagement_score" example:"0.5"` // Classification threshold on the overall score
	MinQuestionRatio   float64  `json:"min_question_ratio" example:"0.2"`   // Minimum acceptable question ratio from the match
	MaxOneWordRatio    float64  `json:"max_one_word_ratio" example:"0.5"`   // Maximum acceptable one-word message ratio from the match
	RedFlagPatterns    []string `json:"red_flag_patterns"`                  // Regular expressions flagging low-quality engagement
}

// FilterResult is the classification produced for a single conversation
// @Description Timewaster classification result
type FilterResult struct {
	IsTimewaster bool     `json:"is_timewaster" example:"false"`          // Whether the contact is classified as a timewaster
	Confidence   float64  `json:"confidence" example:"0.8"`               // Normalized distance of the overall score from the threshold
	OverallScore float64  `json:"overall_score" example:"0.9"`            // Weighted combination of the component scores
	ContentScore float64  `json:"content_score" example:"0.85"`           // Message-content statistics score
	PatternScore float64  `json:"pattern_score" example:"1"`              // Red-flag pattern score
	TimeScore    float64  `json:"time_score" example:"1"`                 // Response-latency score
	Flags        []string `json:"flags"`                                  // Red-flag patterns that fired, in config order
	Reason       string   `json:"reason" example:"Sufficient engagement"` // Human-readable explanation of the decision
}

// SentimentDistribution counts messages per sentiment bucket
// @Description Per-sentiment message counts
type SentimentDistribution struct {
	Positive int `json:"positive" example:"2"` // Positive messages
	Neutral  int `json:"neutral" example:"1"`  // Neutral messages
	Negative int `json:"negative" example:"0"` // Negative messages
}

// AnalysisResult is the descriptive report for a conversation. It carries no
// classification; the filter endpoints own that.
// @Description Conversation analysis report
type AnalysisResult struct {
	MessageCount          int                   `json:"message_count" example:"3"`        // Number of messages analyzed
	AvgLength             float64               `json:"avg_length" example:"22.3"`        // Mean message length in characters
	OverallEngagement     float64               `json:"overall_engagement" example:"0.5"` // Mean per-message engagement score
	SentimentDistribution SentimentDistribution `json:"sentiment_distribution"`           // Sentiment bucket counts
	QuestionRatio         float64               `json:"question_ratio" example:"0.66"`    // Fraction of messages containing a question
	FlowScore             float64               `json:"flow_score" example:"0.75"`        // Conversational balance proxy
	Topics                []string              `json:"topics"`                           // Salient keywords across the conversation
	IntentDistribution    map[string]int        `json:"intent_distribution,omitempty"`    // Per-intent message counts
}

// FilterAllRequest is the request body for batch filtering
// @Description Batch filter request
type FilterAllRequest struct {
	Conversations map[string]Conversation `json:"conversations"` // Conversations keyed by contact name
}

// FilterAllResponse carries per-contact results for batch filtering. A failing
// conversation appears under errors without removing its siblings' results.
// @Description Batch filter response
type FilterAllResponse struct {
	Results map[string]FilterResult `json:"results"`          // Successful classifications keyed by contact name
	Errors  map[string]string       `json:"errors,omitempty"` // Per-contact errors keyed by contact name
}

// FieldError describes a single invalid field in a request
// @Description Invalid field detail
type FieldError struct {
	Field  string `json:"field" example:"min_engagement_score"`     // Offending field path
	Reason string `json:"reason" example:"must be between 0 and 1"` // Why the value was rejected
}

// ErrorResponse is the generic error payload returned by the API
// @Description Error payload
type ErrorResponse struct {
	Error  string       `json:"error" example:"invalid conversation"` // Error summary
	Fields []FieldError `json:"fields,omitempty"`                     // Per-field validation details, if any
}
