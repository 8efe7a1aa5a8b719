package engine

import "matchfilter/internal/models"

// Component weights for the overall score. They sum to 1; content and
// red-flag patterns carry equal weight, response timing carries the rest.
const (
	contentWeight = 0.4
	patternWeight = 0.4
	timeWeight    = 0.2
)

// Reason strings. Deterministic: the reason names whichever component score
// is lowest when the conversation is classified as a timewaster.
const (
	ReasonSufficient       = "Sufficient engagement"
	ReasonInsufficientData = "Insufficient data"
	ReasonLowContent       = "Low message content engagement"
	ReasonRedFlags         = "Red-flag patterns detected"
	ReasonSlowResponses    = "Slow or inconsistent responses"
)

// Aggregate combines the three component scores into a classification. Pure
// function: no state, no randomness, never fails for well-formed input.
func Aggregate(contentScore, patternScore, timeScore float64, flags []string, cfg models.FilterConfig) models.FilterResult {
	overall := contentScore*contentWeight + patternScore*patternWeight + timeScore*timeWeight

	// Strict comparison: a score exactly at the threshold passes.
	isTimewaster := overall < cfg.MinEngagementScore

	reason := ReasonSufficient
	if isTimewaster {
		reason = lowestComponentReason(contentScore, patternScore, timeScore)
	}

	return models.FilterResult{
		IsTimewaster: isTimewaster,
		Confidence:   confidence(overall, cfg.MinEngagementScore),
		OverallScore: overall,
		ContentScore: contentScore,
		PatternScore: patternScore,
		TimeScore:    timeScore,
		Flags:        flags,
		Reason:       reason,
	}
}

// EmptyConversationResult is the explicit branch for conversations with zero
// messages: no evidence of disengagement, so every component defaults to the
// best case and the classification cannot fire.
func EmptyConversationResult(cfg models.FilterConfig) models.FilterResult {
	result := Aggregate(1.0, 1.0, 1.0, []string{}, cfg)
	result.Reason = ReasonInsufficientData
	return result
}

// confidence normalizes the distance between the overall score and the
// decision threshold to [0,1]. The denominator is at least 0.5 for any
// threshold in [0,1].
func confidence(overall, threshold float64) float64 {
	denominator := threshold
	if 1-threshold > denominator {
		denominator = 1 - threshold
	}
	distance := overall - threshold
	if distance < 0 {
		distance = -distance
	}
	return clamp01(distance / denominator)
}

// lowestComponentReason picks the reason for the weakest signal, with a fixed
// tie-break order (content, then patterns, then timing).
func lowestComponentReason(contentScore, patternScore, timeScore float64) string {
	reason := ReasonLowContent
	lowest := contentScore
	if patternScore < lowest {
		lowest = patternScore
		reason = ReasonRedFlags
	}
	if timeScore < lowest {
		reason = ReasonSlowResponses
	}
	return reason
}
