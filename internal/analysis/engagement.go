package analysis

import "regexp"

// Engagement cues: questions plus phrases that invite the other party to keep
// talking.
var engagementIndicators = []*regexp.Regexp{
	regexp.MustCompile(`\?`),
	regexp.MustCompile(`(?i)what do you think`),
	regexp.MustCompile(`(?i)tell me more`),
	regexp.MustCompile(`(?i)how about you`),
	regexp.MustCompile(`(?i)that's interesting`),
}

// EngagementScore rates a single message in [0,1] by counting engagement
// cues, capped at two cues for a full score.
func EngagementScore(message string) float64 {
	if message == "" {
		return 0
	}
	count := 0
	for _, pattern := range engagementIndicators {
		if pattern.MatchString(message) {
			count++
		}
	}
	score := float64(count) / 2
	if score > 1 {
		return 1
	}
	return score
}
