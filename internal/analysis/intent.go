package analysis

import (
	"regexp"
	"strings"
)

// Coarse message intents surfaced in the analysis report.
const (
	IntentQuestion       = "question"
	IntentGreeting       = "greeting"
	IntentFarewell       = "farewell"
	IntentGratitude      = "gratitude"
	IntentSmallTalk      = "small_talk"
	IntentDateRequest    = "date_request"
	IntentContactRequest = "contact_request"
	IntentGeneral        = "general"
)

var (
	greetingWords = []string{"hi", "hello", "hey", "sup"}
	farewellCues  = []string{"bye", "goodbye", "see you", "talk later"}
	gratitudeCues = []string{"thanks", "thank you", "appreciate"}

	smallTalkPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)what are you doing`),
		regexp.MustCompile(`(?i)how are you`),
		regexp.MustCompile(`(?i)how's your day`),
	}
	dateRequestPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)meet up`),
		regexp.MustCompile(`(?i)get together`),
		regexp.MustCompile(`(?i)coffee`),
		regexp.MustCompile(`(?i)drink`),
		regexp.MustCompile(`(?i)dinner`),
	}
	contactRequestPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)number`),
		regexp.MustCompile(`(?i)instagram`),
		regexp.MustCompile(`(?i)snapchat`),
		regexp.MustCompile(`(?i)contact`),
	}
)

// DetectIntent assigns a coarse intent label to a single message. Checks run
// in a fixed order so a message carrying several cues always gets the same
// label.
func DetectIntent(message string) string {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "?") {
		return IntentQuestion
	}
	if containsWord(lower, greetingWords) {
		return IntentGreeting
	}
	if containsCue(lower, farewellCues) {
		return IntentFarewell
	}
	if containsCue(lower, gratitudeCues) {
		return IntentGratitude
	}
	if matchesAny(lower, smallTalkPatterns) {
		return IntentSmallTalk
	}
	if matchesAny(lower, dateRequestPatterns) {
		return IntentDateRequest
	}
	if matchesAny(lower, contactRequestPatterns) {
		return IntentContactRequest
	}
	return IntentGeneral
}

// containsWord matches whole words only, so "sup" does not fire on "support".
func containsWord(text string, words []string) bool {
	for _, field := range strings.Fields(text) {
		field = normalizeWord(field)
		for _, word := range words {
			if field == word {
				return true
			}
		}
	}
	return false
}

func containsCue(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}

func matchesAny(text string, patterns []*regexp.Regexp) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}
