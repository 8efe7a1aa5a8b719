package analysis

import (
	"regexp"
	"sort"
	"strings"
)

const (
	maxTopics       = 5
	minTopicCount   = 2
	minTopicWordLen = 4
)

var (
	tokenPattern = regexp.MustCompile(`[a-z0-9]+`)
	stopwords    = map[string]struct{}{
		"i": {}, "me": {}, "my": {}, "myself": {}, "we": {}, "our": {}, "ours": {},
		"ourselves": {}, "you": {}, "your": {}, "yours": {}, "yourself": {},
		"yourselves": {}, "he": {}, "him": {}, "his": {}, "himself": {}, "she": {},
		"her": {}, "hers": {}, "herself": {}, "it": {}, "its": {}, "itself": {},
		"they": {}, "them": {}, "their": {}, "theirs": {}, "themselves": {},
		"what": {}, "which": {}, "who": {}, "whom": {}, "this": {}, "that": {},
		"these": {}, "those": {}, "am": {}, "is": {}, "are": {}, "was": {},
		"were": {}, "be": {}, "been": {}, "being": {}, "have": {}, "has": {},
		"had": {}, "having": {}, "do": {}, "does": {}, "did": {}, "doing": {},
		"a": {}, "an": {}, "the": {}, "and": {}, "but": {}, "if": {}, "or": {},
		"because": {}, "as": {}, "until": {}, "while": {}, "of": {}, "at": {},
		"by": {}, "for": {}, "with": {}, "about": {}, "against": {}, "between": {},
		"into": {}, "through": {}, "during": {}, "before": {}, "after": {},
		"above": {}, "below": {}, "to": {}, "from": {}, "up": {}, "down": {},
		"in": {}, "out": {}, "on": {}, "off": {}, "over": {}, "under": {},
		"again": {}, "further": {}, "then": {}, "once": {}, "here": {},
		"there": {}, "when": {}, "where": {}, "why": {}, "how": {}, "all": {},
		"any": {}, "both": {}, "each": {}, "few": {}, "more": {}, "most": {},
		"other": {}, "some": {}, "such": {}, "no": {}, "nor": {}, "not": {},
		"only": {}, "own": {}, "same": {}, "so": {}, "than": {}, "too": {},
		"very": {}, "s": {}, "t": {}, "can": {}, "will": {}, "just": {},
		"don": {}, "should": {}, "now": {},
	}
)

// ExtractTopics returns up to five salient keywords across the conversation:
// lowercase, stop words removed, words longer than three characters, appearing
// at least twice. Ordering is by frequency, ties broken by first appearance,
// so repeated calls yield identical output.
func (lc *LexiconClassifier) ExtractTopics(texts []string) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	position := 0

	for _, text := range texts {
		for _, token := range tokenPattern.FindAllString(lc.folder.String(text), -1) {
			if len(token) < minTopicWordLen {
				continue
			}
			if _, stop := stopwords[token]; stop {
				continue
			}
			if _, seen := firstSeen[token]; !seen {
				firstSeen[token] = position
			}
			counts[token]++
			position++
		}
	}

	candidates := make([]string, 0, len(counts))
	for token, count := range counts {
		if count >= minTopicCount {
			candidates = append(candidates, token)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if counts[candidates[i]] != counts[candidates[j]] {
			return counts[candidates[i]] > counts[candidates[j]]
		}
		return firstSeen[candidates[i]] < firstSeen[candidates[j]]
	})

	if len(candidates) > maxTopics {
		candidates = candidates[:maxTopics]
	}
	return candidates
}

// normalizeWord lowercases a token and strips surrounding punctuation.
func normalizeWord(word string) string {
	return strings.Trim(strings.ToLower(word), wordPunctuation)
}
