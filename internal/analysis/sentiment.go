package analysis

import (
	"strings"

	"golang.org/x/text/cases"
)

// Sentiment buckets assigned to individual messages.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Classifier is the sentiment/topic capability consumed by the analysis
// report. The concrete technique behind it (lexicon, small model, external
// service) is swappable without touching the scoring pipeline.
type Classifier interface {
	Classify(text string) string
	ExtractTopics(texts []string) []string
}

var (
	positiveWords = map[string]struct{}{
		"good": {}, "great": {}, "awesome": {}, "amazing": {}, "love": {},
		"happy": {}, "excited": {}, "thanks": {}, "thank": {}, "cool": {},
		"nice": {}, "fun": {}, "enjoy": {}, "like": {}, "glad": {},
	}
	negativeWords = map[string]struct{}{
		"bad": {}, "terrible": {}, "awful": {}, "hate": {}, "sad": {},
		"upset": {}, "angry": {}, "annoyed": {}, "disappointed": {},
		"sorry": {}, "unfortunate": {}, "boring": {},
	}
)

// LexiconClassifier buckets messages by counting polarity-bearing words from
// small fixed lexicons. Deterministic and dependency-free at runtime.
type LexiconClassifier struct {
	folder cases.Caser
}

// NewLexiconClassifier creates a lexicon-based sentiment classifier.
func NewLexiconClassifier() *LexiconClassifier {
	return &LexiconClassifier{folder: cases.Fold()}
}

// Classify assigns a sentiment bucket to a single message. A message with more
// positive than negative lexicon hits is positive, the reverse is negative,
// everything else (including empty text) is neutral.
func (lc *LexiconClassifier) Classify(text string) string {
	positive, negative := 0, 0
	for _, word := range strings.Fields(lc.folder.String(text)) {
		word = strings.Trim(word, wordPunctuation)
		if _, ok := positiveWords[word]; ok {
			positive++
		}
		if _, ok := negativeWords[word]; ok {
			negative++
		}
	}

	switch {
	case positive > negative:
		return SentimentPositive
	case negative > positive:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

const wordPunctuation = ".,!?;:'\"()[]{}<>-"
