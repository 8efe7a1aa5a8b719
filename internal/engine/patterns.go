package engine

import (
	"regexp"

	"matchfilter/internal/models"
)

// compiledPattern pairs a red-flag regular expression with its source string.
// The source is what appears in config and in fired flags; patterns are data,
// not code.
type compiledPattern struct {
	source string
	re     *regexp.Regexp
}

// PatternSet is an ordered set of compiled red-flag patterns. Built once per
// config replace and shared read-only by all in-flight scoring.
type PatternSet struct {
	patterns []compiledPattern
	skipped  []string
}

// CompilePatterns compiles the configured red-flag patterns, preserving
// config order. A pattern that fails to compile is skipped and recorded
// rather than aborting: a conversation must still score against the valid
// remainder.
func CompilePatterns(sources []string) *PatternSet {
	set := &PatternSet{}
	for _, source := range sources {
		re, err := regexp.Compile(source)
		if err != nil {
			set.skipped = append(set.skipped, source)
			continue
		}
		set.patterns = append(set.patterns, compiledPattern{source: source, re: re})
	}
	return set
}

// Skipped returns the pattern sources that failed to compile.
func (ps *PatternSet) Skipped() []string {
	return ps.skipped
}

// Len returns the number of evaluable patterns.
func (ps *PatternSet) Len() int {
	return len(ps.patterns)
}

// Evaluate tests every pattern against the match-sent messages. A pattern
// fires when it matches anywhere in at least one message. More fired patterns
// mean a lower score: 1 - fired/total, clamped to [0,1]. Fired flags come
// back de-duplicated in config order.
func (ps *PatternSet) Evaluate(messages []models.Message) (float64, []string) {
	flags := []string{}
	for _, pattern := range ps.patterns {
		for _, msg := range messages {
			if msg.Sender != models.SenderMatch {
				continue
			}
			if pattern.re.MatchString(msg.Content) {
				flags = append(flags, pattern.source)
				break
			}
		}
	}

	total := len(ps.patterns)
	if total < 1 {
		total = 1
	}
	score := 1 - float64(len(flags))/float64(total)
	return clamp01(score), flags
}
