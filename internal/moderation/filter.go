// Package moderation provides the word filter and the staff reporting
// machinery. The filter is pure configuration-driven matching; the staff
// report target is the only mutable piece and is replaced atomically.
package moderation

import "strings"

// Filter classifies message text against configured word lists.
type Filter struct {
	banned  []string
	hostile []string
}

// NewFilter builds a filter from the configured lists. Terms are
// normalized to lower case once so per-message checks stay cheap.
func NewFilter(banned, hostile []string) *Filter {
	return &Filter{
		banned:  normalize(banned),
		hostile: normalize(hostile),
	}
}

func normalize(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ContainsBannedContent reports whether text contains any denylisted term,
// case-insensitively.
func (f *Filter) ContainsBannedContent(text string) bool {
	return matchAny(text, f.banned)
}

// IsHostileTowardBot reports whether text contains any hostile term.
// Callers apply this only when the message addresses the bot.
func (f *Filter) IsHostileTowardBot(text string) bool {
	return matchAny(text, f.hostile)
}

func matchAny(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
