// Package seo derives deterministic tag and hashtag sets from episode
// metadata and free-text summaries. All matching is static keyword lookup
// against injected tables; there is no language understanding involved.
package seo

import (
	"regexp"
	"strings"
)

var tokenRE = regexp.MustCompile(`[^0-9A-Za-z+]+`)

// HashtagRule unlocks a cluster of hashtags when its trigger pattern matches
// the summary text.
type HashtagRule struct {
	Pattern  string   `yaml:"pattern" json:"pattern"`
	Hashtags []string `yaml:"hashtags" json:"hashtags"`
}

// Tables holds the candidate-keyword data the synthesizer matches against.
// Tables are immutable lookup data injected at construction so they can be
// swapped per brand without code changes.
type Tables struct {
	// BaseTags are always included, ahead of anything derived.
	BaseTags []string `yaml:"base_tags" json:"base_tags"`
	// PrimaryPhrases and SecondaryPhrases are candidate tag phrases. A
	// phrase is selected when its first word appears as a substring of the
	// lowercased summary. Deliberately loose; see package docs.
	PrimaryPhrases   []string `yaml:"primary_phrases" json:"primary_phrases"`
	SecondaryPhrases []string `yaml:"secondary_phrases" json:"secondary_phrases"`
	// HashtagRules are independent regex triggers per topic.
	HashtagRules []HashtagRule `yaml:"hashtag_rules" json:"hashtag_rules"`
	// MaxTags caps the final tag list. Zero means the default of 15.
	MaxTags int `yaml:"max_tags" json:"max_tags"`
}

const defaultMaxTags = 15

// Synthesizer produces bounded, deduplicated tag lists. It holds compiled
// rule patterns and is safe for reuse across invocations.
type Synthesizer struct {
	tables   Tables
	maxTags  int
	triggers []*regexp.Regexp
}

// NewSynthesizer compiles the hashtag rule patterns up front. A rule whose
// pattern does not compile is dropped rather than failing the run.
func NewSynthesizer(tables Tables) *Synthesizer {
	max := tables.MaxTags
	if max <= 0 {
		max = defaultMaxTags
	}
	s := &Synthesizer{tables: tables, maxTags: max}
	for _, rule := range tables.HashtagRules {
		re, err := regexp.Compile("(?i)" + rule.Pattern)
		if err != nil {
			s.triggers = append(s.triggers, nil)
			continue
		}
		s.triggers = append(s.triggers, re)
	}
	return s
}

// Tags builds the final ordered tag list from the episode title, a theme
// string (typically the main keyword), the summary, and guest names: base
// tags first, then the theme, title tokens, guest names, and summary-matched
// candidate phrases. The result is deduplicated case-insensitively (first
// occurrence wins), capped, and each token has its internal whitespace
// removed for hashtag safety.
func (s *Synthesizer) Tags(title, theme, summary string, guests []string) []string {
	var raw []string
	raw = append(raw, s.tables.BaseTags...)
	if theme = strings.TrimSpace(theme); theme != "" {
		raw = append(raw, strings.ToLower(theme))
	}
	raw = append(raw, titleTokens(title)...)
	for _, g := range guests {
		if g = strings.TrimSpace(g); g != "" {
			raw = append(raw, strings.ToLower(g))
		}
	}
	lower := strings.ToLower(summary)
	raw = append(raw, matchPhrases(s.tables.PrimaryPhrases, lower)...)
	raw = append(raw, matchPhrases(s.tables.SecondaryPhrases, lower)...)
	return s.finalize(raw)
}

// Hashtags returns the tag list prefixed with '#', plus any clusters whose
// rule pattern fires on the summary text.
func (s *Synthesizer) Hashtags(tags []string, summary string) []string {
	var raw []string
	raw = append(raw, tags...)
	for i, rule := range s.tables.HashtagRules {
		if s.triggers[i] == nil || !s.triggers[i].MatchString(summary) {
			continue
		}
		for _, h := range rule.Hashtags {
			raw = append(raw, strings.TrimPrefix(strings.ToLower(h), "#"))
		}
	}
	deduped := s.finalize(raw)
	out := make([]string, 0, len(deduped))
	for _, t := range deduped {
		out = append(out, "#"+t)
	}
	return out
}

// titleTokens splits the title on runs of non-alphanumeric characters
// (keeping '+', so "C++" and "100+" survive) and keeps lowercase tokens
// longer than two characters.
func titleTokens(title string) []string {
	var tokens []string
	for _, tok := range tokenRE.Split(title, -1) {
		if len(tok) > 2 {
			tokens = append(tokens, strings.ToLower(tok))
		}
	}
	return tokens
}

// matchPhrases selects each candidate phrase whose first word occurs as a
// substring of the lowered summary. The whole phrase is not required to be
// present; this loose heuristic is intentional and load-bearing for messy
// episode summaries.
func matchPhrases(candidates []string, lowerSummary string) []string {
	var matched []string
	for _, phrase := range candidates {
		words := strings.Fields(strings.ToLower(phrase))
		if len(words) == 0 {
			continue
		}
		if strings.Contains(lowerSummary, words[0]) {
			matched = append(matched, strings.ToLower(phrase))
		}
	}
	return matched
}

// finalize lowercases each token, strips its internal whitespace, then
// deduplicates preserving insertion order and caps the list.
func (s *Synthesizer) finalize(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	var out []string
	for _, tag := range raw {
		tag = strings.ToLower(strings.Join(strings.Fields(tag), ""))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
		if len(out) == s.maxTags {
			break
		}
	}
	return out
}
