package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	multiSpaceRE = regexp.MustCompile(`\s+`)
	wordRE       = regexp.MustCompile(`\b[\w+]+\b`)
	nonSlugRE    = regexp.MustCompile(`[^\w\s-]`)
	multiDashRE  = regexp.MustCompile(`-+`)
)

// emojiRanges is a best-effort allowlist of Unicode blocks stripped by
// StripEmoji. It is not a complete emoji database; it covers the blocks that
// show up in real timestamp exports (pictographs, dingbats, flags, variation
// selectors, ZWJ).
var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200D, Hi: 0x200D, Stride: 1},
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1},
		{Lo: 0x2B00, Hi: 0x2BFF, Stride: 1},
		{Lo: 0xFE00, Hi: 0xFE0F, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1F0FF, Stride: 1},
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1},
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1},
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1},
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1},
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1},
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1},
	},
}

// StripEmoji removes characters from the fixed emoji/symbol blocks above and
// trims the surrounding whitespace.
func StripEmoji(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(emojiRanges, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// SentenceCase lowercases the whole string, capitalizes the first letter, and
// restores any whole word found in the acronym table to its canonical
// uppercase form. Lookup is case-insensitive.
func SentenceCase(s string, acronyms map[string]string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	s = string(r)
	if len(acronyms) == 0 {
		return s
	}
	return wordRE.ReplaceAllStringFunc(s, func(word string) string {
		if canonical, ok := acronyms[strings.ToLower(word)]; ok {
			return canonical
		}
		return word
	})
}

// TidyLabel cleans one chapter label: whitespace runs collapse to a single
// space, trailing separator clusters are dropped, and the result is
// sentence-cased. An empty result falls back to "Segment" so a chapter never
// renders without a label.
func TidyLabel(s string, acronyms map[string]string) string {
	s = multiSpaceRE.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, " \t-–—:;,.|")
	s = SentenceCase(s, acronyms)
	if s == "" {
		return "Segment"
	}
	return s
}

// Slugify converts free text to a filename- and URL-safe slug: lowercase,
// diacritics folded away, punctuation removed, whitespace and repeated
// hyphens collapsed to a single hyphen.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = stripDiacritics(s)
	s = nonSlugRE.ReplaceAllString(s, "")
	s = multiSpaceRE.ReplaceAllString(s, "-")
	s = multiDashRE.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
