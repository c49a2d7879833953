package chapters

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/castkit/shownotes/internal/textutil"
)

// clockRE matches the first clock token on a line: "M:SS", "MM:SS",
// "H:MM:SS", or "HH:MM:SS". Only the shape is validated; out-of-range values
// like "99:99" pass through as-is.
var clockRE = regexp.MustCompile(`(\d{1,2}):(\d{2})(?::(\d{2}))?`)

// labelSeparators are the decoration characters stripped from the start of a
// label after the clock token: closing brackets, dashes, colons, arrows,
// pipes, periods, and whitespace.
const labelSeparators = " \t)]}>|.:-–—→"

const rtfPrefix = `{\rtf`

// Options controls parsing behavior.
type Options struct {
	// KeepEmoji leaves emoji glyphs in labels instead of stripping them.
	KeepEmoji bool
	// CollapseDuplicates drops an entry whose label matches the previous
	// kept entry's label case-insensitively. Targets repeated chapter
	// markers in messy exports, not global duplicates.
	CollapseDuplicates bool
}

// DefaultOptions strips emoji and collapses consecutive duplicate labels.
func DefaultOptions() Options {
	return Options{KeepEmoji: false, CollapseDuplicates: true}
}

// Parser converts raw multi-line timestamp text into an ordered chapter list.
type Parser struct {
	opts     Options
	acronyms map[string]string
}

// NewParser creates a parser. The acronym table feeds label sentence-casing
// and may be nil.
func NewParser(opts Options, acronyms map[string]string) *Parser {
	return &Parser{opts: opts, acronyms: acronyms}
}

// Parse scans rawText line by line and returns the chapters found, in source
// order. Lines without a clock token are skipped without error. No ordering
// is imposed and times are not required to be monotonic.
func (p *Parser) Parse(rawText string) []Entry {
	var entries []Entry
	for _, line := range candidateLines(rawText) {
		entry, ok := p.parseLine(line)
		if !ok {
			continue
		}
		if p.opts.CollapseDuplicates && len(entries) > 0 &&
			strings.EqualFold(entries[len(entries)-1].Label, entry.Label) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// candidateLines splits input into lines to scan. Plain text splits on
// newlines. Input that opens with an RTF container token splits on backslash
// control sequences instead, keeping only fragments that carry a clock
// token — a best-effort pre-filter, not an RTF parser.
func candidateLines(rawText string) []string {
	trimmed := strings.TrimLeft(rawText, " \t\r\n")
	if !strings.HasPrefix(trimmed, rtfPrefix) {
		return strings.Split(rawText, "\n")
	}
	var lines []string
	for _, frag := range strings.Split(trimmed, `\`) {
		if clockRE.MatchString(frag) {
			lines = append(lines, frag)
		}
	}
	return lines
}

func (p *Parser) parseLine(line string) (Entry, bool) {
	m := clockRE.FindStringSubmatchIndex(line)
	if m == nil {
		return Entry{}, false
	}
	groups := clockRE.FindStringSubmatch(line[m[0]:m[1]])

	var h, min, sec int
	if groups[3] != "" {
		h, _ = strconv.Atoi(groups[1])
		min, _ = strconv.Atoi(groups[2])
		sec, _ = strconv.Atoi(groups[3])
	} else {
		min, _ = strconv.Atoi(groups[1])
		sec, _ = strconv.Atoi(groups[2])
	}

	label := strings.TrimLeft(line[m[1]:], labelSeparators)
	if !p.opts.KeepEmoji {
		label = textutil.StripEmoji(label)
	}
	label = textutil.TidyLabel(label, p.acronyms)

	return Entry{
		Time:    formatClock(h, min, sec),
		Seconds: h*3600 + min*60 + sec,
		Label:   label,
	}, true
}

// formatClock renders the canonical clock string: hour omitted when zero,
// minutes and seconds zero-padded only in the positions that need it.
func formatClock(h, m, s int) string {
	if h == 0 {
		return fmt.Sprintf("%d:%02d", m, s)
	}
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
