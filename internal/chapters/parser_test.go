package chapters

import "testing"

func defaultParser() *Parser {
	return NewParser(DefaultOptions(), map[string]string{"nba": "NBA", "ai": "AI"})
}

// TestParse_HourMinuteSecond verifies the full H:MM:SS form: canonical time,
// exact second decomposition, and the cleaned label.
func TestParse_HourMinuteSecond(t *testing.T) {
	got := defaultParser().Parse("1:02:03 Intro")

	if len(got) != 1 {
		t.Fatalf("Parse returned %d entries, want 1", len(got))
	}
	e := got[0]
	if e.Time != "1:02:03" {
		t.Errorf("Time = %q, want %q", e.Time, "1:02:03")
	}
	if e.Seconds != 3723 {
		t.Errorf("Seconds = %d, want 3723", e.Seconds)
	}
	if e.Label != "Intro" {
		t.Errorf("Label = %q, want %q", e.Label, "Intro")
	}
}

// TestParse_NoClockPattern verifies that text without any clock token on any
// line yields an empty sequence, not an error.
func TestParse_NoClockPattern(t *testing.T) {
	got := defaultParser().Parse("hello\njust some notes\n- bullet point\n")
	if len(got) != 0 {
		t.Fatalf("Parse returned %d entries, want 0", len(got))
	}
}

// TestParse_SkipsLinesWithoutTime verifies that unmatched lines are dropped
// while matched lines around them survive in source order.
func TestParse_SkipsLinesWithoutTime(t *testing.T) {
	raw := "Chapters below\n0:00 Intro\nno time here\n1:30 Discussion\n"
	got := defaultParser().Parse(raw)

	if len(got) != 2 {
		t.Fatalf("Parse returned %d entries, want 2", len(got))
	}
	if got[0].Time != "0:00" || got[1].Time != "1:30" {
		t.Fatalf("times = %q, %q, want 0:00, 1:30", got[0].Time, got[1].Time)
	}
	if got[0].Seconds != 0 || got[1].Seconds != 90 {
		t.Fatalf("seconds = %d, %d, want 0, 90", got[0].Seconds, got[1].Seconds)
	}
}

// TestParse_LeadingDecoration verifies that bullets and brackets around the
// clock token are tolerated and separator characters are stripped from the
// label start.
func TestParse_LeadingDecoration(t *testing.T) {
	cases := []struct {
		in    string
		label string
	}{
		{"- [0:15] - the setup", "The setup"},
		{"(2:05) > recap time", "Recap time"},
		{"* 3:00 | sponsor break", "Sponsor break"},
		{"12:34 ... closing thoughts", "Closing thoughts"},
	}
	p := defaultParser()
	for _, c := range cases {
		got := p.Parse(c.in)
		if len(got) != 1 {
			t.Fatalf("Parse(%q) returned %d entries, want 1", c.in, len(got))
		}
		if got[0].Label != c.label {
			t.Errorf("Parse(%q) label = %q, want %q", c.in, got[0].Label, c.label)
		}
	}
}

// TestParse_StripsEmoji verifies that emoji are removed from labels by
// default and kept with KeepEmoji.
func TestParse_StripsEmoji(t *testing.T) {
	raw := "(0:05) keep emoji \U0001F399 test"

	got := defaultParser().Parse(raw)
	if len(got) != 1 {
		t.Fatalf("Parse returned %d entries, want 1", len(got))
	}
	if got[0].Label != "Keep emoji test" {
		t.Errorf("Label = %q, want %q", got[0].Label, "Keep emoji test")
	}

	keep := NewParser(Options{KeepEmoji: true, CollapseDuplicates: true}, nil)
	got = keep.Parse(raw)
	if got[0].Label != "Keep emoji \U0001F399 test" {
		t.Errorf("Label with KeepEmoji = %q, want the glyph preserved", got[0].Label)
	}
}

// TestParse_CollapseConsecutiveDuplicates verifies keep-first dedup of
// case-insensitively equal neighboring labels, and that non-adjacent repeats
// survive.
func TestParse_CollapseConsecutiveDuplicates(t *testing.T) {
	raw := "0:00 Intro\n0:30 INTRO\n1:00 Middle\n1:30 intro\n"
	got := defaultParser().Parse(raw)

	if len(got) != 3 {
		t.Fatalf("Parse returned %d entries, want 3", len(got))
	}
	if got[0].Time != "0:00" || got[1].Label != "Middle" || got[2].Label != "Intro" {
		t.Fatalf("unexpected entries: %+v", got)
	}

	all := NewParser(Options{CollapseDuplicates: false}, nil).Parse(raw)
	if len(all) != 4 {
		t.Fatalf("Parse without dedup returned %d entries, want 4", len(all))
	}
}

// TestParse_OutOfRangeAccepted verifies the shape-only validation policy:
// "99:99" is a valid clock token even though it is not a valid time.
func TestParse_OutOfRangeAccepted(t *testing.T) {
	got := defaultParser().Parse("99:99 overflow segment")
	if len(got) != 1 {
		t.Fatalf("Parse returned %d entries, want 1", len(got))
	}
	if got[0].Time != "99:99" {
		t.Errorf("Time = %q, want %q", got[0].Time, "99:99")
	}
	if got[0].Seconds != 99*60+99 {
		t.Errorf("Seconds = %d, want %d", got[0].Seconds, 99*60+99)
	}
}

// TestParse_EmptyLabelFallsBack verifies the "Segment" placeholder for lines
// that carry a time but no usable label.
func TestParse_EmptyLabelFallsBack(t *testing.T) {
	got := defaultParser().Parse("4:20 ---\n")
	if len(got) != 1 {
		t.Fatalf("Parse returned %d entries, want 1", len(got))
	}
	if got[0].Label != "Segment" {
		t.Errorf("Label = %q, want %q", got[0].Label, "Segment")
	}
}

// TestParse_AcronymsRestored verifies that sentence casing restores
// whitelisted acronyms inside labels.
func TestParse_AcronymsRestored(t *testing.T) {
	got := defaultParser().Parse("5:00 THE NBA DRAFT TALK")
	if len(got) != 1 {
		t.Fatalf("Parse returned %d entries, want 1", len(got))
	}
	if got[0].Label != "The NBA draft talk" {
		t.Errorf("Label = %q, want %q", got[0].Label, "The NBA draft talk")
	}
}

// TestParse_RTFPrefilter verifies the best-effort rich-text path: input
// opening with an RTF container token is split on control tokens and only
// fragments carrying a clock token become chapters.
func TestParse_RTFPrefilter(t *testing.T) {
	raw := `{\rtf1\ansi\deff0 {\fonttbl}\par 0:00 Intro\par 2:30 Questions\par no time here}`
	got := defaultParser().Parse(raw)

	if len(got) != 2 {
		t.Fatalf("Parse returned %d entries, want 2", len(got))
	}
	if got[0].Label != "Intro" || got[1].Label != "Questions" {
		t.Fatalf("labels = %q, %q, want Intro, Questions", got[0].Label, got[1].Label)
	}
}

// TestParse_SourceOrderKept verifies that no sorting is imposed even when
// times are not monotonic.
func TestParse_SourceOrderKept(t *testing.T) {
	got := defaultParser().Parse("5:00 Later\n0:10 Earlier\n")
	if len(got) != 2 {
		t.Fatalf("Parse returned %d entries, want 2", len(got))
	}
	if got[0].Time != "5:00" || got[1].Time != "0:10" {
		t.Fatalf("order changed: %q then %q", got[0].Time, got[1].Time)
	}
}
