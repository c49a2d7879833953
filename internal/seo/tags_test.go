package seo

import (
	"reflect"
	"strings"
	"testing"
)

func testTables() Tables {
	return Tables{
		BaseTags:         []string{"podcast", "interview"},
		PrimaryPhrases:   []string{"basketball training", "basketball", "youth sports"},
		SecondaryPhrases: []string{"parenting", "nutrition"},
		HashtagRules: []HashtagRule{
			{Pattern: `\bbasketball|hoops\b`, Hashtags: []string{"hoopers", "ballislife"}},
			{Pattern: `\bparent`, Hashtags: []string{"sportsparents"}},
		},
		MaxTags: 15,
	}
}

// TestTags_KeywordMatching verifies the first-word substring heuristic: a
// candidate phrase is selected when its first word appears anywhere in the
// lowered summary, and the full phrase becomes the tag (whitespace stripped).
func TestTags_KeywordMatching(t *testing.T) {
	s := NewSynthesizer(testTables())
	summary := "A conversation about basketball and parenting."

	got := s.Tags("", "", summary, nil)

	for _, want := range []string{"basketball", "basketballtraining", "parenting"} {
		if !contains(got, want) {
			t.Errorf("Tags = %v, missing %q", got, want)
		}
	}
	if contains(got, "nutrition") {
		t.Errorf("Tags = %v, %q should not match", got, "nutrition")
	}
}

// TestTags_BaseTagsFirst verifies the base anchors lead the list.
func TestTags_BaseTagsFirst(t *testing.T) {
	s := NewSynthesizer(testTables())
	got := s.Tags("Episode One", "", "nothing matches here", nil)

	if len(got) < 2 || got[0] != "podcast" || got[1] != "interview" {
		t.Fatalf("Tags = %v, want base tags first", got)
	}
}

// TestTags_TitleTokenization verifies splitting on non-alphanumerics (keeping
// '+') and the len>2 filter.
func TestTags_TitleTokenization(t *testing.T) {
	s := NewSynthesizer(Tables{MaxTags: 15})
	got := s.Tags("Go & C++ in 2024: a DEEP dive!", "", "", nil)

	want := []string{"c++", "2024", "deep", "dive"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tags = %v, want %v", got, want)
	}
}

// TestTags_GuestNamesIncluded verifies guest names become whitespace-free
// lowercase tags.
func TestTags_GuestNamesIncluded(t *testing.T) {
	s := NewSynthesizer(testTables())
	got := s.Tags("", "", "", []string{"Jordan Smith"})

	if !contains(got, "jordansmith") {
		t.Fatalf("Tags = %v, missing guest tag", got)
	}
}

// TestTags_Idempotent verifies two runs over identical inputs yield an
// identical ordered list, bounded by the cap.
func TestTags_Idempotent(t *testing.T) {
	s := NewSynthesizer(testTables())
	summary := "basketball parenting youth sports nutrition talk"
	guests := []string{"Alex Jones", "Sam Lee"}

	first := s.Tags("The Long Game", "mindset", summary, guests)
	second := s.Tags("The Long Game", "mindset", summary, guests)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Tags not idempotent: %v vs %v", first, second)
	}
	if len(first) > 15 {
		t.Fatalf("Tags length %d exceeds cap", len(first))
	}
}

// TestTags_CapAndDedup verifies lowercasing, case-insensitive first-wins
// dedup, and the configured cap.
func TestTags_CapAndDedup(t *testing.T) {
	s := NewSynthesizer(Tables{
		BaseTags: []string{"Alpha", "alpha", "beta", "gamma", "delta"},
		MaxTags:  3,
	})
	got := s.Tags("", "", "", nil)

	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tags = %v, want %v", got, want)
	}
}

// TestHashtags_TriggersAndPrefix verifies per-topic regex triggers unlock
// their clusters and every entry carries the '#' prefix.
func TestHashtags_TriggersAndPrefix(t *testing.T) {
	s := NewSynthesizer(testTables())
	summary := "basketball stories for sports parents"

	tags := s.Tags("", "", summary, nil)
	got := s.Hashtags(tags, summary)

	for _, want := range []string{"#hoopers", "#ballislife", "#sportsparents"} {
		if !contains(got, want) {
			t.Errorf("Hashtags = %v, missing %q", got, want)
		}
	}
	for _, h := range got {
		if !strings.HasPrefix(h, "#") {
			t.Errorf("Hashtags entry %q missing '#' prefix", h)
		}
	}
}

// TestHashtags_NoTrigger verifies an unmatched rule contributes nothing.
func TestHashtags_NoTrigger(t *testing.T) {
	s := NewSynthesizer(testTables())
	got := s.Hashtags([]string{"podcast"}, "a quiet episode about gardening")

	if contains(got, "#hoopers") || contains(got, "#sportsparents") {
		t.Fatalf("Hashtags = %v, unexpected triggered cluster", got)
	}
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
