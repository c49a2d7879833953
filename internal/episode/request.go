// Package episode defines the read-only request aggregate that flows through
// the generation pipeline.
package episode

import (
	"errors"
	"strings"
)

var (
	// ErrMissingSummary is returned when no episode summary was supplied.
	ErrMissingSummary = errors.New("episode summary is required")
	// ErrMissingTimestamps is returned when no timestamp source was supplied.
	ErrMissingTimestamps = errors.New("timestamp text is required")
)

// SEODetails is the optional metadata bag collected by the interactive
// prompt. Every field may be empty.
type SEODetails struct {
	MainKeyword    string `json:"main_keyword,omitempty"`
	GuestExpertise string `json:"guest_expertise,omitempty"`
	TargetAudience string `json:"target_audience,omitempty"`
	KeyTakeaways   string `json:"key_takeaways,omitempty"`
}

// Empty reports whether no SEO detail was provided at all.
func (d SEODetails) Empty() bool {
	return d.MainKeyword == "" && d.GuestExpertise == "" &&
		d.TargetAudience == "" && d.KeyTakeaways == ""
}

// Request aggregates every input to one generation run. It is constructed
// once per invocation and read-only afterwards.
type Request struct {
	Title         string            `json:"title,omitempty"`
	Guests        []string          `json:"guests,omitempty"`
	Hosts         []string          `json:"hosts,omitempty"`
	BrandName     string            `json:"brand"`
	Summary       string            `json:"summary"`
	RawTimestamps string            `json:"-"`
	Links         map[string]string `json:"links,omitempty"`
	SEO           SEODetails        `json:"seo,omitempty"`
	KeepEmoji     bool              `json:"keep_emoji,omitempty"`
}

// Validate enforces the required fields. Missing summary or timestamp text is
// a user error and stops the run before any generation work begins.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Summary) == "" {
		return ErrMissingSummary
	}
	if strings.TrimSpace(r.RawTimestamps) == "" {
		return ErrMissingTimestamps
	}
	return nil
}
