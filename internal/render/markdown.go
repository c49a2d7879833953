// Package render assembles the final show-notes documents. Composition is
// pure string templating over already-normalized inputs; nothing here mutates
// its arguments or touches the filesystem.
package render

import (
	"fmt"
	"strings"

	"github.com/castkit/shownotes/internal/brand"
	"github.com/castkit/shownotes/internal/chapters"
)

// Document is the fully resolved payload handed to the renderers.
type Document struct {
	Title    string            `json:"title"`
	Brand    string            `json:"brand"`
	Hosts    []string          `json:"hosts,omitempty"`
	Guests   []string          `json:"guests,omitempty"`
	Summary  string            `json:"summary"`
	Details  []string          `json:"details,omitempty"`
	Chapters []chapters.Entry  `json:"chapters"`
	Links    map[string]string `json:"links,omitempty"`
	CTA      string            `json:"cta,omitempty"`
	Tags     []string          `json:"tags"`
	Hashtags []string          `json:"hashtags"`
}

// platformLabels maps link-map keys to their display names.
var platformLabels = map[string]string{
	"youtube":   "YouTube",
	"spotify":   "Spotify",
	"apple":     "Apple Podcasts",
	"anchor":    "Anchor",
	"tiktok":    "TikTok",
	"facebook":  "Facebook",
	"instagram": "Instagram",
	"patreon":   "Patreon",
	"shop":      "Shop",
}

const (
	noChaptersPlaceholder = "No timestamps provided."
	noLinksPlaceholder    = "Links coming soon."
)

var mdEscaper = strings.NewReplacer("*", `\*`, "_", `\_`, "`", "\\`")

// EscapeMarkdown escapes the emphasis and code markers in free text so user
// input cannot break document structure. Only asterisk, underscore, and
// backtick are escaped.
func EscapeMarkdown(s string) string {
	return mdEscaper.Replace(s)
}

// Markdown renders the document with the fixed section order: title,
// description, chapters, links/CTA, tags, hashtags. Sections backed by empty
// data either render their documented placeholder or are omitted entirely.
func Markdown(doc Document) string {
	var sb strings.Builder

	sb.WriteString("# " + EscapeMarkdown(doc.Title) + "\n\n")

	sb.WriteString(doc.Summary + "\n")
	for _, line := range doc.Details {
		sb.WriteString("\n" + line + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("## Chapters\n\n")
	if len(doc.Chapters) == 0 {
		sb.WriteString(noChaptersPlaceholder + "\n")
	} else {
		for _, ch := range doc.Chapters {
			fmt.Fprintf(&sb, "%s %s\n", ch.Time, EscapeMarkdown(ch.Label))
		}
	}
	sb.WriteString("\n")

	sb.WriteString("## Listen & Follow\n\n")
	wroteLink := false
	for _, key := range brand.PlatformKeys {
		url := doc.Links[key]
		if url == "" {
			continue
		}
		label := platformLabels[key]
		if label == "" {
			label = key
		}
		fmt.Fprintf(&sb, "- [%s](%s)\n", label, url)
		wroteLink = true
	}
	if !wroteLink {
		sb.WriteString(noLinksPlaceholder + "\n")
	}
	if doc.CTA != "" {
		sb.WriteString("\n" + doc.CTA + "\n")
	}
	sb.WriteString("\n")

	if len(doc.Tags) > 0 {
		sb.WriteString("## Tags\n\n")
		sb.WriteString(strings.Join(doc.Tags, ", ") + "\n\n")
	}
	if len(doc.Hashtags) > 0 {
		sb.WriteString(strings.Join(doc.Hashtags, " ") + "\n")
	}

	return sb.String()
}
