package render

import (
	"fmt"
	"strings"

	"github.com/castkit/shownotes/internal/brand"
	"github.com/castkit/shownotes/internal/chapters"
	"github.com/castkit/shownotes/internal/episode"
	"github.com/castkit/shownotes/internal/textutil"
)

// titleWordCount is how many summary words seed an auto-derived title.
const titleWordCount = 8

// Compose builds the render payload from the validated request, the resolved
// brand, and the already-derived chapter and tag sets.
func Compose(req *episode.Request, b brand.Brand, chs []chapters.Entry, tags, hashtags []string, acronyms map[string]string) Document {
	return Document{
		Title:    ResolveTitle(req.Title, req.Summary, req.Guests, b.Name, acronyms),
		Brand:    b.Name,
		Hosts:    hostList(req.Hosts, b.Hosts),
		Guests:   req.Guests,
		Summary:  strings.TrimSpace(req.Summary),
		Details:  detailLines(req, hostList(req.Hosts, b.Hosts)),
		Chapters: chs,
		Links:    b.Links,
		CTA:      b.CTA,
		Tags:     tags,
		Hashtags: hashtags,
	}
}

// ResolveTitle prefers the explicit title. Otherwise it derives one from the
// first few summary words, the guest names, and the brand name,
// sentence-cased with acronyms restored.
func ResolveTitle(explicit, summary string, guests []string, brandName string, acronyms map[string]string) string {
	if t := strings.TrimSpace(explicit); t != "" {
		return t
	}
	words := strings.Fields(summary)
	if len(words) > titleWordCount {
		words = words[:titleWordCount]
	}
	base := strings.TrimRight(strings.Join(words, " "), ".,:;!?")
	base = textutil.SentenceCase(base, acronyms)
	if base == "" {
		base = "Episode notes"
	}
	if len(guests) > 0 {
		base += " with " + joinNames(guests)
	}
	if brandName != "" {
		base += " | " + brandName
	}
	return base
}

func hostList(explicit, defaults []string) []string {
	if len(explicit) > 0 {
		return explicit
	}
	return defaults
}

// detailLines renders the optional guest/host/SEO phrasing below the summary.
// Empty fields simply produce no line; there is never a placeholder value in
// the output.
func detailLines(req *episode.Request, hosts []string) []string {
	var lines []string
	if len(req.Guests) > 0 {
		line := "Featuring " + joinNames(req.Guests)
		if req.SEO.GuestExpertise != "" {
			line += ", " + strings.TrimRight(req.SEO.GuestExpertise, ".")
		}
		lines = append(lines, line+".")
	}
	if len(hosts) > 0 {
		lines = append(lines, "Hosted by "+joinNames(hosts)+".")
	}
	if req.SEO.TargetAudience != "" {
		lines = append(lines, "For "+strings.TrimRight(req.SEO.TargetAudience, ".")+".")
	}
	if req.SEO.KeyTakeaways != "" {
		lines = append(lines, "Key takeaways: "+req.SEO.KeyTakeaways)
	}
	return lines
}

// joinNames renders "A", "A and B", or "A, B and C".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return fmt.Sprintf("%s and %s", strings.Join(names[:len(names)-1], ", "), names[len(names)-1])
	}
}
