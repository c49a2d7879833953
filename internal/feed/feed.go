// Package feed prefills episode metadata from a podcast RSS feed. Explicit
// flags always win over anything found here.
package feed

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// Episode is the metadata pulled from the newest feed item.
type Episode struct {
	Title   string
	Summary string
	Link    string
}

// Latest fetches the feed and returns the newest item's title and plain-text
// summary. Feed descriptions are usually HTML; they are flattened to text
// before use.
func Latest(ctx context.Context, url string) (Episode, error) {
	parsed, err := gofeed.NewParser().ParseURLWithContext(url, ctx)
	if err != nil {
		return Episode{}, fmt.Errorf("failed to fetch feed %s: %w", url, err)
	}
	if len(parsed.Items) == 0 {
		return Episode{}, fmt.Errorf("feed %s has no items", url)
	}

	items := parsed.Items
	sort.SliceStable(items, func(i, j int) bool {
		it, jt := items[i].PublishedParsed, items[j].PublishedParsed
		if it == nil || jt == nil {
			return i < j
		}
		return it.After(*jt)
	})
	item := items[0]

	summary := item.Description
	if summary == "" {
		summary = item.Content
	}

	return Episode{
		Title:   strings.TrimSpace(item.Title),
		Summary: htmlToText(summary),
		Link:    item.Link,
	}, nil
}

// htmlToText flattens an HTML fragment to whitespace-normalized plain text.
// Parse failures fall back to the raw input rather than erroring: feed
// descriptions are advisory, not required.
func htmlToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
