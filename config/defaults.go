package config

import (
	"github.com/castkit/shownotes/internal/brand"
	"github.com/castkit/shownotes/internal/seo"
)

// Default returns the built-in configuration used when no config file is
// present. The tables mirror what the tool originally shipped hardcoded:
// generic show anchors, sport and podcast candidate phrases, and the acronym
// whitelist for sentence casing.
func Default() *Config {
	return &Config{
		OutputDir: ".",
		Acronyms: []string{
			"NBA", "WNBA", "NFL", "MLB", "NHL", "NCAA", "UFC", "FIFA",
			"AI", "API", "CEO", "CTO", "DIY", "MVP", "USA", "TV", "VC",
		},
		SEO: seo.Tables{
			BaseTags: []string{"podcast", "interview"},
			PrimaryPhrases: []string{
				"basketball training", "basketball", "hoops", "sports parents",
				"youth sports", "athlete mindset", "coaching", "recruiting",
			},
			SecondaryPhrases: []string{
				"parenting", "entrepreneurship", "mental health", "nutrition",
				"leadership", "community", "faith", "fitness",
			},
			HashtagRules: []seo.HashtagRule{
				{Pattern: `\bbasketball|hoops|nba\b`, Hashtags: []string{"basketball", "hoopers", "ballislife"}},
				{Pattern: `\bparent`, Hashtags: []string{"sportsparents", "parenting"}},
				{Pattern: `\bcoach`, Hashtags: []string{"coaching", "playerdevelopment"}},
				{Pattern: `\bpodcast\b`, Hashtags: []string{"podcastlife"}},
			},
			MaxTags: 15,
		},
		Brands: map[string]brand.Brand{
			"default": {
				Name: "The Show",
				CTA:  "Like, subscribe, and share with someone who needs to hear this.",
			},
		},
		DefaultBrand: "default",
	}
}
