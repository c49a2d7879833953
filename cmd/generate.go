package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/castkit/shownotes/config"
	"github.com/castkit/shownotes/internal/brand"
	"github.com/castkit/shownotes/internal/chapters"
	"github.com/castkit/shownotes/internal/display"
	"github.com/castkit/shownotes/internal/episode"
	"github.com/castkit/shownotes/internal/feed"
	"github.com/castkit/shownotes/internal/prompt"
	"github.com/castkit/shownotes/internal/render"
	"github.com/castkit/shownotes/internal/seo"
	"github.com/castkit/shownotes/internal/textutil"
)

func newGenerateCmd() *cobra.Command {
	var (
		title          string
		guests         []string
		hosts          []string
		brandID        string
		summary        string
		summaryFile    string
		timestampsPath string
		feedURL        string
		linkOverrides  []string
		askSEO         bool
		keepEmoji      bool
		noDedupe       bool
		jsonOutput     bool
		outPath        string
		outDir         string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate show notes from a timestamp listing and episode metadata",
		Long: "Generate show notes from a timestamp listing and episode metadata.\n" +
			"Timestamps are read from --timestamps (use '-' for stdin); malformed\n" +
			"lines are skipped. Output is Markdown, with an optional JSON mirror.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			brandDefaults, err := cfg.Brand(brandID)
			if err != nil {
				return err
			}
			overrides, err := parseLinkOverrides(linkOverrides)
			if err != nil {
				return err
			}
			b := brand.Merge(brandDefaults, brand.Brand{Links: overrides})

			if feedURL != "" && (title == "" || summary == "") {
				ep, err := feed.Latest(context.Background(), feedURL)
				if err != nil {
					return err
				}
				logrus.WithField("feed", feedURL).Debug("prefilled metadata from feed")
				if title == "" {
					title = ep.Title
				}
				if summary == "" {
					summary = ep.Summary
				}
			}

			if summary == "" && summaryFile != "" {
				data, err := os.ReadFile(summaryFile)
				if err != nil {
					return fmt.Errorf("failed to read summary file: %w", err)
				}
				summary = strings.TrimSpace(string(data))
			}

			rawTimestamps, err := readSource(timestampsPath)
			if err != nil {
				return err
			}

			req := &episode.Request{
				Title:         title,
				Guests:        guests,
				Hosts:         hosts,
				BrandName:     b.Name,
				Summary:       summary,
				RawTimestamps: rawTimestamps,
				Links:         b.Links,
				KeepEmoji:     keepEmoji,
			}
			if askSEO {
				prompter := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
				details, err := prompter.AskSEO()
				if err != nil {
					return err
				}
				req.SEO = details
			}
			if err := req.Validate(); err != nil {
				return err
			}

			acronyms := cfg.AcronymTable()
			parser := chapters.NewParser(chapters.Options{
				KeepEmoji:          keepEmoji,
				CollapseDuplicates: !noDedupe,
			}, acronyms)
			chs := parser.Parse(req.RawTimestamps)

			synth := seo.NewSynthesizer(cfg.SEO)
			resolvedTitle := render.ResolveTitle(req.Title, req.Summary, req.Guests, b.Name, acronyms)
			tags := synth.Tags(resolvedTitle, req.SEO.MainKeyword, req.Summary, req.Guests)
			hashtags := synth.Hashtags(tags, req.Summary)

			doc := render.Compose(req, b, chs, tags, hashtags, acronyms)

			markdown := render.Markdown(doc)
			if outPath == "-" {
				fmt.Fprint(cmd.OutOrStdout(), markdown)
				if jsonOutput {
					mirror, err := render.JSON(doc)
					if err != nil {
						return err
					}
					fmt.Fprint(cmd.OutOrStdout(), mirror)
				}
				return nil
			}

			mdPath := outPath
			if mdPath == "" {
				dir := outDir
				if dir == "" {
					dir = cfg.OutputDir
				}
				mdPath = filepath.Join(dir, textutil.Slugify(doc.Title)+".md")
			}
			if err := writeFile(mdPath, markdown); err != nil {
				return err
			}
			display.Successf(cmd.OutOrStdout(), "Wrote %s (%d chapters, %d tags)", mdPath, len(chs), len(tags))

			if jsonOutput {
				mirror, err := render.JSON(doc)
				if err != nil {
					return err
				}
				jsonPath := strings.TrimSuffix(mdPath, filepath.Ext(mdPath)) + ".json"
				if err := writeFile(jsonPath, mirror); err != nil {
					return err
				}
				display.Successf(cmd.OutOrStdout(), "Wrote %s", jsonPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Episode title (auto-derived from the summary when omitted)")
	cmd.Flags().StringSliceVar(&guests, "guest", nil, "Guest name (repeatable)")
	cmd.Flags().StringSliceVar(&hosts, "host", nil, "Host name (repeatable, overrides brand defaults)")
	cmd.Flags().StringVarP(&brandID, "brand", "b", "", "Brand identifier from configuration")
	cmd.Flags().StringVar(&summary, "summary", "", "Free-text episode summary")
	cmd.Flags().StringVar(&summaryFile, "summary-file", "", "Read the summary from a file")
	cmd.Flags().StringVarP(&timestampsPath, "timestamps", "t", "", "Timestamp listing file ('-' for stdin)")
	cmd.Flags().StringVar(&feedURL, "feed", "", "Prefill title/summary from the newest item of this RSS feed")
	cmd.Flags().StringArrayVar(&linkOverrides, "link", nil, "Platform link override as key=url (repeatable)")
	cmd.Flags().BoolVar(&askSEO, "seo", false, "Interactively prompt for SEO details")
	cmd.Flags().BoolVar(&keepEmoji, "keep-emoji", false, "Keep emoji in chapter labels")
	cmd.Flags().BoolVar(&noDedupe, "no-dedupe", false, "Keep consecutive chapters with identical labels")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Also write a JSON mirror of the output")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file path ('-' for stdout; default: <title-slug>.md)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for computed output paths")

	return cmd
}

// readSource reads timestamp text from a file, or from stdin when path is "-".
func readSource(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read timestamps file: %w", err)
	}
	return string(data), nil
}

func parseLinkOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	links := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, url, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid link override %q: expected key=url", pair)
		}
		if !brand.KnownPlatform(key) {
			return nil, fmt.Errorf("unknown platform %q (known: %s)", key, strings.Join(brand.PlatformKeys, ", "))
		}
		links[key] = url
	}
	return links, nil
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
