package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/castkit/shownotes/config"
	"github.com/castkit/shownotes/internal/chapters"
	"github.com/castkit/shownotes/internal/display"
)

func newChaptersCmd() *cobra.Command {
	var (
		keepEmoji  bool
		noDedupe   bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "chapters <path>",
		Short: "Parse a timestamp listing and preview the chapter list",
		Long:  "Parse a timestamp listing without generating notes. Use '-' to read from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			raw, err := readSource(args[0])
			if err != nil {
				return err
			}

			parser := chapters.NewParser(chapters.Options{
				KeepEmoji:          keepEmoji,
				CollapseDuplicates: !noDedupe,
			}, cfg.AcronymTable())
			entries := parser.Parse(raw)

			if jsonOutput {
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal chapters: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No chapters found.")
				return nil
			}
			display.PrintChaptersTable(entries, cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepEmoji, "keep-emoji", false, "Keep emoji in chapter labels")
	cmd.Flags().BoolVar(&noDedupe, "no-dedupe", false, "Keep consecutive chapters with identical labels")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
