package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/castkit/shownotes/config"
	"github.com/castkit/shownotes/internal/display"
)

func newBrandsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "brands",
		Short: "List configured brands",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			if len(cfg.Brands) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No brands configured.")
				return nil
			}

			if jsonOutput {
				data, err := json.MarshalIndent(cfg.Brands, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal brands: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			display.PrintBrandsTable(cfg.Brands, cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
