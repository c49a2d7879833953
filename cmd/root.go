package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for shownotes.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "shownotes",
		Short:         "Generate podcast show notes from timestamps and metadata",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env is optional; missing files are fine.
			_ = godotenv.Load()
			configureLogging(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default: $SHOWNOTES_CONFIG, then ~/.config/shownotes/config.yml)")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newChaptersCmd())
	rootCmd.AddCommand(newBrandsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func configureLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	switch os.Getenv("LOG_LEVEL") {
	case "DEBUG":
		logrus.SetLevel(logrus.DebugLevel)
	case "WARN":
		logrus.SetLevel(logrus.WarnLevel)
	case "ERROR":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
