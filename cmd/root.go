// Package cmd implements the chapterbook command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chapterbook/config"
)

var (
	cfgFile string
	verbose bool

	// cfg is the active configuration, loaded before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "chapterbook",
	Short: "Chapter list toolkit for media files",
	Long: `chapterbook parses free-form chapter lists (pasted text, web pages,
embedded markers) into canonical time/title tables, and maintains the
plain-text chapter files a media player reads alongside its videos.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Verbose = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ./chapterbook.yaml and ~/.chapterbook/)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show detailed output")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
