package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chapterbook/chaptertable"
	"chapterbook/webimport"
)

var fetchOutput string

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Fetch a web page and harvest its chapter list",
	Long: `Fetch downloads a page (a video description, a tracklist post) and
scans its visible text for chapters, writing them in the chapter file
format. Timeout and User-Agent come from the configuration file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fetcher := webimport.NewFetcher(
			time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second,
			cfg.Fetch.UserAgent,
		)

		entries, err := fetcher.Fetch(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("no chapters found at %s", args[0])
		}

		table := chaptertable.FromEntries(entries)
		if cfg.Chapters.SortOnSave {
			table.SortByTime()
		}

		if cfg.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "Fetched %d chapters from %s\n", table.Len(), args[0])
		}

		if fetchOutput != "" {
			return table.Save(fetchOutput)
		}
		return table.Write(cmd.OutOrStdout())
	},
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "write the chapter file here instead of stdout")
	rootCmd.AddCommand(fetchCmd)
}
