package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"chapterbook/chapterlist"
	"chapterbook/chaptertable"
	"chapterbook/internal/textenc"
)

var parseOutput string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse free-form chapter text into a chapter file",
	Long: `Parse reads free-form chapter text (a pasted tracklist, a video
description) from a file or stdin, extracts time/title pairs, and writes
them in the chapter file format.

Legacy encodings (UTF-16, Shift-JIS) are detected when reading from a
file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) == 1 {
			decoded, err := textenc.ReadFile(args[0])
			if err != nil {
				return err
			}
			text = decoded
		} else {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			decoded, err := textenc.Decode(data)
			if err != nil {
				return err
			}
			text = decoded
		}

		entries := chapterlist.Parse(text)
		if len(entries) == 0 {
			return fmt.Errorf("no chapters found in input")
		}

		table := chaptertable.FromEntries(entries)
		if cfg.Chapters.SortOnSave {
			table.SortByTime()
		}

		if cfg.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "Parsed %d chapters\n", table.Len())
		}

		if parseOutput != "" {
			return table.Save(parseOutput)
		}
		return table.Write(cmd.OutOrStdout())
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "write the chapter file here instead of stdout")
	rootCmd.AddCommand(parseCmd)
}
