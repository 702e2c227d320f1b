package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chapterbook/chapterlist"
	"chapterbook/chaptertable"
	"chapterbook/models"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <chapters.txt>",
	Short: "Normalize the time column of a chapter file",
	Long: `Fmt rewrites every time field of a chapter file in the canonical
H:MM:SS.mmm form. Fields that do not look like times are left alone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := chaptertable.Load(args[0])
		if err != nil {
			return err
		}

		normalized := make([]models.ChapterEntry, 0, table.Len())
		for _, entry := range table.Entries() {
			entry.Time = chapterlist.NormalizeTime(entry.Time)
			normalized = append(normalized, entry)
		}

		out := chaptertable.FromEntries(normalized)
		if cfg.Chapters.SortOnSave {
			out.SortByTime()
		}

		if cfg.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "Formatted %d chapters\n", out.Len())
		}

		if fmtWrite {
			return out.Save(args[0])
		}
		return out.Write(cmd.OutOrStdout())
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "rewrite the file in place instead of printing")
	rootCmd.AddCommand(fmtCmd)
}
