package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chapterbook/chaptertable"
)

var sortWrite bool

var sortCmd = &cobra.Command{
	Use:   "sort <chapters.txt> [more files...]",
	Short: "Sort chapter files by time",
	Long: `Sort orders the rows of one or more chapter files ascending by their
time field. The sort is stable, so rows sharing a time keep their
relative order. Files are loaded concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tables, err := chaptertable.LoadMany(cmd.Context(), args...)
		if err != nil {
			return err
		}

		for i, table := range tables {
			table.SortByTime()

			if cfg.Verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: sorted %d chapters\n", args[i], table.Len())
			}

			if sortWrite {
				if err := table.Save(args[i]); err != nil {
					return err
				}
				continue
			}

			if len(tables) > 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", args[i])
			}
			if err := table.Write(cmd.OutOrStdout()); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	sortCmd.Flags().BoolVarP(&sortWrite, "write", "w", false, "rewrite each file in place instead of printing")
	rootCmd.AddCommand(sortCmd)
}
