package cmd

import (
	"github.com/KaramelBytes/titanic-eda/internal/report"
	"github.com/spf13/cobra"
)

var summaryHead int

var summaryCmd = &cobra.Command{
	Use:   "summary [csv]",
	Short: "Print head, structure, descriptive statistics and value counts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		head := c.HeadRows
		if cmd.Flags().Changed("head") && summaryHead >= 0 {
			head = summaryHead
		}
		tbl, err := loadTable(dataPath(args, c))
		if err != nil {
			return err
		}
		return report.Summary(cmd.OutOrStdout(), tbl, report.Options{HeadRows: head})
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().IntVar(&summaryHead, "head", 0, "rows in the head preview (overrides config)")
}
