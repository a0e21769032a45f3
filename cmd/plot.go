package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/titanic-eda/internal/analysis"
	"github.com/KaramelBytes/titanic-eda/internal/charts"
	"github.com/KaramelBytes/titanic-eda/internal/dataset"
	"github.com/KaramelBytes/titanic-eda/internal/eda"
	"github.com/KaramelBytes/titanic-eda/internal/report"
	"github.com/spf13/cobra"
)

var (
	plotOutput string
	plotFormat string
	plotSeed   uint64
	plotBins   int
	plotBoot   int
)

var plotCmd = &cobra.Command{
	Use:   "plot <figure> [csv]",
	Short: "Render a single figure",
	Long: fmt.Sprintf(`Render one figure of the sequence into the output directory.

Figures: %s`, strings.Join(charts.StepNames(), ", ")),
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: charts.StepNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.ToLower(args[0])
		if _, ok := charts.Lookup(name); !ok {
			return fmt.Errorf("unknown figure %q (use one of %s)", args[0], strings.Join(charts.StepNames(), ", "))
		}
		c := applyFigureFlags(cmd.Flags(), *effectiveConfig())
		if err := c.Validate(); err != nil {
			return err
		}
		tbl, err := loadTable(dataPath(args[1:], &c))
		if err != nil {
			return err
		}
		if name == "correlation" {
			m, err := analysis.PairwiseCorrelation(tbl, dataset.NumericColumns())
			if err != nil {
				return err
			}
			p := report.New(cmd.OutOrStdout())
			p.Section("--- Correlation Matrix ---")
			p.Correlation(m)
		}
		opt := runnerOptions(c)
		opt.Steps = []string{name}
		_, err = eda.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), opt).Run(tbl)
		return err
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)
	registerFigureFlags(plotCmd.Flags(), &plotOutput, &plotFormat, &plotSeed, &plotBins, &plotBoot)
}
