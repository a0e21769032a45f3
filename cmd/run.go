package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/KaramelBytes/titanic-eda/internal/analysis"
	"github.com/KaramelBytes/titanic-eda/internal/charts"
	cfgpkg "github.com/KaramelBytes/titanic-eda/internal/config"
	"github.com/KaramelBytes/titanic-eda/internal/dataset"
	"github.com/KaramelBytes/titanic-eda/internal/eda"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	runOutput    string
	runFormat    string
	runSeed      uint64
	runBins      int
	runBoot      int
	runHead      int
	runSkipPlots bool
)

var runCmd = &cobra.Command{
	Use:   "run [csv]",
	Short: "Print the summary and render every figure",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := applyFigureFlags(cmd.Flags(), *effectiveConfig())
		if cmd.Flags().Changed("head") {
			c.HeadRows = runHead
		}
		if err := c.Validate(); err != nil {
			return err
		}
		tbl, err := loadTable(dataPath(args, &c))
		if err != nil {
			return err
		}
		opt := runnerOptions(c)
		opt.Summary = true
		if runSkipPlots {
			opt.Steps = []string{}
		}
		m, err := eda.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), opt).Run(tbl)
		if err != nil {
			return err
		}
		if m != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s (%d figures, run %s)\n", eda.ManifestFile, len(m.Figures), m.RunID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	registerFigureFlags(runCmd.Flags(), &runOutput, &runFormat, &runSeed, &runBins, &runBoot)
	runCmd.Flags().IntVar(&runHead, "head", 0, "rows in the head preview (overrides config)")
	runCmd.Flags().BoolVar(&runSkipPlots, "skip-plots", false, "print the text summary only")
}

// registerFigureFlags adds the flags shared by run and plot.
func registerFigureFlags(f *pflag.FlagSet, output, format *string, seed *uint64, bins, boot *int) {
	f.StringVarP(output, "output", "o", "", "directory for figures (overrides config)")
	f.StringVar(format, "format", "", "image format: png, svg, pdf, jpg, eps, tif (overrides config)")
	f.Uint64Var(seed, "seed", 0, "bootstrap seed; 0 seeds from the clock (overrides config)")
	f.IntVar(bins, "bins", 0, "histogram bins (overrides config)")
	f.IntVar(boot, "boot", 0, "bootstrap resamples for error bars; 0 disables them (overrides config)")
}

// applyFigureFlags copies changed figure flags over c.
func applyFigureFlags(f *pflag.FlagSet, c cfgpkg.Global) cfgpkg.Global {
	if f.Changed("output") {
		c.OutputDir, _ = f.GetString("output")
	}
	if f.Changed("format") {
		c.ImageFormat, _ = f.GetString("format")
	}
	if f.Changed("seed") {
		c.Seed, _ = f.GetUint64("seed")
	}
	if f.Changed("bins") {
		c.Bins, _ = f.GetInt("bins")
	}
	if f.Changed("boot") {
		c.BootstrapSamples, _ = f.GetInt("boot")
	}
	return c
}

// runnerOptions maps configuration onto the runner.
func runnerOptions(c cfgpkg.Global) eda.Options {
	opt := charts.DefaultOptions()
	if c.Bins > 0 {
		opt.Bins = c.Bins
	}
	opt.Bootstrap = analysis.Bootstrap{Samples: c.BootstrapSamples, Level: c.CILevel, Seed: c.Seed}
	return eda.Options{
		OutputDir: c.OutputDir,
		Format:    c.ImageFormat,
		HeadRows:  c.HeadRows,
		Charts:    opt,
		Debug:     debug,
	}
}

// loadTable loads the CSV and adds a hint when it is absent.
func loadTable(path string) (*dataset.Table, error) {
	tbl, err := dataset.Load(path)
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "⚠ Warning: '%s' not found. Pass the CSV path as an argument or set data_path.\n", path)
		}
		return nil, err
	}
	if debug {
		fmt.Fprintf(os.Stderr, "loaded %s: %d rows, %d columns\n", tbl.Name(), tbl.Rows(), len(tbl.Columns()))
	}
	return tbl, nil
}
