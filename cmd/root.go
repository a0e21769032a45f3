package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/titanic-eda/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "titanic-eda",
	Short: "Exploratory data analysis for the Titanic passenger dataset",
	Long: `titanic-eda loads the Titanic passenger CSV, prints descriptive statistics
and frequency tables, and renders a fixed sequence of figures: distributions,
survival rates by category, box plots by outcome, a correlation heatmap and a
pair plot.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.titanic-eda/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// effectiveConfig returns the loaded configuration or the defaults.
func effectiveConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return cfgpkg.Defaults()
}

// dataPath picks the CSV path from args, falling back to config.
func dataPath(args []string, c *cfgpkg.Global) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return c.DataPath
}
