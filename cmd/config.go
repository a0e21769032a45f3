package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KaramelBytes/titanic-eda/internal/charts"
	cfgpkg "github.com/KaramelBytes/titanic-eda/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set titanic-eda configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "data_path: %s\n", c.DataPath)
		fmt.Fprintf(w, "output_dir: %s\n", c.OutputDir)
		fmt.Fprintf(w, "image_format: %s\n", c.ImageFormat)
		fmt.Fprintf(w, "head_rows: %d\n", c.HeadRows)
		fmt.Fprintf(w, "bins: %d\n", c.Bins)
		fmt.Fprintf(w, "bootstrap_samples: %d\n", c.BootstrapSamples)
		fmt.Fprintf(w, "ci_level: %g\n", c.CILevel)
		if c.Seed == 0 {
			fmt.Fprintln(w, "seed: 0 (clock)")
		} else {
			fmt.Fprintf(w, "seed: %d\n", c.Seed)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		next := *cfg
		switch key {
		case "data_path":
			next.DataPath = val
		case "output_dir":
			next.OutputDir = val
		case "image_format":
			if !charts.ValidFormat(val) {
				return fmt.Errorf("invalid image_format: %s (use one of %s)", val, strings.Join(charts.Formats, ", "))
			}
			next.ImageFormat = strings.ToLower(strings.TrimPrefix(val, "."))
		case "head_rows":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for head_rows: %w", err)
			}
			next.HeadRows = i
		case "bins":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for bins: %w", err)
			}
			next.Bins = i
		case "bootstrap_samples":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for bootstrap_samples: %w", err)
			}
			next.BootstrapSamples = i
		case "ci_level":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for ci_level: %w", err)
			}
			next.CILevel = f
		case "seed":
			u, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid unsigned int for seed: %w", err)
			}
			next.Seed = u
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := next.Validate(); err != nil {
			return err
		}
		if err := cfgpkg.Save(&next, cfgFile); err != nil {
			return err
		}
		cfg = &next
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
