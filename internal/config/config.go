package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const dirName = ".titanic-eda"

// Global configuration structure.
type Global struct {
	DataPath  string `mapstructure:"data_path" yaml:"data_path"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	// ImageFormat is the figure file extension: png, svg, pdf, jpg, eps, tif.
	ImageFormat string `mapstructure:"image_format" yaml:"image_format"`
	HeadRows    int    `mapstructure:"head_rows" yaml:"head_rows"`

	// Figure parameters
	Bins             int     `mapstructure:"bins" yaml:"bins"`
	BootstrapSamples int     `mapstructure:"bootstrap_samples" yaml:"bootstrap_samples"`
	CILevel          float64 `mapstructure:"ci_level" yaml:"ci_level"`
	// Seed fixes bootstrap resampling; 0 seeds from the clock.
	Seed uint64 `mapstructure:"seed" yaml:"seed"`
}

// Dir returns ~/.titanic-eda.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.titanic-eda/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Defaults reproduce the notebook's fixed parameters.
func Defaults() *Global {
	return &Global{
		DataPath:         "train.csv",
		OutputDir:        "figures",
		ImageFormat:      "png",
		HeadRows:         5,
		Bins:             30,
		BootstrapSamples: 1000,
		CILevel:          95,
	}
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("TITANIC_EDA")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("data_path", d.DataPath)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("image_format", d.ImageFormat)
	v.SetDefault("head_rows", d.HeadRows)
	v.SetDefault("bins", d.Bins)
	v.SetDefault("bootstrap_samples", d.BootstrapSamples)
	v.SetDefault("ci_level", d.CILevel)
	v.SetDefault("seed", d.Seed)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read; a config file that exists but does not parse is an error
	if err := v.ReadInConfig(); err != nil && cfgFile != "" {
		if _, statErr := os.Stat(cfgFile); statErr == nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects values no figure step can use.
func (c *Global) Validate() error {
	if c.Bins <= 0 {
		return fmt.Errorf("bins must be positive, got %d", c.Bins)
	}
	if c.BootstrapSamples < 0 {
		return fmt.Errorf("bootstrap_samples must not be negative, got %d", c.BootstrapSamples)
	}
	if c.CILevel <= 0 || c.CILevel >= 100 {
		return fmt.Errorf("ci_level must be within (0, 100), got %g", c.CILevel)
	}
	if c.HeadRows < 0 {
		return fmt.Errorf("head_rows must not be negative, got %d", c.HeadRows)
	}
	return nil
}
