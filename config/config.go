package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/romangod6/sitemap-generator/internal/encoder"
	"github.com/romangod6/sitemap-generator/internal/utils"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Encoding struct {
		Mode string `mapstructure:"mode"`
	} `mapstructure:"encoding"`
	Log struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
	} `mapstructure:"log"`
	Output struct {
		// LegacyExitCode reports success even when the sitemap could not be written.
		LegacyExitCode bool `mapstructure:"legacy_exit_code"`
	} `mapstructure:"output"`
}

// NewFlagSet declares the command line flags understood by LoadConfig.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "Path to a YAML config file")
	fs.String("encoding", string(encoder.ModeBytes), "URL encoding mode: bytes or structural")
	fs.String("log-level", "info", "Log level: debug, info or error")
	fs.String("log-file", "", "Also append diagnostics to this file")
	fs.Bool("legacy-exit-code", false, "Exit 0 even if the output file cannot be written, as older releases did (default: exit 1)")
	return fs
}

var flagKeys = map[string]string{
	"encoding.mode":           "encoding",
	"log.level":               "log-level",
	"log.file":                "log-file",
	"output.legacy_exit_code": "legacy-exit-code",
}

// LoadConfig merges defaults, an optional sitemapgen.yaml (or .yml), SITEMAPGEN_*
// environment variables and the parsed flags, in increasing precedence.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Default values
	v.SetDefault("encoding.mode", string(encoder.ModeBytes))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("output.legacy_exit_code", false)

	v.SetEnvPrefix("SITEMAPGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := ""
	if flags != nil {
		if f := flags.Lookup("config"); f != nil {
			configFile = f.Value.String()
		}
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if _, err := config.EncodingMode(); err != nil {
		return nil, err
	}
	if _, err := config.LogLevel(); err != nil {
		return nil, err
	}

	return &config, nil
}

var (
	configPaths = []string{".", "./config"}
	configNames = []string{"sitemapgen.yaml", "sitemapgen.yml"}
)

// findConfigFile returns the first sitemapgen.yaml or sitemapgen.yml in
// configPaths. Only these names are accepted so that the sitemapgen binary
// itself is never read as a config file.
func findConfigFile() string {
	for _, dir := range configPaths {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				return path
			}
		}
	}
	return ""
}

func (c *Config) EncodingMode() (encoder.Mode, error) {
	return encoder.ParseMode(c.Encoding.Mode)
}

func (c *Config) LogLevel() (utils.Level, error) {
	return utils.ParseLevel(c.Log.Level)
}
