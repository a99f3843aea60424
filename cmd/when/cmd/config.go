// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"cloudeng.io/errors"
	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gonih.org/when"
)

// Config is read from an optional YAML or TOML file and the environment,
// which takes precedence.
type Config struct {
	Location string `yaml:"location" toml:"location" env:"WHEN_LOCATION" env-default:"Local" env-description:"IANA time zone of the calendar"`
	LogLevel string `yaml:"log_level" toml:"log_level" env:"WHEN_LOG_LEVEL" env-default:"warn" env-description:"debug, info, warn or error"`
}

// LoadConfig reads the configuration from path, if set, and the environment.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// Resolve validates cfg and returns the calendar and log level it describes.
// All problems are reported together.
func (cfg Config) Resolve() (when.Calendar, slog.Level, error) {
	errs := &errors.M{}
	var cal when.Calendar = when.Gregorian{}
	switch cfg.Location {
	case "", "Local":
	default:
		g, err := when.InLocation(cfg.Location)
		if err != nil {
			errs.Append(fmt.Errorf("location: %w", err))
		} else {
			cal = g
		}
	}
	var level slog.Level
	if cfg.LogLevel != "" {
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			errs.Append(fmt.Errorf("log level: %w", err))
		}
	}
	if err := errs.Err(); err != nil {
		return nil, 0, err
	}
	return cal, level, nil
}

// Write encodes cfg to w as YAML, or as TOML if asTOML is set.
func (cfg Config) Write(w io.Writer, asTOML bool) error {
	if asTOML {
		return toml.NewEncoder(w).Encode(cfg)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func (a *app) configCmd() *cobra.Command {
	var asTOML bool
	c := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `config prints the configuration after reading the config file and the
environment. The output can be used as a config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cfg.Write(cmd.OutOrStdout(), asTOML)
		},
	}
	c.Flags().BoolVar(&asTOML, "toml", false, "print TOML instead of YAML")
	return c
}
