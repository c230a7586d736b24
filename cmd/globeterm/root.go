// cmd/globeterm/root.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/globeview/globeview/pkg/log"
	"github.com/globeview/globeview/pkg/renderer"
)

var ErrUnknownMode = errors.New("unknown display mode")

// Config collects the host settings. Sources, lowest priority first:
// built-in defaults, the --config YAML file, GLOBETERM_* environment
// variables, then command-line flags.
type Config struct {
	LogLevel  string `koanf:"log_level"`
	LogDir    string `koanf:"log_dir"`
	Mode      string `koanf:"mode"` // "flights" or "network"
	FrameRate int    `koanf:"frame_rate"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:  "info",
		Mode:      "flights",
		FrameRate: 30,
	}
}

func loadConfig(path string, cmd *cobra.Command) (Config, error) {
	cfg := defaultConfig()

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("GLOBETERM_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "GLOBETERM_"))
	}), nil); err != nil {
		return cfg, err
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}

	// Flags the user gave explicitly win over everything.
	if f := cmd.Flags().Lookup("log-level"); f.Changed {
		cfg.LogLevel = f.Value.String()
	}
	if f := cmd.Flags().Lookup("mode"); f.Changed {
		cfg.Mode = f.Value.String()
	}
	return cfg, nil
}

func newRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "globeterm <data file>",
		Short: "Interactive globe display for flight routes and network connections",
		Long: `globeterm renders a rotating globe in the terminal from a YAML data
file of flight records or network connections. Drag with the mouse to
rotate, scroll to zoom at the cursor, click a point to highlight its
neighborhood; 'r' resets the view, 'q' quits.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile, cmd)
			if err != nil {
				return err
			}
			if cfg.Mode != "flights" && cfg.Mode != "network" {
				return fmt.Errorf("%s: %w", cfg.Mode, ErrUnknownMode)
			}

			ds, err := loadDataSet(args[0])
			if err != nil {
				return err
			}

			lg := log.New(cfg.LogLevel, cfg.LogDir)
			renderer.SetLogger(lg)
			lg.Info("starting globeterm", "config", fmt.Sprintf("%+v", cfg), "data", args[0])

			return runUI(cfg, ds, lg)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "YAML configuration file")
	cmd.Flags().String("log-level", defaultConfig().LogLevel, "logging level (debug, info)")
	cmd.Flags().String("mode", defaultConfig().Mode, "data domain to display (flights, network)")
	return cmd
}
