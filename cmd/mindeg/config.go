// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "MINDEG"

var errInputChoice = errors.New("exactly one of --grid, --path or --input is required")

// orderConfig is the resolved configuration of the order command. Flags
// win over MINDEG_* environment variables, which win over defaults.
type orderConfig struct {
	Grid         string `mapstructure:"grid"`
	Path         int    `mapstructure:"path"`
	Input        string `mapstructure:"input"`
	Delta        int    `mapstructure:"delta"`
	Single       bool   `mapstructure:"single"`
	NoAggressive bool   `mapstructure:"no-aggressive"`
	Perm         bool   `mapstructure:"perm"`
	Metrics      bool   `mapstructure:"metrics"`
	LogLevel     string `mapstructure:"log-level"`
	LogFormat    string `mapstructure:"log-format"`
}

// loadConfig binds the command flags to viper and decodes them into cfg.
func loadConfig(cmd *cobra.Command, cfg *orderConfig) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return v, nil
}

// validate checks the input selection and numeric ranges.
func (c *orderConfig) validate() error {
	chosen := 0
	for _, set := range []bool{c.Grid != "", c.Path > 0, c.Input != ""} {
		if set {
			chosen++
		}
	}
	if chosen != 1 {
		return errInputChoice
	}
	if c.Delta < 0 {
		return fmt.Errorf("--delta must be >= 0, got %d", c.Delta)
	}

	return nil
}
