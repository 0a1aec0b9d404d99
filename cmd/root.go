/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gaussquad/quadrature"
)

// Config shared by every command, resolved from flags, environment
// (GAUSSQUAD_*) and the config file in that order of precedence.
type Config struct {
	cfgFile string
	v       *viper.Viper
	Logger  *slog.Logger
}

func (c *Config) Verbose() bool { return c.v.GetBool("verbose") }

// ProcLimit is the worker limit for rule construction: 1 is sequential, 0
// uses every CPU.
func (c *Config) ProcLimit() int { return c.v.GetInt("parallel") }

func NewRootCmd() *cobra.Command {
	cfg := &Config{
		v:      viper.New(),
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	rootCmd := &cobra.Command{
		Use:   "gaussquad",
		Short: "Fast Gauss-Legendre quadrature nodes and weights",
		Long: `
Computes Gauss-Legendre quadrature rules in O(1) per node, integrates functions
with them and verifies the rules against reference generators.

gaussquad nodes -n 20
gaussquad integrate -I job.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.initConfig(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfg.cfgFile, "config", "", "config file (default is $HOME/.gaussquad.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug level logging")
	rootCmd.PersistentFlags().IntP("parallel", "p", 1, "workers for rule construction, 1 = sequential, 0 = all CPUs")
	_ = cfg.v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = cfg.v.BindPFlag("parallel", rootCmd.PersistentFlags().Lookup("parallel"))

	rootCmd.AddCommand(
		newNodesCmd(cfg),
		newIntegrateCmd(cfg),
		newVerifyCmd(cfg),
		newBenchCmd(cfg),
	)
	return rootCmd
}

// Execute runs the command tree, called once from main.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		slog.New(slog.NewTextHandler(rootCmd.ErrOrStderr(), nil)).Error("gaussquad failed", "err", err)
		os.Exit(1)
	}
}

func (c *Config) initConfig(cmd *cobra.Command) (err error) {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	} else {
		var home string
		if home, err = homedir.Dir(); err != nil {
			return
		}
		c.v.AddConfigPath(home)
		c.v.SetConfigName(".gaussquad")
	}
	c.v.SetEnvPrefix("GAUSSQUAD")
	c.v.AutomaticEnv()

	readErr := c.v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case readErr == nil:
	case c.cfgFile == "" && errors.As(readErr, &notFound):
		// No default config file
	default:
		return fmt.Errorf("reading config: %w", readErr)
	}

	level := slog.LevelInfo
	if c.Verbose() {
		level = slog.LevelDebug
	}
	c.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if readErr == nil {
		c.Logger.Debug("using config file", "file", c.v.ConfigFileUsed())
	}
	if c.ProcLimit() < 0 {
		return fmt.Errorf("parallel = %d, must be >= 0", c.ProcLimit())
	}
	return
}

// buildRule picks the sequential or parallel builder from the worker limit.
func buildRule(n, procLimit int) (*quadrature.GaussLegendre, error) {
	if procLimit == 1 {
		return quadrature.NewGaussLegendre(n)
	}
	return quadrature.NewGaussLegendreParallel(n, procLimit)
}
