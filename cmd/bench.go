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
	"fmt"
	"io"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gaussquad/utils"
)

func newBenchCmd(cfg *Config) *cobra.Command {
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time rule construction",
		Long: `
Builds each rule order repeatedly and reports timing statistics per rule and
per node. Optionally captures a CPU or memory profile, and on Linux counts
CPU instructions with perf.

gaussquad bench -n 1000,1000000 --parallel 0 --profile cpu`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				orders, _      = cmd.Flags().GetIntSlice("n")
				repeat, _      = cmd.Flags().GetInt("repeat")
				profileKind, _ = cmd.Flags().GetString("profile")
				profilePath, _ = cmd.Flags().GetString("profilePath")
				usePerf, _     = cmd.Flags().GetBool("perf")
			)
			if repeat < 1 {
				return fmt.Errorf("repeat = %d, must be >= 1", repeat)
			}
			var mode func(*profile.Profile)
			switch profileKind {
			case "":
			case "cpu":
				mode = profile.CPUProfile
			case "mem":
				mode = profile.MemProfile
			default:
				return fmt.Errorf("unknown profile %q, want cpu or mem", profileKind)
			}
			if mode != nil {
				defer profile.Start(mode, profile.ProfilePath(profilePath),
					profile.Quiet, profile.NoShutdownHook).Stop()
				cfg.Logger.Info("profiling", "kind", profileKind, "path", profilePath)
			}
			return runBench(cmd.OutOrStdout(), cfg, orders, repeat, usePerf)
		},
	}
	benchCmd.Flags().IntSliceP("n", "n", []int{1000, 100000, 1000000}, "rule orders")
	benchCmd.Flags().IntP("repeat", "r", 5, "builds per order")
	benchCmd.Flags().String("profile", "", "capture a profile: cpu or mem")
	benchCmd.Flags().String("profilePath", ".", "directory for profile output")
	benchCmd.Flags().Bool("perf", false, "count CPU instructions per build (Linux)")
	return benchCmd
}

// BenchResult summarizes the repeated construction of one rule order.
type BenchResult struct {
	N                         int
	Mean, Median, StdDev, Min time.Duration
	Instructions              uint64 // 0 when not counted
}

func (br BenchResult) NsPerNode() float64 {
	return float64(br.Median.Nanoseconds()) / float64(br.N)
}

func runBench(out io.Writer, cfg *Config, orders []int, repeat int, usePerf bool) (err error) {
	fmt.Fprintf(out, "%10s %14s %14s %14s %14s %12s %14s\n",
		"n", "mean", "median", "stddev", "min", "ns/node", "instructions")
	for _, n := range orders {
		var br BenchResult
		if br, err = benchOrder(n, cfg.ProcLimit(), repeat); err != nil {
			return
		}
		if usePerf {
			if br.Instructions, err = countInstructions(func() error {
				_, err := buildRule(n, cfg.ProcLimit())
				return err
			}); err != nil {
				cfg.Logger.Warn("perf counters unavailable", "err", err)
				usePerf, err = false, nil
			}
		}
		fmt.Fprintf(out, "%10d %14v %14v %14v %14v %12.2f %14d\n",
			br.N, br.Mean, br.Median, br.StdDev, br.Min, br.NsPerNode(), br.Instructions)
		cfg.Logger.Debug("memory", "n", n, "usage", utils.GetMemUsage())
	}
	return
}

func benchOrder(n, procLimit, repeat int) (br BenchResult, err error) {
	samples := make([]float64, repeat)
	for i := range samples {
		start := time.Now()
		if _, err = buildRule(n, procLimit); err != nil {
			return
		}
		samples[i] = float64(time.Since(start).Nanoseconds())
	}
	br.N = n
	var mean, median, stdDev, fastest float64
	if mean, err = stats.Mean(samples); err != nil {
		return
	}
	if median, err = stats.Median(samples); err != nil {
		return
	}
	if stdDev, err = stats.StandardDeviation(samples); err != nil {
		return
	}
	if fastest, err = stats.Min(samples); err != nil {
		return
	}
	br.Mean, br.Median = time.Duration(mean), time.Duration(median)
	br.StdDev, br.Min = time.Duration(stdDev), time.Duration(fastest)
	return
}
