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
	"time"

	"github.com/spf13/cobra"

	"github.com/notargets/gaussquad/utils"
)

func newNodesCmd(cfg *Config) *cobra.Command {
	nodesCmd := &cobra.Command{
		Use:   "nodes",
		Short: "Print the nodes and weights of an n point rule",
		Long: `
Prints k, theta, x and weight for every node of the n point Gauss-Legendre rule,
optionally mapped onto [min, max]. --range selects rows with 0-based loop
indexing: ":" (all), "end", "N", "a:b", ":b" or "a:".

gaussquad nodes -n 7 --min 0 --max 2
gaussquad nodes -n 1000000 --range end`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				n, _    = cmd.Flags().GetInt("n")
				xMin, _ = cmd.Flags().GetFloat64("min")
				xMax, _ = cmd.Flags().GetFloat64("max")
				rows, _ = cmd.Flags().GetString("range")
			)
			if xMin >= xMax {
				return fmt.Errorf("interval must satisfy min < max, have [%v, %v]", xMin, xMax)
			}
			start := time.Now()
			gl, err := buildRule(n, cfg.ProcLimit())
			if err != nil {
				return
			}
			cfg.Logger.Debug("rule built", "n", n, "procs", cfg.ProcLimit(), "elapsed", time.Since(start))
			x, w := gl.Rescale(xMin, xMax)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%8s %24s %24s %24s\n", "k", "theta", "x", "weight")
			kBeg, kEnd := utils.ParseDim(rows, gl.N)
			for k := kBeg; k < kEnd; k++ {
				fmt.Fprintf(out, "%8d %24.17e %24.17e %24.17e\n",
					k+1, gl.Theta.AtVec(k), x.AtVec(k), w.AtVec(k))
			}
			return
		},
	}
	nodesCmd.Flags().IntP("n", "n", 5, "number of nodes in the rule")
	nodesCmd.Flags().Float64("min", -1, "lower bound of the interval")
	nodesCmd.Flags().Float64("max", 1, "upper bound of the interval")
	nodesCmd.Flags().String("range", ":", "rows to print")
	return nodesCmd
}
