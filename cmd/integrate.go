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
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/gaussquad/InputParameters"
	"github.com/notargets/gaussquad/quadrature"
)

func newIntegrateCmd(cfg *Config) *cobra.Command {
	integrateCmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate a catalogue function at one or more rule orders",
		Long: `
Integrates a function with a known integral and reports the estimate, exact
value and error for each rule order. The job comes from a YAML file (-I) or
from flags.

gaussquad integrate -I job.yaml
gaussquad integrate --integrand runge --min -1 --max 1 -n 10,20,40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var rp *InputParameters.RuleParameters
			if rp, err = processInput(cmd, cfg); err != nil {
				return
			}
			var study *quadrature.ConvergenceStudy
			if study, err = runIntegrate(cmd.OutOrStdout(), cfg, rp); err != nil {
				return
			}
			if csvFile, _ := cmd.Flags().GetString("csv"); len(csvFile) != 0 {
				err = writeStudy(csvFile, study)
				cfg.Logger.Debug("wrote convergence study", "file", csvFile)
			}
			return
		},
	}
	integrateCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML job file, for example:"+InputParameters.ExampleFile)
	integrateCmd.Flags().String("integrand", "sin", "integrand: sin, exp, runge, sqrt or poly<degree>")
	integrateCmd.Flags().Float64("min", -1, "lower bound of the interval")
	integrateCmd.Flags().Float64("max", 1, "upper bound of the interval")
	integrateCmd.Flags().IntSliceP("n", "n", []int{5, 10, 20}, "rule orders")
	integrateCmd.Flags().Float64("tolerance", 0, "maximum error at the highest order, 0 disables the check")
	integrateCmd.Flags().String("csv", "", "write the convergence study to this CSV file")
	return integrateCmd
}

func processInput(cmd *cobra.Command, cfg *Config) (rp *InputParameters.RuleParameters, err error) {
	rp = &InputParameters.RuleParameters{}
	icFile, _ := cmd.Flags().GetString("inputConditionsFile")
	if len(icFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(icFile); err != nil {
			return
		}
		if err = rp.Parse(data); err != nil {
			err = fmt.Errorf("parsing %s: %w", icFile, err)
			return
		}
		cfg.Logger.Debug("read job file", "file", icFile)
		return
	}
	rp.Title = "command line"
	rp.Integrand, _ = cmd.Flags().GetString("integrand")
	rp.Min, _ = cmd.Flags().GetFloat64("min")
	rp.Max, _ = cmd.Flags().GetFloat64("max")
	rp.Orders, _ = cmd.Flags().GetIntSlice("n")
	rp.Tolerance, _ = cmd.Flags().GetFloat64("tolerance")
	rp.ProcLimit = cfg.ProcLimit()
	return
}

func runIntegrate(out io.Writer, cfg *Config, rp *InputParameters.RuleParameters) (
	study *quadrature.ConvergenceStudy, err error) {
	I, err := rp.Validate()
	if err != nil {
		return
	}
	study = quadrature.NewConvergenceStudy(rp.Title, rp.Integrand)
	if cfg.Verbose() {
		rp.Print(out)
	}
	fmt.Fprintf(out, "%s\n", I.Name)
	fmt.Fprintf(out, "%8s %24s %24s %12s\n", "n", "estimate", "exact", "error")
	var absErr float64
	for _, n := range rp.SortedOrders() {
		var gl *quadrature.GaussLegendre
		if gl, err = buildRule(n, rp.ProcLimit); err != nil {
			return
		}
		estimate := gl.Integrate(I.F, I.A, I.B)
		absErr = math.Abs(estimate - I.Value)
		study.Add(n, estimate, absErr)
		fmt.Fprintf(out, "%8d %24.17e %24.17e %12.4e\n", n, estimate, I.Value, absErr)
		cfg.Logger.Debug("integrated", "n", n, "error", absErr)
	}
	if rp.Tolerance > 0 && absErr > rp.Tolerance {
		err = fmt.Errorf("%s: error %.4e at the highest order exceeds tolerance %.4e",
			I.Name, absErr, rp.Tolerance)
	}
	return
}

func writeStudy(csvFile string, study *quadrature.ConvergenceStudy) (err error) {
	var f *os.File
	if f, err = os.Create(csvFile); err != nil {
		return
	}
	if err = quadrature.WriteConvergenceCSV(f, study); err != nil {
		_ = f.Close()
		return
	}
	return f.Close()
}
