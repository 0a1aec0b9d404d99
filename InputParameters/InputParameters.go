package InputParameters

import (
	"fmt"
	"io"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/gaussquad/quadrature"
)

// Parameters obtained from the YAML job file
type RuleParameters struct {
	Title     string  `yaml:"Title"`
	Integrand string  `yaml:"Integrand"` // Catalogue name: sin, exp, runge, sqrt, poly<d>
	Min       float64 `yaml:"Min"`
	Max       float64 `yaml:"Max"`
	Orders    []int   `yaml:"Orders"`    // Rule orders to run, each >= 1
	ProcLimit int     `yaml:"ProcLimit"` // 0 uses every CPU
	Tolerance float64 `yaml:"Tolerance"` // 0 disables the error check
}

const ExampleFile = `
########################################
Title: "sin on [-2.5, 4.5]"
Integrand: sin # Can be exp, runge, sqrt or poly<degree>
Min: -2.5
Max: 4.5
Orders: [5, 10, 20]
ProcLimit: 0
Tolerance: 1.e-10
########################################
`

func (rp *RuleParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, rp)
}

// Validate checks the job and returns the catalogue integral it names.
func (rp *RuleParameters) Validate() (I quadrature.Integral, err error) {
	if len(rp.Orders) == 0 {
		err = fmt.Errorf("job %q has no Orders", rp.Title)
		return
	}
	for _, n := range rp.Orders {
		if n < 1 {
			err = fmt.Errorf("job %q: rule order %d must be >= 1", rp.Title, n)
			return
		}
	}
	if rp.ProcLimit < 0 {
		err = fmt.Errorf("job %q: ProcLimit %d is negative", rp.Title, rp.ProcLimit)
		return
	}
	if rp.Tolerance < 0 {
		err = fmt.Errorf("job %q: Tolerance %v is negative", rp.Title, rp.Tolerance)
		return
	}
	if I, err = quadrature.Catalogue(rp.Integrand, rp.Min, rp.Max); err != nil {
		err = fmt.Errorf("job %q: %w", rp.Title, err)
	}
	return
}

// SortedOrders returns the orders ascending with duplicates removed.
func (rp *RuleParameters) SortedOrders() (orders []int) {
	seen := make(map[int]bool, len(rp.Orders))
	for _, n := range rp.Orders {
		if !seen[n] {
			seen[n] = true
			orders = append(orders, n)
		}
	}
	sort.Ints(orders)
	return
}

func (rp *RuleParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", rp.Title)
	fmt.Fprintf(w, "[%s]\t\t\t= Integrand\n", rp.Integrand)
	fmt.Fprintf(w, "[%8.5f, %8.5f]\t= Interval\n", rp.Min, rp.Max)
	fmt.Fprintf(w, "%v\t\t= Orders\n", rp.SortedOrders())
	fmt.Fprintf(w, "[%d]\t\t\t\t= Proc Limit\n", rp.ProcLimit)
	fmt.Fprintf(w, "%8.2e\t\t= Tolerance\n", rp.Tolerance)
}
