package quadrature

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
)

// ConvergenceStudy records the error of one integral across rule orders.
type ConvergenceStudy struct {
	Title     string
	Integrand string
	Orders    []int
	Estimates []float64
	Errors    []float64 // Absolute errors
}

func NewConvergenceStudy(title, integrand string) *ConvergenceStudy {
	return &ConvergenceStudy{
		Title:     title,
		Integrand: integrand,
	}
}

func (cs *ConvergenceStudy) Add(n int, estimate, absErr float64) {
	cs.Orders = append(cs.Orders, n)
	cs.Estimates = append(cs.Estimates, estimate)
	cs.Errors = append(cs.Errors, absErr)
}

// Rates returns the observed geometric convergence rate between successive
// entries, log(e_i/e_{i+1}) / (n_{i+1}-n_i). The first entry is NaN, as is
// any entry where an error has reached zero.
func (cs *ConvergenceStudy) Rates() (rates []float64) {
	rates = make([]float64, len(cs.Orders))
	for i := range rates {
		rates[i] = math.NaN()
		if i == 0 {
			continue
		}
		dn := float64(cs.Orders[i] - cs.Orders[i-1])
		if dn == 0 || cs.Errors[i] == 0 || cs.Errors[i-1] == 0 {
			continue
		}
		rates[i] = math.Log(cs.Errors[i-1]/cs.Errors[i]) / dn
	}
	return
}

var convergenceHeader = []string{"Title", "Integrand", "N", "Estimate", "Error", "Rate"}

// WriteConvergenceCSV writes the studies with one header row.
func WriteConvergenceCSV(w io.Writer, studies ...*ConvergenceStudy) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write(convergenceHeader); err != nil {
		return
	}
	for _, cs := range studies {
		rates := cs.Rates()
		for i, n := range cs.Orders {
			rec := []string{
				cs.Title, cs.Integrand, strconv.Itoa(n),
				strconv.FormatFloat(cs.Estimates[i], 'g', -1, 64),
				strconv.FormatFloat(cs.Errors[i], 'g', -1, 64),
				strconv.FormatFloat(rates[i], 'g', -1, 64),
			}
			if err = cw.Write(rec); err != nil {
				return
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadConvergenceCSV groups the rows of a file written by WriteConvergenceCSV
// by title and integrand. Rates are recomputed, not read.
func ReadConvergenceCSV(r io.Reader) (studies []*ConvergenceStudy, err error) {
	var records [][]string
	if records, err = csv.NewReader(r).ReadAll(); err != nil {
		return
	}
	byKey := make(map[string]*ConvergenceStudy)
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) < 5 {
			err = fmt.Errorf("convergence csv line %d: have %d fields, want %d", i+1, len(rec), len(convergenceHeader))
			return
		}
		var (
			n                int
			estimate, absErr float64
		)
		if n, err = strconv.Atoi(rec[2]); err != nil {
			return
		}
		if estimate, err = strconv.ParseFloat(rec[3], 64); err != nil {
			return
		}
		if absErr, err = strconv.ParseFloat(rec[4], 64); err != nil {
			return
		}
		key := rec[0] + "\x00" + rec[1]
		cs, ok := byKey[key]
		if !ok {
			cs = NewConvergenceStudy(rec[0], rec[1])
			byKey[key] = cs
			studies = append(studies, cs)
		}
		cs.Add(n, estimate, absErr)
	}
	sort.SliceStable(studies, func(i, j int) bool { return studies[i].Title < studies[j].Title })
	return
}
