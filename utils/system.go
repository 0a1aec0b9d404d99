package utils

import (
	"fmt"
	"math"
	"runtime"
)

func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
}

// IsFinite reports whether A holds no NaN or Inf values.
func IsFinite(A any) bool {
	bad := func(f float64) bool { return math.IsNaN(f) || math.IsInf(f, 0) }
	switch v := A.(type) {
	case float64:
		return !bad(v)
	case []float64:
		for _, f := range v {
			if bad(f) {
				return false
			}
		}
	case Vector:
		return IsFinite(v.DataP)
	case []Vector:
		for _, vec := range v {
			if !IsFinite(vec.DataP) {
				return false
			}
		}
	}
	return true
}
