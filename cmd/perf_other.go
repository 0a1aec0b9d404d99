//go:build !linux

package cmd

import (
	"errors"
)

func countInstructions(f func() error) (count uint64, err error) {
	return 0, errors.New("instruction counts need Linux perf events")
}
