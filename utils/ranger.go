package utils

import (
	"strconv"
	"strings"
)

// ParseDim converts an index phrase into the loop range [i1, i2):
//
//	":"   = full range, from 0 to max
//	"end" = last index, from max-1 to max
//	"N"   = single index, from N to N+1
//	N     = single index, from N to N+1
//	"2:N" = range, from 2 to N
//	":N"  = range, from 0 to N
//	"N:"  = range, from N to max
//
// The result is clipped to [0, max].
func ParseDim(dimI interface{}, max int) (i1, i2 int) {
	switch dim := dimI.(type) {
	case string:
		switch strings.TrimSpace(dim) {
		case "end":
			i1, i2 = max-1, max
		case ":", "":
			i1, i2 = 0, max
		default:
			i1, i2 = parseRange(strings.TrimSpace(dim), max)
		}
	case int:
		i1, i2 = dim, dim+1
	}
	if i1 < 0 {
		i1 = 0
	}
	if i2 > max {
		i2 = max
	}
	if i2 < i1 {
		i2 = i1
	}
	return
}

func parseRange(dim string, max int) (i1, i2 int) {
	var (
		splits = strings.Split(dim, ":")
		err    error
	)
	if i1, err = strconv.Atoi(splits[0]); err != nil {
		i1 = 0
	}
	if len(splits) == 1 {
		i2 = i1 + 1
		return
	}
	if i2, err = strconv.Atoi(splits[1]); err != nil {
		i2 = max
	}
	if i2 == i1 {
		i2 = i1 + 1
	}
	return
}
