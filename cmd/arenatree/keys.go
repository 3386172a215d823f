package main

import (
	"fmt"

	"github.com/pavanmanishd/slotarena/hashset"
)

const (
	orderAscending  = "asc"
	orderDescending = "desc"
	orderHashed     = "hashed"
)

// keys returns n keys in the requested insertion order. Hashed keys are the
// xxHash64 of 0..n-1, which gives a reproducible pseudo-random order.
func keys(order string, n int) ([]uint64, error) {
	ks := make([]uint64, n)
	for i := range ks {
		switch order {
		case orderAscending:
			ks[i] = uint64(i)
		case orderDescending:
			ks[i] = uint64(n - 1 - i)
		case orderHashed:
			ks[i] = hashset.Int(i)
		default:
			return nil, fmt.Errorf("unknown key order %q", order)
		}
	}
	return ks, nil
}
