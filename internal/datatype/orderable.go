package datatype

import (
	"math/big"
	"time"
)

// orderable lets range facets (minInclusive, maxExclusive, ...) and
// value equality compare two parsed values of the same kind
// without the facet code needing to know which underlying Go type backs them.
type orderable interface {
	compare(other orderable) int // -1, 0, 1
}

type intOrderable struct{ v *big.Int }

func (a intOrderable) compare(other orderable) int { return a.v.Cmp(other.(intOrderable).v) }

type decimalOrderable struct{ v *big.Rat }

func (a decimalOrderable) compare(other orderable) int { return a.v.Cmp(other.(decimalOrderable).v) }

type floatOrderable struct{ v float64 }

func (a floatOrderable) compare(other orderable) int {
	b := other.(floatOrderable).v
	switch {
	case a.v < b:
		return -1
	case a.v > b:
		return 1
	default:
		return 0
	}
}

type timeOrderable struct{ v time.Time }

func (a timeOrderable) compare(other orderable) int {
	b := other.(timeOrderable).v
	switch {
	case a.v.Before(b):
		return -1
	case a.v.After(b):
		return 1
	default:
		return 0
	}
}
