package dailyplan

import (
	"fmt"
	"time"
)

// DateString formats t as D/M/YYYY (no zero padding) in t's own location.
// Plans are keyed by this string, so two servers in different time zones can
// disagree about "today".
func DateString(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// SeedFromDate folds a date string into a 32-bit seed with a base-31
// polynomial hash, wrapping at every step.
func SeedFromDate(date string) int32 {
	var seed int32
	for _, ch := range date {
		seed = 31*seed + int32(ch)
	}
	return seed
}

// RNG is a splitmix32-style generator. It is not safe for concurrent use;
// every plan owns its own instance.
type RNG struct {
	state uint32
}

func NewRNG(seed int32) *RNG {
	return &RNG{state: uint32(seed)}
}

// Next returns the next value in [0,1).
func (r *RNG) Next() float64 {
	r.state += 0x9e3779b9
	t := r.state ^ r.state>>16
	t *= 0x21f0aaad
	t ^= t >> 15
	t *= 0x735a2d97
	t ^= t >> 15
	return float64(t) / 4294967296
}

// Index draws exactly one value and maps it onto [0,n).
func (r *RNG) Index(n int) int {
	return int(r.Next() * float64(n))
}
