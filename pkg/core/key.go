package core

import (
	"strconv"
	"time"
)

// KeyIncrement is the step, in days, between two generated keys (about 1.7s).
const KeyIncrement = 0.00002

// SerialEpoch is day zero of spreadsheet date serials.
var SerialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// SerialDays expresses t as fractional days since SerialEpoch.
func SerialDays(t time.Time) float64 {
	return float64(t.Sub(SerialEpoch)) / float64(24*time.Hour)
}

// KeyGenerator hands out strictly increasing keys derived from a timestamp.
// It is owned by a single conversion pass and is not safe for concurrent use.
type KeyGenerator struct {
	root    float64
	current float64
}

// NewKeyGenerator seeds a generator with now.
func NewKeyGenerator(now time.Time) *KeyGenerator {
	days := SerialDays(now)
	return &KeyGenerator{root: days, current: days}
}

// Next returns the current value and advances the generator.
func (g *KeyGenerator) Next() string {
	return g.From(g.current)
}

// From formats base as a key. The shared counter still advances, so keys
// handed out by Next stay strictly increasing.
func (g *KeyGenerator) From(base float64) string {
	g.current += KeyIncrement
	return FormatKey(base)
}

// Root returns the seed value formatted as a key.
func (g *KeyGenerator) Root() string {
	return FormatKey(g.root)
}

// FormatKey renders days with six decimals.
func FormatKey(days float64) string {
	return strconv.FormatFloat(days, 'f', 6, 64)
}
