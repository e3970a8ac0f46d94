// Package sevenseg drives a single-digit seven-segment display over seven
// discrete GPIO lines, in segment order A,B,C,D,E,F,G.
package sevenseg

import (
	"scoreboard-go/hal"
	"scoreboard-go/x/mathx"
)

// Segments is the number of lines per digit.
const Segments = 7

// patterns marks which segments are lit per decimal digit (A..G).
// Line polarity is applied at write time, so the table is wiring-neutral.
var patterns = [10][Segments]bool{
	{true, true, true, true, true, true, false},    // 0
	{false, true, true, false, false, false, false}, // 1
	{true, true, false, true, true, false, true},   // 2
	{true, true, true, true, false, false, true},   // 3
	{false, true, true, false, false, true, true},  // 4
	{true, false, true, true, false, true, true},   // 5
	{true, false, true, true, true, true, true},    // 6
	{true, true, true, false, false, false, false}, // 7
	{true, true, true, true, true, true, true},     // 8
	{true, true, true, true, false, true, true},    // 9
}

// Pattern returns the lit-segment pattern for d, or all-off when d is
// outside [0,9].
func Pattern(d int) [Segments]bool {
	if !mathx.Between(d, 0, 9) {
		return [Segments]bool{}
	}
	return patterns[d]
}

// Renderer owns the seven lines of one digit. ActiveLow true selects
// common-anode wiring (a segment lights when its line is driven low).
type Renderer struct {
	segs      [Segments]hal.GPIOHandle
	activeLow bool
}

// NewRenderer configures the seven lines as outputs, initially blank.
func NewRenderer(segs [Segments]hal.GPIOHandle, activeLow bool) (*Renderer, error) {
	r := &Renderer{segs: segs, activeLow: activeLow}
	for _, s := range segs {
		if err := s.ConfigureOutput(r.level(false)); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Render drives the digit v, or blank when v is outside [0,9]. It is a
// level-driven redraw: stateless, idempotent, called every cycle.
func (r *Renderer) Render(v int) {
	p := Pattern(v)
	for i, s := range r.segs {
		s.Set(r.level(p[i]))
	}
}

// Blank drives all seven lines inactive.
func (r *Renderer) Blank() { r.Render(-1) }

func (r *Renderer) level(lit bool) bool {
	if r.activeLow {
		return !lit
	}
	return lit
}

// Decode reads the seven lines back and reports the digit they show.
// Returns -1 for blank or any pattern that is not a decimal digit.
// Host-side helper for the simulator and tests.
func (r *Renderer) Decode() int {
	var got [Segments]bool
	for i, s := range r.segs {
		got[i] = s.Get() != r.activeLow // lit?
	}
	for d := 0; d <= 9; d++ {
		if got == patterns[d] {
			return d
		}
	}
	return -1
}

// Pair is one player's two-digit display: tens then ones.
type Pair struct {
	Tens *Renderer
	Ones *Renderer
}

// NewPair claims wiring for both digits of one player.
func NewPair(tens, ones *Renderer) *Pair { return &Pair{Tens: tens, Ones: ones} }

// Show redraws both digits; out-of-range values blank their digit.
func (p *Pair) Show(tens, ones int) {
	p.Tens.Render(tens)
	p.Ones.Render(ones)
}

// Blank blanks both digits.
func (p *Pair) Blank() {
	p.Tens.Blank()
	p.Ones.Blank()
}
