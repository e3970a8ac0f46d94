//go:build rp2040 || rp2350

package hal

import "machine"

// RP2 pins: thin wrappers over the machine package, as on the Pico
// scoreboard build.

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) Number() int { return r.n }

func (r *rp2Pin) ConfigureInput(pull Pull) error {
	var mode machine.PinMode
	switch pull {
	case PullUp:
		mode = machine.PinInputPullup
	case PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(b bool) { r.p.Set(b) }
func (r *rp2Pin) Get() bool  { return r.p.Get() }
func (r *rp2Pin) Toggle() {
	if r.p.Get() {
		r.p.Low()
	} else {
		r.p.High()
	}
}

type rp2Provider struct{ max int }

func (r *rp2Provider) ByNumber(n int) (GPIOHandle, bool) {
	if n < 0 || n > r.max {
		return nil, false
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, true
}

// DefaultProvider returns the platform pin provider (GP0..GP29 on RP2).
func DefaultProvider() PinProvider { return &rp2Provider{max: 29} }
