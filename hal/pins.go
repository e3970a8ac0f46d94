package hal

import (
	"sync"

	"scoreboard-go/errcode"
)

// Pull selects the input bias of a GPIO line.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// GPIOHandle is one digital line. Implementations are machine-backed on
// MCU builds and fakes on host builds.
type GPIOHandle interface {
	Number() int
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(bool)
	Get() bool
	Toggle()
}

// PinProvider resolves pin numbers to handles for one platform.
type PinProvider interface {
	ByNumber(n int) (GPIOHandle, bool)
}

// Registry hands out pins with single-owner semantics. Claiming a line
// someone else holds fails with pin_in_use; the scoreboard relies on this
// to guarantee the two players never share an output line.
type Registry struct {
	mu     sync.Mutex
	pins   PinProvider
	owners map[int]string // pin -> devID
}

func NewRegistry(pins PinProvider) *Registry {
	return &Registry{pins: pins, owners: map[int]string{}}
}

// ClaimPin reserves pin n for devID and returns its handle.
func (r *Registry) ClaimPin(devID string, n int) (GPIOHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.pins.ByNumber(n)
	if !ok {
		return nil, errcode.UnknownPin
	}
	if owner, taken := r.owners[n]; taken && owner != devID {
		return nil, errcode.PinInUse
	}
	r.owners[n] = devID
	return h, nil
}

// ClaimPins claims a fixed-size set atomically; on any failure it releases
// what it already took and returns the error.
func (r *Registry) ClaimPins(devID string, ns []int) ([]GPIOHandle, error) {
	out := make([]GPIOHandle, 0, len(ns))
	for _, n := range ns {
		h, err := r.ClaimPin(devID, n)
		if err != nil {
			for _, m := range ns[:len(out)] {
				r.ReleasePin(devID, m)
			}
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

// ReleasePin returns a pin; only the owner can release it.
func (r *Registry) ReleasePin(devID string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.owners[n] == devID {
		delete(r.owners, n)
	}
}
