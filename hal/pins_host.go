//go:build !rp2040 && !rp2350

package hal

import "sync"

// Host-side pins: pure in-memory fakes so the control loop, renderer and
// simulator run without hardware.

// FakePin records its configuration and level.
type FakePin struct {
	mu    sync.Mutex
	n     int
	level bool
	mode  PinMode
	pull  Pull
}

type PinMode uint8

const (
	ModeUnconfigured PinMode = iota
	ModeInput
	ModeOutput
)

func NewFakePin(n int) *FakePin { return &FakePin{n: n} }

func (p *FakePin) Number() int { return p.n }

func (p *FakePin) ConfigureInput(pull Pull) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = ModeInput
	p.pull = pull
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = ModeOutput
	p.level = initial
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *FakePin) Toggle() {
	p.mu.Lock()
	p.level = !p.level
	p.mu.Unlock()
}

// Mode reports how the pin was last configured (test/simulator helper).
func (p *FakePin) Mode() PinMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// HostProvider serves fake pins, created on first use.
type HostProvider struct {
	mu   sync.Mutex
	pins map[int]*FakePin
	max  int
}

// NewHostProvider serves pins 0..maxPin.
func NewHostProvider(maxPin int) *HostProvider {
	return &HostProvider{pins: map[int]*FakePin{}, max: maxPin}
}

func (h *HostProvider) ByNumber(n int) (GPIOHandle, bool) {
	if n < 0 || n > h.max {
		return nil, false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.pins[n]
	if !ok {
		p = NewFakePin(n)
		h.pins[n] = p
	}
	return p, true
}

// Pin returns the concrete fake so tests and the simulator can poke
// levels directly.
func (h *HostProvider) Pin(n int) *FakePin {
	p, _ := h.ByNumber(n)
	return p.(*FakePin)
}

// DefaultProvider returns the platform pin provider (fakes on host).
func DefaultProvider() PinProvider { return NewHostProvider(63) }
