//go:build rp2040 || rp2350

// Package tmquad drives a 4-digit TM1637 LED module as two two-digit
// score displays, for boards without 28 free GPIO lines.
package tmquad

import (
	"machine"

	"tinygo.org/x/drivers/tm1637"

	"scoreboard-go/x/mathx"
)

// Device is one TM1637 module on a clk/dio pin pair.
type Device struct {
	d tm1637.Device
}

// New configures the module. Brightness is clamped to the chip's 0..7.
func New(clk, dio machine.Pin, brightness uint8) *Device {
	d := tm1637.New(clk, dio, uint8(mathx.Clamp(int(brightness), 0, 7)))
	d.Configure()
	dev := &Device{d: d}
	dev.d.DisplayClear()
	return dev
}

// Pair exposes two adjacent positions as one player's display. On a
// 4-digit module, player 1 sits at 0 and player 2 at 2.
func (dev *Device) Pair(pos uint8) *Pair { return &Pair{dev: dev, pos: pos} }

type Pair struct {
	dev *Device
	pos uint8
}

// Show draws the two digits; out-of-range values clear their position.
func (p *Pair) Show(tens, ones int) {
	p.set(p.pos, tens)
	p.set(p.pos+1, ones)
}

// Blank clears both positions.
func (p *Pair) Blank() {
	p.dev.d.ClearDigit(p.pos)
	p.dev.d.ClearDigit(p.pos + 1)
}

func (p *Pair) set(pos uint8, v int) {
	if !mathx.Between(v, 0, 9) {
		p.dev.d.ClearDigit(pos)
		return
	}
	p.dev.d.DisplayDigit(pos, uint8(v))
}
