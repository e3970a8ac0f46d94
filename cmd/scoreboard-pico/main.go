//go:build rp2040

// Command scoreboard-pico: two-player scoreboard on an RP2040 Pico.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target pico ./cmd/scoreboard-pico
//
// Wiring assumptions (edit the pin constants as needed):
//   - Player buttons on GP10 (P1) and GP9 (P2), external pulldown,
//     pressed reads high.
//   - Reset line on GP11, wired active-low to the board's RUN circuit.
//   - One 4-digit TM1637 module on GP2 (CLK) / GP3 (DIO): P1 on the left
//     pair of digits, P2 on the right.
//   - Score telemetry on UART0 (GP0 TX / GP1 RX, 115200).
package main

import (
	"context"
	"time"

	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"scoreboard-go/bus"
	"scoreboard-go/drivers/tmquad"
	"scoreboard-go/hal"
	"scoreboard-go/services/config"
	"scoreboard-go/services/heartbeat"
	"scoreboard-go/services/score"
	"scoreboard-go/services/telemetry"
	"scoreboard-go/x/timex"
)

const (
	pinBtnP1   = 10
	pinBtnP2   = 9
	pinReset   = 11
	pinDispCLK = 2
	pinDispDIO = 3
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot: scoreboard")

	_ = uartx.UART0.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.Pin(0),
		RX:       machine.Pin(1),
	})

	reg := hal.NewRegistry(hal.DefaultProvider())
	btn1, err := reg.ClaimPin("p1_button", pinBtnP1)
	if err != nil {
		println("[scoreboard] claim p1 button:", err.Error())
		return
	}
	btn2, err := reg.ClaimPin("p2_button", pinBtnP2)
	if err != nil {
		println("[scoreboard] claim p2 button:", err.Error())
		return
	}
	rst, err := reg.ClaimPin("reset", pinReset)
	if err != nil {
		println("[scoreboard] claim reset line:", err.Error())
		return
	}

	disp := tmquad.New(machine.Pin(pinDispCLK), machine.Pin(pinDispDIO), 7)

	b := bus.NewBus(32)
	ctx := context.Background()

	cfgConn := b.NewConnection("config")
	if err := config.Publish(cfgConn, "pico"); err != nil {
		println("[scoreboard] config:", err.Error())
	}
	awaitCtx, cancel := context.WithTimeout(ctx, time.Second)
	cfg := config.AwaitScore(awaitCtx, cfgConn)
	cancel()

	eng, err := score.NewEngine(cfg, timex.Wall{}, score.Hardware{
		Btn1:  btn1,
		Btn2:  btn2,
		Disp1: disp.Pair(0),
		Disp2: disp.Pair(2),
		// RUN is pulled low to reset, so the line idles high.
		ResetLine:       rst,
		ResetActiveHigh: false,
	})
	if err != nil {
		println("[scoreboard] engine:", err.Error())
		return
	}

	tel := telemetry.New(b.NewConnection("telemetry"), uartx.UART0)
	go tel.Run(ctx)

	hb := heartbeat.New(b.NewConnection("heartbeat"), timex.Wall{}, 0)
	go hb.Run(ctx)

	svc := score.NewService(b.NewConnection("score"), eng, cfg)
	svc.Run(ctx)
}
