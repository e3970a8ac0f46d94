//go:build !rp2040 && !rp2350

// Command simulate: interactive host-side scoreboard. Fake pins stand in
// for the board; the full 28-line seven-segment wiring of the original
// build is claimed and decoded back into digits for display.
//
// Commands:
//
//	tap <1|2> [n]     press and release (n times)
//	hold <1|2> <ms>   press, hold for ms, release (3000+ fires reset)
//	press <1|2>       raw press
//	release <1|2>     raw release
//	show              decode the four digits and the match state
//	quit
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/shlex"

	"scoreboard-go/bus"
	"scoreboard-go/drivers/sevenseg"
	"scoreboard-go/hal"
	"scoreboard-go/services/config"
	"scoreboard-go/services/heartbeat"
	"scoreboard-go/services/score"
	"scoreboard-go/services/telemetry"
	"scoreboard-go/types"
	"scoreboard-go/x/timex"
)

// Pin map of the original board.
var (
	p1TensPins = []int{2, 3, 4, 5, 6, 7, 8}
	p1OnesPins = []int{14, 15, 16, 17, 18, 19, 20}
	p2TensPins = []int{22, 24, 26, 28, 30, 32, 34}
	p2OnesPins = []int{23, 25, 27, 29, 31, 33, 35}
)

const (
	pinBtnP1 = 10
	pinBtnP2 = 9
	pinReset = 11
)

func newRenderer(reg *hal.Registry, devID string, pins []int) (*sevenseg.Renderer, error) {
	hs, err := reg.ClaimPins(devID, pins)
	if err != nil {
		return nil, err
	}
	var segs [sevenseg.Segments]hal.GPIOHandle
	copy(segs[:], hs)
	return sevenseg.NewRenderer(segs, true)
}

func main() {
	prov := hal.NewHostProvider(63)
	reg := hal.NewRegistry(prov)

	p1t, err := newRenderer(reg, "p1_display", p1TensPins)
	if err != nil {
		fmt.Println("p1 tens:", err)
		return
	}
	p1o, err := newRenderer(reg, "p1_display", p1OnesPins)
	if err != nil {
		fmt.Println("p1 ones:", err)
		return
	}
	p2t, err := newRenderer(reg, "p2_display", p2TensPins)
	if err != nil {
		fmt.Println("p2 tens:", err)
		return
	}
	p2o, err := newRenderer(reg, "p2_display", p2OnesPins)
	if err != nil {
		fmt.Println("p2 ones:", err)
		return
	}

	btn1, err := reg.ClaimPin("p1_button", pinBtnP1)
	if err != nil {
		fmt.Println("p1 button:", err)
		return
	}
	btn2, err := reg.ClaimPin("p2_button", pinBtnP2)
	if err != nil {
		fmt.Println("p2 button:", err)
		return
	}
	rst, err := reg.ClaimPin("reset", pinReset)
	if err != nil {
		fmt.Println("reset line:", err)
		return
	}

	b := bus.NewBus(32)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfgConn := b.NewConnection("config")
	if err := config.Publish(cfgConn, "host"); err != nil {
		fmt.Println("config:", err)
		return
	}
	cfg := config.AwaitScore(ctx, cfgConn)

	eng, err := score.NewEngine(cfg, timex.Wall{}, score.Hardware{
		Btn1: btn1, Btn2: btn2,
		Disp1:     sevenseg.NewPair(p1t, p1o),
		Disp2:     sevenseg.NewPair(p2t, p2o),
		ResetLine: rst,
	})
	if err != nil {
		fmt.Println("engine:", err)
		return
	}

	go telemetry.New(b.NewConnection("telemetry"), os.Stdout).Run(ctx)
	go heartbeat.New(b.NewConnection("heartbeat"), timex.Wall{}, 0).Run(ctx)
	go score.NewService(b.NewConnection("score"), eng, cfg).Run(ctx)

	ui := b.NewConnection("ui")
	fmt.Println("scoreboard simulator; first to", cfg.WinTarget, "win by 2")

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		args, err := shlex.Split(in.Text())
		if err != nil {
			fmt.Println("parse:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "tap":
			btn, ok := pickButton(args, prov)
			if !ok {
				continue
			}
			n := 1
			if len(args) > 2 {
				n, _ = strconv.Atoi(args[2])
			}
			for i := 0; i < n; i++ {
				tap(btn)
			}
		case "hold":
			btn, ok := pickButton(args, prov)
			if !ok || len(args) < 3 {
				fmt.Println("usage: hold <1|2> <ms>")
				continue
			}
			ms, _ := strconv.Atoi(args[2])
			btn.Set(true)
			time.Sleep(time.Duration(ms) * time.Millisecond)
			btn.Set(false)
			time.Sleep(300 * time.Millisecond)
		case "press":
			if btn, ok := pickButton(args, prov); ok {
				btn.Set(true)
			}
		case "release":
			if btn, ok := pickButton(args, prov); ok {
				btn.Set(false)
			}
		case "show":
			show(ui, p1t, p1o, p2t, p2o)
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command:", args[0])
		}
	}
}

func pickButton(args []string, prov *hal.HostProvider) (*hal.FakePin, bool) {
	if len(args) < 2 {
		fmt.Println("which player? 1 or 2")
		return nil, false
	}
	switch args[1] {
	case "1":
		return prov.Pin(pinBtnP1), true
	case "2":
		return prov.Pin(pinBtnP2), true
	}
	fmt.Println("which player? 1 or 2")
	return nil, false
}

// tap waits out the debounce pause before releasing, like a human press.
func tap(btn *hal.FakePin) {
	btn.Set(true)
	time.Sleep(250 * time.Millisecond)
	btn.Set(false)
	time.Sleep(100 * time.Millisecond)
}

func show(ui *bus.Connection, p1t, p1o, p2t, p2o *sevenseg.Renderer) {
	fmt.Printf("display: P1 [%s%s]  P2 [%s%s]\n",
		digit(p1t), digit(p1o), digit(p2t), digit(p2o))

	sub := ui.Subscribe(bus.T("score", "state"))
	defer ui.Unsubscribe(sub)
	select {
	case m := <-sub.Channel():
		if st, ok := m.Payload.(types.MatchState); ok {
			fmt.Printf("state:   p1=%d p2=%d winner=%s\n",
				st.P1.Combined(), st.P2.Combined(), st.Winner)
		}
	case <-time.After(200 * time.Millisecond):
		fmt.Println("state:   (none retained)")
	}
}

func digit(r *sevenseg.Renderer) string {
	d := r.Decode()
	if d < 0 {
		return "_"
	}
	return strconv.Itoa(d)
}
