// Package telemetry mirrors scoreboard activity as text lines on an
// io.Writer, typically a UART on the board and stdout in the simulator.
package telemetry

import (
	"context"
	"io"

	"scoreboard-go/bus"
	"scoreboard-go/types"
	"scoreboard-go/x/conv"
)

type Service struct {
	conn *bus.Connection
	w    io.Writer
}

func New(conn *bus.Connection, w io.Writer) *Service {
	return &Service{conn: conn, w: w}
}

// Run prints until ctx is cancelled.
func (s *Service) Run(ctx context.Context) {
	scoreSub := s.conn.Subscribe(bus.T("score", "#"))
	defer s.conn.Unsubscribe(scoreSub)
	sysSub := s.conn.Subscribe(bus.T("system", "#"))
	defer s.conn.Unsubscribe(sysSub)

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-scoreSub.Channel():
			s.line(msg.Payload)
		case msg := <-sysSub.Channel():
			s.line(msg.Payload)
		}
	}
}

// line formats one payload. Built with conv instead of fmt so the MCU
// build stays lean; unknown payloads are skipped.
func (s *Service) line(payload any) {
	var b lineBuf
	switch v := payload.(type) {
	case types.MatchState:
		b.str("score p1=")
		b.num(uint64(v.P1.Combined()))
		b.str(" p2=")
		b.num(uint64(v.P2.Combined()))
		if v.WinnerFound {
			b.str(" winner=")
			b.str(v.Winner.String())
		}
	case types.PointEvent:
		b.str("point ")
		b.str(v.Player.String())
		b.str(" -> ")
		b.num(uint64(v.Score.Combined()))
	case types.WinnerEvent:
		b.str("winner ")
		b.str(v.Winner.String())
		b.str(" at ")
		b.num(uint64(v.Score.Combined()))
	case types.ResetEvent:
		b.str("reset held=")
		b.str(v.Held.String())
	case types.Heartbeat:
		b.str("heartbeat seq=")
		b.num(uint64(v.Seq))
		b.str(" up=")
		b.num(uint64(v.UptimeMs / 1000))
		b.str("s")
	case types.ServiceState:
		b.str("service ")
		b.str(v.Level)
	default:
		return
	}
	b.str("\r\n")
	_, _ = s.w.Write(b.bytes())
}

// lineBuf is a fixed-capacity line builder; long enough for any line we
// emit, truncating silently rather than allocating.
type lineBuf struct {
	buf [64]byte
	n   int
}

func (l *lineBuf) str(s string) {
	l.n += copy(l.buf[l.n:], s)
}

func (l *lineBuf) num(u uint64) {
	var tmp [20]byte
	l.n += copy(l.buf[l.n:], conv.Utoa(tmp[:], u))
}

func (l *lineBuf) bytes() []byte { return l.buf[:l.n] }
