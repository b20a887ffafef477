package telemetry

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"spiro/bus"
	"spiro/types"
)

type lineBuf struct {
	mu sync.Mutex
	b  strings.Builder
}

func (l *lineBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func (l *lineBuf) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.String()
}

func TestReportsLatestState(t *testing.T) {
	b := bus.NewBus(16)
	svcConn := b.NewConnection("telemetry")
	pubConn := b.NewConnection("pub")

	// Fast interval so the test completes quickly.
	pubConn.Publish(pubConn.NewMessage(bus.T("config", "telemetry"),
		map[string]any{"interval": 0.02}, true))

	out := &lineBuf{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		Run(ctx, svcConn, out)
		close(done)
	}()

	pubConn.Publish(pubConn.NewMessage(bus.T("motor", "state"),
		types.MotorState{Duty: 120, Mode: types.ModeWander, Target: 120}, true))
	pubConn.Publish(pubConn.NewMessage(bus.T("motor", "pass"),
		types.PassEvent{From: 62, To: 120, Steps: 58, Ticks: 256}, false))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), "duty=120 mode=wander target=120 passes=1") {
			cancel()
			<-done
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("report line never appeared; output: %q", out.String())
}

func TestSilentUntilFirstState(t *testing.T) {
	b := bus.NewBus(16)
	svcConn := b.NewConnection("telemetry")
	pubConn := b.NewConnection("pub")

	pubConn.Publish(pubConn.NewMessage(bus.T("config", "telemetry"),
		map[string]any{"interval": 0.01}, true))

	out := &lineBuf{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Run(ctx, svcConn, out)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done
	if got := out.String(); got != "" {
		t.Errorf("expected no output before first state, got %q", got)
	}
}
