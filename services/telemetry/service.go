// services/telemetry/service.go
package telemetry

import (
	"context"
	"fmt"
	"io"
	"time"

	"spiro/bus"
	"spiro/types"
)

var (
	topicConfig = bus.T("config", "telemetry")
	topicState  = bus.T("motor", "state")
	topicPass   = bus.T("motor", "pass")
)

// Run reports the controller state to out once per interval. The interval
// can be retuned via retained config on config/telemetry ({"interval": s}).
// On rp2 builds out is typically the telemetry UART; on the host, stdout.
func Run(ctx context.Context, conn *bus.Connection, out io.Writer) {
	stateSub := conn.Subscribe(topicState)
	passSub := conn.Subscribe(topicPass)
	cfgSub := conn.Subscribe(topicConfig)
	defer conn.Unsubscribe(stateSub)
	defer conn.Unsubscribe(passSub)
	defer conn.Unsubscribe(cfgSub)

	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	var (
		last   types.MotorState
		seen   bool
		passes uint32
	)

	for {
		select {
		case <-ctx.Done():
			println("Info: telemetry service stopping")
			return
		case msg := <-stateSub.Channel():
			if st, ok := msg.Payload.(types.MotorState); ok {
				last = st
				seen = true
			}
		case msg := <-passSub.Channel():
			if _, ok := msg.Payload.(types.PassEvent); ok {
				passes++
			}
		case msg := <-cfgSub.Channel():
			if m, ok := msg.Payload.(map[string]any); ok {
				if iv, ok := m["interval"].(float64); ok && iv > 0 {
					tick.Reset(time.Duration(iv * float64(time.Second)))
				}
			}
		case <-tick.C:
			if !seen {
				continue
			}
			fmt.Fprintf(out, "duty=%d mode=%s target=%d passes=%d\n",
				last.Duty, last.Mode, last.Target, passes)
		}
	}
}
