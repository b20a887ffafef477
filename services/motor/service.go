// services/motor/service.go
package motor

import (
	"context"
	"encoding/json"
	"time"

	"spiro/bus"
	"spiro/errcode"
	"spiro/types"
)

var (
	topicConfig = bus.T("config", "motor")
	topicState  = bus.T("motor", "state")
	topicPass   = bus.T("motor", "pass")
)

// Run drives the controller until ctx is cancelled. Each outer iteration
// re-reads the mode switch and drains pending config; a wander pass that
// has started runs to completion first, so leaving wander mode can lag by
// one full pass (a few hundred ms at default tuning).
func Run(ctx context.Context, conn *bus.Connection, hw Hardware, cfg Config) {
	s := &service{
		conn: conn,
		ctrl: NewController(hw, cfg),
		hw:   hw,
	}
	s.loop(ctx)
}

type service struct {
	conn *bus.Connection
	ctrl *Controller
	hw   Hardware
	last types.MotorState
}

func (s *service) loop(ctx context.Context) {
	cfgSub := s.conn.Subscribe(topicConfig)
	defer s.conn.Unsubscribe(cfgSub)

	s.publishState(types.ModeDirect, 0)

	for {
		select {
		case <-ctx.Done():
			println("Info: motor service stopping")
			return
		case msg := <-cfgSub.Channel():
			s.reply(msg, s.applyConfig(msg.Payload))
			continue
		default:
		}

		if s.hw.Switch.Wander() {
			ev := s.ctrl.WanderOnce()
			ev.TS = time.Now().UnixMilli()
			s.conn.Publish(s.conn.NewMessage(topicPass, ev, false))
			s.publishState(types.ModeWander, ev.To)
		} else {
			s.ctrl.DirectOnce()
			s.publishState(types.ModeDirect, 0)
		}
	}
}

// applyConfig retunes between passes; malformed payloads are ignored with
// a log line, never fatal.
func (s *service) applyConfig(payload any) error {
	var tc types.MotorConfig
	if err := decodeJSON(payload, &tc); err != nil {
		println("Info: motor config rejected:", err.Error())
		return &errcode.E{C: errcode.InvalidPayload, Op: "motor.config", Err: err}
	}
	s.ctrl.Retune(FromTypes(tc))
	println("Info: motor retuned, min_duty", s.ctrl.Config().MinDuty)
	return nil
}

// reply answers a request-style message on its ReplyTo topic, if any.
func (s *service) reply(msg *bus.Message, err error) {
	if msg.ReplyTo == nil {
		return
	}
	var payload any
	if err != nil {
		payload = types.ErrorReply{Error: string(errcode.Of(err))}
	} else {
		payload = types.OKReply{OK: true}
	}
	s.conn.Publish(s.conn.NewMessage(msg.ReplyTo, payload, false))
}

// publishState publishes retained state, suppressing no-op updates so
// direct mode does not flood the bus while the knob is still.
func (s *service) publishState(mode types.Mode, target uint8) {
	st := types.MotorState{
		Duty:   s.ctrl.Duty(),
		Target: target,
		Mode:   mode,
	}
	if st.Duty == s.last.Duty && st.Mode == s.last.Mode && st.Target == s.last.Target {
		return
	}
	st.TS = time.Now().UnixMilli()
	s.last = st
	s.conn.Publish(s.conn.NewMessage(topicState, st, true))
}

// decodeJSON accepts raw bytes, a JSON string, or an already-decoded
// value (as produced by the config service) and fills dst.
func decodeJSON[T any](src any, dst *T) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, dst)
	}
}
