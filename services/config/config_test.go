// config/config_test.go
package config

import (
	"context"
	"testing"
	"time"

	"spiro/bus"
	"spiro/errcode"
)

func TestConfig_PublishEmbedded_RetainedPerKey(t *testing.T) {
	// Override lookup for this test.
	oldLookup := EmbeddedConfigLookup
	EmbeddedConfigLookup = func(device string) ([]byte, bool) {
		if device != "spiro" {
			return nil, false
		}
		return []byte(`{
			"motor": {"min_duty": 62, "counter": 8192},
			"telemetry": {"interval": 2},
			"debug": true
		}`), true
	}
	t.Cleanup(func() { EmbeddedConfigLookup = oldLookup })

	b := bus.NewBus(16)
	conn := b.NewConnection("test-config")
	svc := NewConfigService()

	ctx := context.WithValue(context.Background(), CtxDeviceKey, "spiro")
	svc.Start(ctx, conn)

	// Subscribe; retained messages should arrive immediately.
	sub := conn.Subscribe(bus.T(configPrefix, bus.WildAll))

	wantCount := 3 // motor, telemetry, debug
	got := map[string]any{}

	deadline := time.Now().Add(600 * time.Millisecond)
	for len(got) < wantCount && time.Now().Before(deadline) {
		select {
		case m := <-sub.Channel():
			if len(m.Topic) < 2 || m.Topic[0] != configPrefix {
				t.Fatalf("unexpected topic: %v", m.Topic)
			}
			got[m.Topic[1]] = m.Payload
		case <-time.After(10 * time.Millisecond):
		}
	}
	if len(got) != wantCount {
		t.Fatalf("expected %d retained messages, got %d (%v)", wantCount, len(got), got)
	}

	if v, ok := got["debug"].(bool); !ok || !v {
		t.Fatalf("debug payload = %#v, want true", got["debug"])
	}
	mcfg, ok := got["motor"].(map[string]any)
	if !ok {
		t.Fatalf("motor payload type = %T, want map[string]any", got["motor"])
	}
	if md, ok := mcfg["min_duty"].(float64); !ok || md != 62 {
		t.Fatalf("motor.min_duty = %#v, want 62", mcfg["min_duty"])
	}
}

func TestConfig_PublishConfig_MissingDevice(t *testing.T) {
	b := bus.NewBus(4)
	conn := b.NewConnection("test-missing-device")
	svc := NewConfigService()

	// No device ID in context
	err := svc.publishConfig(context.Background(), conn)
	if err == nil {
		t.Fatal("expected error for missing device ID, got nil")
	}
	if errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("code = %v, want invalid_params", errcode.Of(err))
	}
}

func TestConfig_PublishConfig_NoConfigFound(t *testing.T) {
	oldLookup := EmbeddedConfigLookup
	EmbeddedConfigLookup = func(device string) ([]byte, bool) { return nil, false }
	t.Cleanup(func() { EmbeddedConfigLookup = oldLookup })

	b := bus.NewBus(4)
	conn := b.NewConnection("test-no-config")
	svc := NewConfigService()

	ctx := context.WithValue(context.Background(), CtxDeviceKey, "unknown-device")
	err := svc.publishConfig(ctx, conn)
	if err == nil {
		t.Fatal("expected error for missing embedded config, got nil")
	}
	if errcode.Of(err) != errcode.UnknownDevice {
		t.Fatalf("code = %v, want unknown_device", errcode.Of(err))
	}
}
