package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Populate embeddedConfigs at build time (e.g. via code generation) or
// manually during development.
// Key: device ID (same value placed in ctx under CtxDeviceKey)
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

// Motor tuning for the spiro fan board: min_duty 62 is ~0.8V on the 3.3V
// rail; counter 0x2000 puts a full-range wander pass under a second.
const cfgSpiro = `{
  "motor": {
      "min_duty": 62,
      "ticks": 255,
      "delay_floor": 10,
      "counter": 8192,
      "warmup_ms": 250
  },
  "telemetry": {
      "interval": 1
  }
}`

var embeddedConfigs = map[string][]byte{
	"spiro": []byte(cfgSpiro),
}
