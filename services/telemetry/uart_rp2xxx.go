// services/telemetry/uart_rp2xxx.go
//go:build rp2040 || rp2350

package telemetry

import (
	"io"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// UARTSink configures UART0 for one-way telemetry and returns it as the
// report writer. Pin mapping follows the uartx defaults for the board.
func UARTSink(baud uint32) (io.Writer, error) {
	hw := uartx.UART0
	if err := hw.Configure(uartx.UARTConfig{BaudRate: baud}); err != nil {
		return nil, err
	}
	return hw, nil
}
