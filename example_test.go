package logbridge_test

import (
	"fmt"

	logbridge "github.com/hostlink/logbridge"
	"github.com/hostlink/logbridge/console"
	"github.com/hostlink/logbridge/events"
	"github.com/hostlink/logbridge/hostmock"
	"github.com/hostlink/logbridge/logging"
)

type printConsole struct{}

func (printConsole) Debug(m string) { fmt.Println("DEBUG", m) }
func (printConsole) Info(m string)  { fmt.Println("INFO", m) }
func (printConsole) Warn(m string)  { fmt.Println("WARN", m) }
func (printConsole) Error(m string) { fmt.Println("ERROR", m) }

// A pretend host echoes every record it receives back on the log event stream.
func Example() {
	sdk, err := logbridge.New(logbridge.Config{Namespace: "plugin:log"})
	if err != nil {
		panic(err)
	}

	host := hostmock.NewEvents(hostmock.EventsConfig{})
	bus := events.NewBus(events.BusConfig{Register: host.Register})

	detach, err := console.Attach(console.Config{Events: bus, Console: printConsole{}})
	if err != nil {
		panic(err)
	}
	defer detach()

	echo := func(_, _, _ string, payload []byte) ([]byte, error) {
		rec, err := logging.UnmarshalRecord(payload)
		if err != nil {
			return nil, err
		}
		ev, err := events.EncodeLogEvent(events.LogEvent{Level: rec.Level, Message: "\x1b[1m" + rec.Message + "\x1b[0m"})
		if err != nil {
			return nil, err
		}
		return host.Emit(events.LogEventName, ev)
	}

	client, err := logging.New(logging.Config{SDKConfig: sdk.Config(), HostCall: echo})
	if err != nil {
		panic(err)
	}

	_ = client.Trace("booting")
	_ = client.Warn("cache cold", logging.WithFile("cache.go"), logging.WithLine(12))
	_ = client.Error("request failed", logging.WithKeyValues(map[string]string{"status": "502"}))

	// Output:
	// DEBUG booting
	// WARN cache cold
	// ERROR request failed
}
