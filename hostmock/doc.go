/*
Package hostmock provides a pretend host for waPC calls and event streams.

It is designed for tests that need to validate exactly what the logging
bridge sends to the host, or to push events into the guest, without a real
host running.

Two pieces are provided:

  - Mock answers outbound host calls. It enforces the routing fields you set,
    runs an optional PayloadValidator, scripts the response or a failure, and
    records every call so tests can count and decode them.
  - Events stands in for the host's event publisher. Guest code registers a
    function per event name through Events.Register; Events.Emit invokes it
    the way the host would deliver an event.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "logbridge",
	  ExpectedCapability: "log",
	  ExpectedFunction:   "log",
	})
	client, _ := logging.New(logging.Config{HostCall: m.HostCall})
	_ = client.Info("hello")
	calls := m.Calls() // one call, payload is the encoded record

	ev := hostmock.NewEvents(hostmock.EventsConfig{})
	bus := events.NewBus(events.BusConfig{Register: ev.Register})
	detach, _ := console.Attach(console.Config{Events: bus})
	_, _ = ev.Emit("log://log", payload)
	detach()

Behavior

  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise, HostCall enforces ExpectedNamespace/Capability/Function and runs
    PayloadValidator when provided. If everything is in order, Response (when set)
    provides the return bytes; otherwise it returns nil.
  - Leave fields blank when you want a wildcard; hostmock only enforces values you set.
*/
package hostmock
