/*
Package console mirrors host log events onto a local console.

Attach subscribes to events.LogEventName and, for each delivered event,
strips ANSI escape sequences from the message and writes it to the console
channel matching the event level. Trace and Debug share the debug channel.

An event with an unknown level is not printed; its delivery fails with an
error wrapping logbridge.ErrUnknownLevel while the subscription stays
attached. The Detach function returned by Attach cancels the subscription.
*/
package console
