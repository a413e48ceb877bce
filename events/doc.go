/*
Package events delivers host-published events to guest code.

The host pushes an event by invoking a guest function registered under the
event's name. Bus registers one such function per event name on first
subscription and fans each delivery out to the handlers subscribed at that
moment. Subscribe returns a cancel function; there is no package-level
listener registry beyond what DefaultBus holds for the process-wide waPC
function table.

LogEvent is the payload published on LogEventName by hosts that mirror their
log records back to the guest.
*/
package events
