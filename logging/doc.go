/*
Package logging offers a client for emitting log records from guest code to
the host runtime.

The package exposes a small interface with convenience methods for every log
level (Trace, Debug, Info, Warn, Error) plus Log for an explicit level. Each
call captures the caller's location on a best-effort basis, builds a Record,
and sends it to the host as a single waPC host call. The call returns once the
host acknowledges the record; transport, encoding and host status failures are
returned to the caller and never retried. A successful call returns no value.

The host acknowledges a record with an empty response, or with a tarmac
sdk.Status carrying code 200 or 206. Any other response fails the call: codes
400, 404 and 500 wrap logbridge.ErrHostError, and other codes or bodies that do
not decode as a Status (a bare "ok", say) wrap logbridge.ErrHostResponseInvalid.

Optional fields are supplied with WithFile, WithLine and WithKeyValues. Fields
that are not supplied are left out of the outbound payload entirely.
*/
package logging
