/*
Package logbridge provides the shared runtime configuration for the guest-side
logging bridge.

Guest code running inside a sandbox (a webview or a WebAssembly module) cannot
write to the host's log sink directly. The logging package forwards leveled
records to the host over waPC host calls, and the console package mirrors log
events the host publishes back onto a local console.

The package exposes New to resolve a RuntimeConfig shared by those clients,
the Level enumeration used on the wire, and the sentinel errors the clients
wrap. DefaultNamespace is used when a namespace is not explicitly provided.
*/
package logbridge
