// Package transport owns the local IPC byte stream beneath the presence
// session.
//
// Ownership boundary:
// - endpoint discovery over the fixed discord-ipc-{0..9} index range
// - platform variants (Unix domain socket, Windows named pipe)
// - exact-read / full-write primitives over the raw stream
package transport
