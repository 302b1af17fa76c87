// Package discordrp maintains a rich-presence session with a locally
// running Discord client over its IPC endpoint.
//
// A session is established with Connect, which discovers the endpoint,
// performs the protocol handshake, and returns a ready *Presence. The
// caller then sets or clears the displayed activity any number of times
// and finally calls Close (typically via defer) to tear the session down.
//
// All operations are synchronous, blocking round trips. A Presence must
// not be used from multiple goroutines at once.
package discordrp
