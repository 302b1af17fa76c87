// Package protocol owns the Discord IPC wire contract.
//
// Ownership boundary:
// - opcode enumeration
// - 8-byte frame header codec
// - JSON envelope shapes for handshake, activity commands, and replies
package protocol
