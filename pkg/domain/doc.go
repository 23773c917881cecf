// Package domain holds the core types of the ordering assistant: the
// per-user session, the completed-order snapshot, catalog items, reply
// payloads and the sentinel errors shared across packages.
package domain
