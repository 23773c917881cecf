// Package ports defines the driven-side interfaces of the ordering core:
// session persistence and distributed locking. Adapters live under
// pkg/adapters.
package ports
