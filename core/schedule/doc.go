// Package schedule implements the in-memory schedule store: destinations,
// trips over inclusive date ranges, optional conflict detection, ordered
// queries, and full-state snapshot/restore. The package does no I/O and no
// logging; persistence and presentation belong to the layers around it.
package schedule
