// Package infra contains technical adapters such as state stores,
// geocoding and routing clients, and the journal. These packages
// should depend only on the interfaces defined in the core packages.
package infra
