// Package queries contains read operations in the CQRS architecture.
// Query handlers run raw SQL against the read model and return plain
// response structs, never domain aggregates.
package queries
