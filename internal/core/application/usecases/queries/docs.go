// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries run directly against the database and return read models shaped
// for their consumers; the storage locator of uploaded files is never part
// of any read model.
package queries
