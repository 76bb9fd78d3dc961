// Package kernel contains shared value objects used across the domain model.
// These are small immutable types with validation baked into their
// constructors, so aggregates can rely on them being well-formed.
package kernel
