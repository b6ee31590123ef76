// Package internal documents the admin console backend internals.
//
// The internal tree is organized by responsibility:
// - api: HTTP handlers, middleware, and routing
// - domain: business logic and domain models
// - storage: the embedded in-memory data layer and its seed data
// - datetime, picker: local date-time parsing and range-picker state
// - auth, audit, config, email, metrics, sanitize: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
