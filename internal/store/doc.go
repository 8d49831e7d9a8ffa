// Package store provides the employee record store.
//
// A Store owns the canonical, insertion-ordered collection of employee
// records. Every mutation rewrites the whole collection as one JSON blob
// under a fixed key of a durable slot (see internal/slot).
//
// # Persistence Contract
//
// Best-effort, at-most-once durable:
//   - Add, Update, Delete (when a record was removed) and Reset persist
//   - A failed write is logged and swallowed; memory stays authoritative
//   - The most recent swallowed failure is available from LastPersistError
//
// # Hydration
//
// Open reads the slot once. An absent key, an unreadable slot or a blob
// that does not parse all fall back to the configured seed records. None of
// these fail Open.
//
// # Derived Views
//
// Query, Filtered and List return copies. Search and sort never reorder
// the canonical collection.
//
// # Edit Hand-off
//
// SetCurrentEmployee, CurrentEmployee and ClearCurrentEmployee carry the
// record being edited between the list view and the edit view. Nothing
// else is shared between views.
package store
