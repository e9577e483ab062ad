// Package repository holds the record collections behind the console:
// one ordered, durably-stored list per entity kind, with
// insert-or-replace-by-id save semantics.  Sentinel errors defined here
// let handlers translate failures into HTTP responses without
// inspecting error strings.
package repository

import "errors"

// ErrNotFound is returned when a lookup or update targets an id that is
// not in the collection.  Handlers should translate this into HTTP 404.
// Deletes never return it; deleting an absent record is a no-op.
var ErrNotFound = errors.New("record not found")

// ErrInvalidRecord wraps field-level validation failures.  The API
// layer validates before calling in, so hitting this means a caller
// bypassed the boundary; handlers translate it into HTTP 400.
var ErrInvalidRecord = errors.New("invalid record")
