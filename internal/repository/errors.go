// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrFloorReference indicates that a write referenced a floor
// that does not exist (a foreign key violation at the store level),
// while the *NotFound values signal that the targeted record is absent.
// Handlers translate these into distinct HTTP status codes instead of
// collapsing every failure into a 500.
package repository

import "errors"

// ErrFloorNotFound is returned when a floor lookup or delete targets a
// floor that does not exist. Handlers should translate this into an
// HTTP 404 response.
var ErrFloorNotFound = errors.New("floor not found")

// ErrShopNotFound is returned when a shop lookup, update or delete
// targets a shop that does not exist.
var ErrShopNotFound = errors.New("shop not found")

// ErrUserNotFound is returned when a user lookup, update or delete
// targets a user that does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when a user insert collides with the
// unique email index. Handlers should translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrFloorReference is returned when a shop insert or update names a
// floor id that does not resolve to an existing floor. The database
// enforces this via the shops.floor_id foreign key; handlers should
// translate it into HTTP 400.
var ErrFloorReference = errors.New("floor reference does not exist")
