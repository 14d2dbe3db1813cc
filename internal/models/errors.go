package models

import "errors"

// ErrNotFound is returned when a wine or event lookup by id or slug misses.
var ErrNotFound = errors.New("not found")

// ErrSoldOut is returned when a reservation asks for more spots than an event
// has left. Distinct from ErrNotFound so handlers can answer 409 vs 404.
var ErrSoldOut = errors.New("not enough spots available")

// ErrSlugTaken is returned when a create collides with an existing slug.
var ErrSlugTaken = errors.New("slug already in use")
