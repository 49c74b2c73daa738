package anyval

import "errors"

// Downcast errors.
var (
	ErrTypeMismatch = errors.New("type mismatch")
)

// Handle is implemented by every view and box in this package. The downcast
// operations accept any of them, so the three facets expose one operation
// set. The method set is unexported; handles are only constructed through
// this package.
type Handle interface {
	payload() any
}

// Boxed is the owning-handle side of Handle: payload access plus the
// ability to give the payload up. Implemented by *Box, *TransferableBox,
// and *ShareableBox.
type Boxed interface {
	Handle
	release()
}

// Is reports whether the handle's payload has concrete type T. It never
// fails and has no side effects.
func Is[T any](h Handle) bool {
	_, ok := h.payload().(*T)
	return ok
}

// Ref returns a shared reference into the handle's existing storage if the
// payload has concrete type T, and (nil, false) otherwise. Nothing is
// copied or allocated, and the handle stays valid. Callers must not write
// through the returned pointer; use Mut for that.
func Ref[T any](h Handle) (*T, bool) {
	p, ok := h.payload().(*T)
	return p, ok
}

// Mut returns an exclusive reference into the handle's existing storage if
// the payload has concrete type T, granting in-place write access. Keeping
// at most one such reference live at a time is the caller's discipline;
// this package does not enforce it.
func Mut[T any](h Handle) (*T, bool) {
	p, ok := h.payload().(*T)
	return p, ok
}

// Downcast moves the payload out of an owning handle if it has concrete
// type T. On a match the box is released and the returned pointer addresses
// the same memory the box owned; no copy is made. On a mismatch the box is
// returned to the caller untouched by way of ErrTypeMismatch, so the value
// is never lost and the caller may probe again with another type.
//
// The match test and the transfer are a single type assertion, and a
// handle's concrete type never changes after construction, so check and
// transfer cannot be separated by a type change on any facet.
func Downcast[T any](b Boxed) (*T, error) {
	p, ok := b.payload().(*T)
	if !ok {
		return nil, ErrTypeMismatch
	}
	b.release()
	return p, nil
}
