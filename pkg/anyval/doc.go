// Package anyval provides handles for values of unknown concrete type that
// stay inspectable: every handle can name its payload's concrete type and
// render the payload's current contents as text, even when the holder has
// no compile-time knowledge of what is stored.
//
// A handle is either a borrowed view over a caller-owned value (Of and the
// facet-specific constructors) or an owning box that takes the value in
// (NewBox and friends). The four operations Is, Ref, Mut, and Downcast
// recover the original type from any handle; only Downcast consumes storage,
// and a failed Downcast leaves the box untouched so the caller can probe
// again with a different type.
//
// # Facets
//
// Handles come in three facets with identical operations and progressively
// narrower admissible payload types:
//
//   - Value / Box: any payload type.
//   - TransferableValue / TransferableBox: payload must implement
//     Transferable, marking it safe to hand off to another goroutine.
//   - ShareableValue / ShareableBox: payload must implement both
//     Transferable and Shareable, marking it safe for concurrent reads
//     from several goroutines.
//
// The markers are declared capabilities of the payload type; this package
// does no locking of its own, and serializing exclusive access to a shared
// handle remains the caller's job.
//
// # Boxes and TypeName
//
// The package-level TypeName names the concrete type of whatever value it
// is handed. Handed a *Box, it names the box type, not the payload's: the
// box is itself a concrete value. To name the payload, use the box's
// TypeName method or its View, which operate on the dereferenced payload,
// as do all downcast operations.
package anyval
