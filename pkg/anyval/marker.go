package anyval

// Transferable marks a type whose values are safe to move to another
// goroutine and use there exclusively afterward. Implementing the marker is
// a declaration by the type's author; nothing is checked at runtime.
type Transferable interface {
	Transferable()
}

// Shareable marks a type whose values are safe to read concurrently from
// multiple goroutines. As with Transferable, the marker is a declaration,
// not an enforced property.
type Shareable interface {
	Shareable()
}

// transferableShareable constrains shareable-facet payloads. Concurrent
// sharing presumes the value can first move between goroutines, so the
// shareable facet requires both markers.
type transferableShareable interface {
	Transferable
	Shareable
}
