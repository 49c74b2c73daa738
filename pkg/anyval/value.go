package anyval

import (
	"fmt"
	"reflect"
)

// value is the common core of every view handle: the payload pointer stored
// as any. The dynamic type of p is always *T for the payload type T and is
// fixed at construction.
type value struct {
	p any
}

func (v value) payload() any { return v.p }

// Type returns the payload's concrete type descriptor. The descriptor is
// comparable for equality and stable for the life of the process. A zero
// handle returns nil.
func (v value) Type() reflect.Type {
	if v.p == nil {
		return nil
	}
	return reflect.TypeOf(v.p).Elem()
}

// TypeName returns a human-readable name for the payload's concrete type.
// The name is stable across calls within a process but is not guaranteed
// unique, nor stable across builds.
func (v value) TypeName() string {
	t := v.Type()
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// String renders the payload's current contents. The rendering happens at
// call time, never from a snapshot, so mutations made through Mut are
// visible in subsequent calls.
func (v value) String() string {
	return render(v.p, "<nil>")
}

// render formats the value a payload pointer points at, dereferencing so
// the contents rather than the pointer are shown. empty is returned for
// missing storage (zero handles, released boxes, nil payload pointers).
func render(p any, empty string) string {
	rv := reflect.ValueOf(p)
	if !rv.IsValid() || rv.IsNil() {
		return empty
	}
	return fmt.Sprintf("%+v", rv.Elem().Interface())
}

// Value is a borrowed view of a value of unknown concrete type. It carries
// no thread-safety guarantee: keep it on the goroutine that created it
// unless the payload type independently permits otherwise.
type Value struct {
	value
}

// Of wraps a caller-owned value in a view handle. The view holds the given
// pointer, so it remains valid only as long as the pointed-to value does,
// and it reflects every later change to that value.
func Of[T any](p *T) Value {
	return Value{value{p}}
}

// TransferableValue is a borrowed view whose payload type is marked safe to
// move across goroutines.
type TransferableValue struct {
	value
}

// OfTransferable wraps a caller-owned value whose type implements
// Transferable.
func OfTransferable[T Transferable](p *T) TransferableValue {
	return TransferableValue{value{p}}
}

// ShareableValue is a borrowed view whose payload type is marked safe for
// concurrent reads from multiple goroutines. Exclusive access through Mut
// still requires external serialization by the caller.
type ShareableValue struct {
	value
}

// OfShareable wraps a caller-owned value whose type implements both
// Transferable and Shareable.
func OfShareable[T transferableShareable](p *T) ShareableValue {
	return ShareableValue{value{p}}
}

// TypeName returns the human-readable name of v's concrete type, or "<nil>"
// for a nil interface.
//
// Note that v names its own type: handed a *Box (or any other handle), the
// result is the handle's type name, not the payload's. Use the handle's
// TypeName method for the payload.
func TypeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
