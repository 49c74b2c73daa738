package anyval

import "reflect"

// released is what a box reports for its type name and contents after a
// successful Downcast has moved the payload out.
const released = "<released>"

// box is the common core of every owning handle. p holds a *T pointing at
// the box's own copy of the payload; it is nil once the box is released.
type box struct {
	p any
}

func (b *box) payload() any { return b.p }
func (b *box) release()     { b.p = nil }

// Released reports whether a Downcast has already moved the payload out.
func (b *box) Released() bool { return b.p == nil }

// Type returns the payload's concrete type descriptor, or nil once the box
// is released.
func (b *box) Type() reflect.Type {
	if b.p == nil {
		return nil
	}
	return reflect.TypeOf(b.p).Elem()
}

// TypeName returns a human-readable name for the payload's concrete type.
// A released box reports "<released>".
func (b *box) TypeName() string {
	t := b.Type()
	if t == nil {
		return released
	}
	return t.String()
}

// String renders the payload's current contents at call time. A released
// box reports "<released>".
func (b *box) String() string {
	return render(b.p, released)
}

// Box owns a value of unknown concrete type. The payload lives for as long
// as the box does, or until Downcast moves it out. Like Value, a Box
// carries no thread-safety guarantee of its own.
type Box struct {
	box
}

// NewBox moves v into a new owning handle.
func NewBox[T any](v T) *Box {
	return &Box{box{&v}}
}

// View returns a borrowed view of the box's payload. The view dereferences
// into the payload, so its TypeName is the payload's, not the box's.
func (b *Box) View() Value {
	return Value{value{b.p}}
}

// TransferableBox owns a value whose type is marked safe to move across
// goroutines, so the box itself may be handed to another goroutine and
// used there exclusively.
type TransferableBox struct {
	box
}

// NewTransferableBox moves a Transferable value into a new owning handle.
func NewTransferableBox[T Transferable](v T) *TransferableBox {
	return &TransferableBox{box{&v}}
}

// View returns a borrowed view of the box's payload.
func (b *TransferableBox) View() TransferableValue {
	return TransferableValue{value{b.p}}
}

// ShareableBox owns a value whose type is marked safe for concurrent reads,
// so views of the box may be read from several goroutines at once.
type ShareableBox struct {
	box
}

// NewShareableBox moves a value implementing both Transferable and
// Shareable into a new owning handle.
func NewShareableBox[T transferableShareable](v T) *ShareableBox {
	return &ShareableBox{box{&v}}
}

// View returns a borrowed view of the box's payload.
func (b *ShareableBox) View() ShareableValue {
	return ShareableValue{value{b.p}}
}
