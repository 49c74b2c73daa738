package anyval

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every downcast operation behaves identically on all three facets; only
// the admissible payload types differ, and that is checked at compile time
// by the constructors' type constraints.
func TestFacetParityViews(t *testing.T) {
	m1 := message{n: 9}
	m2 := message{n: 9}
	m3 := message{n: 9}
	tests := []struct {
		name string
		h    Handle
	}{
		{"base", Of(&m1)},
		{"transferable", OfTransferable(&m2)},
		{"shareable", OfShareable(&m3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Is[message](tt.h))
			assert.False(t, Is[int](tt.h))

			got, ok := Ref[message](tt.h)
			assert.True(t, ok)
			assert.Equal(t, 9, got.n)

			_, ok = Ref[int](tt.h)
			assert.False(t, ok)

			mut, ok := Mut[message](tt.h)
			assert.True(t, ok)
			mut.n++
			assert.Contains(t, fmt.Sprint(tt.h), "10")
		})
	}
}

func TestFacetParityBoxes(t *testing.T) {
	tests := []struct {
		name string
		b    Boxed
	}{
		{"base", NewBox(message{n: 14})},
		{"transferable", NewTransferableBox(message{n: 14})},
		{"shareable", NewShareableBox(message{n: 14})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Downcast[int](tt.b)
			assert.ErrorIs(t, err, ErrTypeMismatch)
			assert.True(t, Is[message](tt.b), "box intact after mismatch")

			got, err := Downcast[message](tt.b)
			assert.NoError(t, err)
			assert.Equal(t, 14, got.n)
			assert.False(t, Is[message](tt.b), "box released after match")
		})
	}
}

func TestFacetParityTypeName(t *testing.T) {
	m := message{n: 1}
	handles := []interface{ TypeName() string }{
		Of(&m),
		OfTransferable(&m),
		OfShareable(&m),
		NewBox(m),
		NewTransferableBox(m),
		NewShareableBox(m),
	}

	for _, h := range handles {
		assert.Contains(t, h.TypeName(), "message")
	}
}

func TestTransferableBoxHandoff(t *testing.T) {
	ch := make(chan *TransferableBox, 1)
	ch <- NewTransferableBox(message{n: 14})

	done := make(chan struct{})
	go func() {
		defer close(done)
		b := <-ch
		got, err := Downcast[message](b)
		assert.NoError(t, err)
		assert.Equal(t, 14, got.n)
	}()
	<-done
}

func TestShareableConcurrentReads(t *testing.T) {
	m := message{n: 42}
	h := OfShareable(&m)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, ok := Ref[message](h)
			assert.True(t, ok)
			assert.Equal(t, 42, got.n)
			assert.Contains(t, h.String(), "42")
		}()
	}
	wg.Wait()
}
