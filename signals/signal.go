package signals

import "github.com/delaneyj/slotparty/intrusive"

const nilSlot = "signals: nil slot"

// Signal is a synchronous broadcast channel for values of type T. The zero
// Signal has no subscribers and is ready to use. A Signal must not be copied
// and must only be used from one goroutine at a time.
type Signal[T any] struct {
	_ noCopy

	slots intrusive.List[*Connection[T]]

	// iters is the stack of emissions in progress, innermost last. Emission
	// frames refer to their entry by index since nested emissions may grow
	// the slice.
	iters []iteration[T]
}

type iteration[T any] struct {
	cursor  *intrusive.Hook[*Connection[T]]
	aborted bool
}

// Connect subscribes slot to s. Slots are invoked most recently connected
// first. A slot connected while an emission is in progress is not invoked by
// that emission. Connect panics if slot is nil.
func (s *Signal[T]) Connect(slot Slot[T]) *Connection[T] {
	return s.connect(slot, false)
}

// ConnectOnce subscribes slot for a single invocation. The connection is
// disconnected right before slot runs, so nested emissions do not see it.
func (s *Signal[T]) ConnectOnce(slot Slot[T]) *Connection[T] {
	return s.connect(slot, true)
}

func (s *Signal[T]) connect(slot Slot[T], once bool) *Connection[T] {
	if slot == nil {
		panic(nilSlot)
	}
	c := &Connection[T]{
		signal: s,
		slot:   slot,
		once:   once,
	}
	s.slots.PushFront(&c.link, c)
	return c
}

// Emit invokes every connected slot with v, in order, before returning.
//
// Slots may connect, disconnect or move connections of s, emit s again or
// close it. A slot that panics stops the emission; the panic propagates to
// the caller and the remaining slots are not invoked.
func (s *Signal[T]) Emit(v T) {
	depth := len(s.iters)
	s.iters = append(s.iters, iteration[T]{cursor: s.slots.Front()})
	defer s.unwind(depth)

	end := s.slots.End()
	for {
		it := &s.iters[depth]
		if it.aborted || it.cursor == end {
			return
		}
		c := it.cursor.Value()
		it.cursor = it.cursor.Next()

		slot := c.slot
		if c.once {
			c.Disconnect()
		}
		slot(v)
	}
}

func (s *Signal[T]) unwind(depth int) {
	clear(s.iters[depth:])
	s.iters = s.iters[:depth]
}

// Close disconnects every slot. Emissions of s that are in progress stop as
// soon as the slot they are running returns. s can be reused afterwards.
func (s *Signal[T]) Close() {
	for i := range s.iters {
		s.iters[i].aborted = true
	}
	for c := range s.slots.All() {
		c.Disconnect()
	}
}

// Len returns the number of connected slots.
func (s *Signal[T]) Len() int {
	return s.slots.Len()
}

// Empty reports whether no slot is connected.
func (s *Signal[T]) Empty() bool {
	return s.slots.Empty()
}
