package signals

import "github.com/delaneyj/slotparty/intrusive"

// Slot is a callback subscribed to a Signal.
type Slot[T any] func(T)

// Connection is the handle of one subscription. It is obtained from
// Signal.Connect and unsubscribes when Disconnect is called, when the
// subscription is moved out of it with Take, or when its Signal is closed.
//
// The zero Connection is empty and not connected. It can later receive a
// subscription with Take, which makes it usable as a struct field:
//
//	type widget struct {
//		clicked signals.Connection[Point]
//	}
//
//	w.clicked.Take(button.Clicked.Connect(w.onClick))
//	defer w.clicked.Disconnect()
//
// A Connection's address is its identity in the subscriber list, so it must
// not be copied.
type Connection[T any] struct {
	_ noCopy

	link   intrusive.Hook[*Connection[T]]
	signal *Signal[T]
	slot   Slot[T]
	once   bool
}

// Connected reports whether c is subscribed to a signal.
func (c *Connection[T]) Connected() bool {
	return c.signal != nil
}

// Disconnect unsubscribes c. Emissions in progress will not invoke its slot
// anymore, including the one currently calling it. Disconnecting an empty
// Connection is a no-op.
func (c *Connection[T]) Disconnect() {
	s := c.signal
	if s == nil {
		return
	}
	next := c.link.Next()
	for i := range s.iters {
		if s.iters[i].cursor == &c.link {
			s.iters[i].cursor = next
		}
	}
	c.link.Unlink()
	c.slot = nil
	c.once = false
	c.signal = nil
}

// Take moves the subscription held by other into c. Any subscription c held
// before is disconnected first. c takes over the exact list position of
// other, so dispatch order is unchanged and emissions in progress invoke the
// slot at most once. other is left empty.
func (c *Connection[T]) Take(other *Connection[T]) {
	if c == other {
		return
	}
	c.Disconnect()
	s := other.signal
	if s == nil {
		return
	}

	s.slots.InsertBefore(&other.link, &c.link, c)
	other.link.Unlink()
	for i := range s.iters {
		if s.iters[i].cursor == &other.link {
			s.iters[i].cursor = &c.link
		}
	}

	c.signal, other.signal = s, nil
	c.slot, other.slot = other.slot, nil
	c.once, other.once = other.once, false
}

// Move returns a new Connection holding c's subscription, leaving c empty.
func (c *Connection[T]) Move() *Connection[T] {
	moved := new(Connection[T])
	moved.Take(c)
	return moved
}

// noCopy may be embedded into structs which must not be copied after first
// use. It is picked up by the copylocks checker of go vet.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
