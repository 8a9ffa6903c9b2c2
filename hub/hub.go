// Package hub keeps a registry of named signals sharing one value type, so
// that emitters and listeners only need to agree on a name.
//
//	events := hub.New[*Order](hub.WithLogger(logger))
//	conn := events.MustConnect("order.created", sendReceipt)
//	defer conn.Disconnect()
//
//	events.Emit("order.created", order)
//
// A Hub has the same threading rules as signals.Signal: it must only be used
// from one goroutine. WithGoroutineCheck turns misuse into a panic.
package hub

import (
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/slotparty/signals"
	"github.com/petermattis/goid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrEmptyName is returned when connecting to a signal without a name.
	ErrEmptyName = errors.New("signal name can't be empty")
	// ErrIDCollision is returned when two distinct names hash to the same id.
	ErrIDCollision = errors.New("signal id collision")
	// ErrWrongGoroutine is the panic value of a goroutine check failure.
	ErrWrongGoroutine = errors.New("hub used from a goroutine other than its owner")
)

// ID returns the id a name is registered under.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

type entry[T any] struct {
	name   string
	signal signals.Signal[T]
}

// Hub maps names to signals. The zero Hub is not usable; use New.
type Hub[T any] struct {
	*options

	owner   int64
	entries map[uint64]*entry[T]
}

// New returns an empty Hub owned by the calling goroutine.
func New[T any](opts ...Option) *Hub[T] {
	o := defaultOptions()
	o.apply(opts...)
	return &Hub[T]{
		options: o,
		owner:   goid.Get(),
		entries: make(map[uint64]*entry[T]),
	}
}

func (h *Hub[T]) checkGoroutine() {
	if !h.goroutineCheck {
		return
	}
	if id := goid.Get(); id != h.owner {
		panic(errors.Wrapf(ErrWrongGoroutine, "owner %d, caller %d", h.owner, id))
	}
}

func (h *Hub[T]) lookup(name string) (*entry[T], error) {
	id := ID(name)
	e, ok := h.entries[id]
	if !ok {
		return nil, nil
	}
	if e.name != name {
		return nil, errors.Wrapf(ErrIDCollision, "%q and %q share id %x", name, e.name, id)
	}
	return e, nil
}

// Connect subscribes slot to the signal called name, creating the signal if
// needed.
func (h *Hub[T]) Connect(name string, slot signals.Slot[T]) (*signals.Connection[T], error) {
	h.checkGoroutine()
	if name == "" {
		return nil, ErrEmptyName
	}
	e, err := h.lookup(name)
	if err != nil {
		return nil, err
	}
	if e == nil {
		e = &entry[T]{name: name}
		h.entries[ID(name)] = e
	}
	h.logger.Debug("connecting slot", zap.String("name", name), zap.Uint64("id", ID(name)))
	return e.signal.Connect(slot), nil
}

// MustConnect works like Connect, but panics if there's an error.
func (h *Hub[T]) MustConnect(name string, slot signals.Slot[T]) *signals.Connection[T] {
	c, err := h.Connect(name, slot)
	if err != nil {
		panic(err)
	}
	return c
}

// Emit emits v on the signal called name. Emitting a name nobody connected
// to does nothing.
func (h *Hub[T]) Emit(name string, v T) {
	h.checkGoroutine()
	e, err := h.lookup(name)
	if err != nil {
		h.logger.Warn("not emitting", zap.String("name", name), zap.Error(err))
		return
	}
	if e == nil {
		h.logger.Debug("no signal to emit", zap.String("name", name))
		return
	}
	h.logger.Debug("emitting signal", zap.String("name", name), zap.Uint64("id", ID(name)))
	e.signal.Emit(v)
}

// Close closes the signal called name and forgets it. Emissions of that
// signal in progress stop after their current slot.
func (h *Hub[T]) Close(name string) {
	h.checkGoroutine()
	e, err := h.lookup(name)
	if err != nil || e == nil {
		return
	}
	delete(h.entries, ID(name))
	e.signal.Close()
	h.logger.Debug("closed signal", zap.String("name", name))
}

// CloseAll closes every signal of h.
func (h *Hub[T]) CloseAll() {
	h.checkGoroutine()
	entries := h.entries
	h.entries = make(map[uint64]*entry[T])
	for _, e := range entries {
		e.signal.Close()
	}
	h.logger.Debug("closed all signals", zap.Int("count", len(entries)))
}

// Prune forgets the signals without connected slots and returns how many
// were removed.
func (h *Hub[T]) Prune() int {
	h.checkGoroutine()
	n := 0
	for id, e := range h.entries {
		if e.signal.Empty() {
			delete(h.entries, id)
			n++
		}
	}
	if n > 0 {
		h.logger.Debug("pruned signals", zap.Int("count", n))
	}
	return n
}

// Len returns the number of slots connected to the signal called name.
func (h *Hub[T]) Len(name string) int {
	h.checkGoroutine()
	e, err := h.lookup(name)
	if err != nil || e == nil {
		return 0
	}
	return e.signal.Len()
}

// Names returns the sorted names of the known signals.
func (h *Hub[T]) Names() []string {
	h.checkGoroutine()
	names := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		names = append(names, e.name)
	}
	slices.Sort(names)
	return names
}
