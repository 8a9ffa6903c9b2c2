package signals

import (
	"fmt"

	"github.com/pkg/errors"
)

// SlotPanicError is returned by TryEmit when a slot panics.
type SlotPanicError struct {
	// Value is the value the slot panicked with.
	Value any
	err   error
}

func (e *SlotPanicError) Error() string {
	return e.err.Error()
}

func (e *SlotPanicError) Unwrap() error {
	return e.err
}

// Format prints the stack of the panicking slot with %+v.
func (e *SlotPanicError) Format(s fmt.State, verb rune) {
	if f, ok := e.err.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, e.err.Error())
}

func newSlotPanicError(v any) *SlotPanicError {
	var err error
	if cause, ok := v.(error); ok {
		err = errors.Wrap(cause, "slot panicked")
	} else {
		err = errors.Errorf("slot panicked: %v", v)
	}
	return &SlotPanicError{Value: v, err: err}
}

// TryEmit is Emit, except that a panicking slot is reported as a
// *SlotPanicError instead of unwinding the caller. Slots after the panicking
// one are not invoked.
func (s *Signal[T]) TryEmit(v T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newSlotPanicError(r)
		}
	}()
	s.Emit(v)
	return nil
}
