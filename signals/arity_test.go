package signals_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/slotparty/signals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal0(t *testing.T) {
	var s signals.Signal0
	var calls []string

	a := s.Connect(func() { calls = append(calls, "A") })
	s.ConnectOnce(func() { calls = append(calls, "once") })
	assert.Equal(t, 2, s.Len())

	s.Emit()
	s.Emit()
	assert.Equal(t, []string{"once", "A", "A"}, calls)

	a.Disconnect()
	assert.True(t, s.Empty())
}

func TestSignal2(t *testing.T) {
	var s signals.Signal2[string, int]
	var got []string

	s.Connect(func(name string, n int) { got = append(got, fmt.Sprintf("first %s=%d", name, n)) })
	s.Connect(func(name string, n int) { got = append(got, fmt.Sprintf("second %s=%d", name, n)) })

	s.Emit("x", 1)
	assert.Equal(t, []string{"second x=1", "first x=1"}, got)

	s.Close()
	assert.True(t, s.Empty())
}

func TestSignal3HeldConnection(t *testing.T) {
	type listener struct {
		conn signals.Connection[signals.Args3[int, int, int]]
		sum  int
	}

	var s signals.Signal3[int, int, int]
	l := &listener{}
	l.conn.Take(s.Connect(func(a, b, c int) { l.sum += a + b + c }))

	s.Emit(1, 2, 3)
	assert.Equal(t, 6, l.sum)

	l.conn.Disconnect()
	s.Emit(1, 2, 3)
	assert.Equal(t, 6, l.sum)
}

func TestSignal4TryEmit(t *testing.T) {
	var s signals.Signal4[int, int, int, int]
	s.Connect(func(a, b, c, d int) {
		if a+b+c+d > 10 {
			panic("too big")
		}
	})

	assert.NoError(t, s.TryEmit(1, 2, 3, 4))
	err := s.TryEmit(5, 5, 5, 5)
	require.Error(t, err)
	assert.EqualError(t, err, "slot panicked: too big")
}
