package intrusive_test

import (
	"slices"
	"testing"

	"github.com/delaneyj/slotparty/intrusive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	link intrusive.Hook[*item]
	name string
}

func names(l *intrusive.List[*item]) []string {
	var out []string
	for it := range l.All() {
		out = append(out, it.name)
	}
	return out
}

func TestZeroList(t *testing.T) {
	var l intrusive.List[*item]
	assert.True(t, l.Empty())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, l.End(), l.Front())
	assert.Nil(t, names(&l))
}

func TestPushFront(t *testing.T) {
	var l intrusive.List[*item]
	a, b, c := &item{name: "a"}, &item{name: "b"}, &item{name: "c"}
	l.PushFront(&a.link, a)
	l.PushFront(&b.link, b)
	l.PushFront(&c.link, c)

	assert.Equal(t, []string{"c", "b", "a"}, names(&l))
	assert.Equal(t, 3, l.Len())
	assert.False(t, l.Empty())
	assert.True(t, a.link.Linked())
	assert.Same(t, c, l.Front().Value())
}

func TestInsertBefore(t *testing.T) {
	var l intrusive.List[*item]
	a, b := &item{name: "a"}, &item{name: "b"}
	l.PushFront(&a.link, a)
	l.PushFront(&b.link, b)

	x := &item{name: "x"}
	l.InsertBefore(&a.link, &x.link, x)
	assert.Equal(t, []string{"b", "x", "a"}, names(&l))

	y := &item{name: "y"}
	l.InsertBefore(l.End(), &y.link, y)
	assert.Equal(t, []string{"b", "x", "a", "y"}, names(&l))
}

func TestInsertBeforeUnlinkedPanics(t *testing.T) {
	var l intrusive.List[*item]
	a, b := &item{name: "a"}, &item{name: "b"}
	assert.Panics(t, func() {
		l.InsertBefore(&a.link, &b.link, b)
	})
}

func TestDoubleLinkPanics(t *testing.T) {
	var l intrusive.List[*item]
	a := &item{name: "a"}
	l.PushFront(&a.link, a)
	assert.Panics(t, func() {
		l.PushFront(&a.link, a)
	})
}

func TestUnlink(t *testing.T) {
	var l intrusive.List[*item]
	a, b, c := &item{name: "a"}, &item{name: "b"}, &item{name: "c"}
	for _, it := range []*item{a, b, c} {
		l.PushFront(&it.link, it)
	}

	b.link.Unlink()
	assert.False(t, b.link.Linked())
	assert.Nil(t, b.link.Value())
	assert.Equal(t, []string{"c", "a"}, names(&l))

	// idempotent
	b.link.Unlink()
	assert.Equal(t, []string{"c", "a"}, names(&l))

	c.link.Unlink()
	a.link.Unlink()
	assert.True(t, l.Empty())

	// relinking after removal is allowed
	l.PushFront(&b.link, b)
	assert.Equal(t, []string{"b"}, names(&l))
}

func TestPositionSurvivesUnrelatedChanges(t *testing.T) {
	var l intrusive.List[*item]
	a, b, c := &item{name: "a"}, &item{name: "b"}, &item{name: "c"}
	for _, it := range []*item{a, b, c} {
		l.PushFront(&it.link, it)
	}

	pos := l.Front().Next()
	require.Same(t, b, pos.Value())

	c.link.Unlink()
	d := &item{name: "d"}
	l.PushFront(&d.link, d)

	assert.Same(t, b, pos.Value())
	assert.Same(t, a, pos.Next().Value())
	assert.Equal(t, l.End(), pos.Next().Next())
}

func TestAllToleratesUnlinkOfYielded(t *testing.T) {
	var l intrusive.List[*item]
	all := make([]*item, 0, 5)
	for _, n := range []string{"a", "b", "c", "d", "e"} {
		it := &item{name: n}
		all = append(all, it)
		l.PushFront(&it.link, it)
	}

	var seen []string
	for it := range l.All() {
		seen = append(seen, it.name)
		it.link.Unlink()
	}
	slices.Reverse(seen)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, seen)
	assert.True(t, l.Empty())
	for _, it := range all {
		assert.False(t, it.link.Linked())
	}
}

func TestAllStopsEarly(t *testing.T) {
	var l intrusive.List[*item]
	for _, n := range []string{"a", "b", "c"} {
		it := &item{name: n}
		l.PushFront(&it.link, it)
	}
	count := 0
	for range l.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}
