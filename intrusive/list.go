// Package intrusive implements a doubly linked list whose link fields are
// embedded in the elements themselves, so linking an element never allocates.
//
// An element embeds a Hook and hands it to the List together with the value
// the hook belongs to:
//
//	type item struct {
//		link intrusive.Hook[*item]
//		name string
//	}
//
//	var l intrusive.List[*item]
//	it := &item{name: "a"}
//	l.PushFront(&it.link, it)
//
// Positions in the list are *Hook values. A position stays valid across
// unrelated inserts and unlinks; a position whose hook has been unlinked must
// not be advanced.
package intrusive

import "iter"

// Hook holds the link fields of one element. The zero Hook is unlinked.
type Hook[E any] struct {
	prev, next *Hook[E]
	owner      E
}

// Linked reports whether the hook is currently part of a list.
func (h *Hook[E]) Linked() bool {
	return h.next != nil
}

// Value returns the element the hook was linked with.
func (h *Hook[E]) Value() E {
	return h.owner
}

// Next returns the position after h. For the last element this is the End of
// its list.
func (h *Hook[E]) Next() *Hook[E] {
	return h.next
}

// Unlink removes the hook from whatever list it is in. Unlinking an unlinked
// hook is a no-op.
func (h *Hook[E]) Unlink() {
	if h.next == nil {
		return
	}
	h.prev.next = h.next
	h.next.prev = h.prev
	h.prev = nil
	h.next = nil
	var zero E
	h.owner = zero
}

// List is a circular list rooted at a sentinel hook. The zero List is empty
// and ready to use. A List must not be copied after first use.
type List[E any] struct {
	root Hook[E]
}

func (l *List[E]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

// Front returns the first position, or End if the list is empty.
func (l *List[E]) Front() *Hook[E] {
	l.lazyInit()
	return l.root.next
}

// End returns the past-the-end position.
func (l *List[E]) End() *Hook[E] {
	l.lazyInit()
	return &l.root
}

// Empty reports whether the list has no elements.
func (l *List[E]) Empty() bool {
	return l.root.next == nil || l.root.next == &l.root
}

// Len walks the list and counts its elements.
func (l *List[E]) Len() int {
	n := 0
	for h := l.Front(); h != &l.root; h = h.next {
		n++
	}
	return n
}

// PushFront links h as the new head of the list.
func (l *List[E]) PushFront(h *Hook[E], owner E) {
	l.lazyInit()
	insert(h, l.root.next, owner)
}

// InsertBefore links h right before the position at, which must be a linked
// position of l or its End.
func (l *List[E]) InsertBefore(at, h *Hook[E], owner E) {
	l.lazyInit()
	if !at.Linked() {
		panic("intrusive: insert before an unlinked position")
	}
	insert(h, at, owner)
}

func insert[E any](h, at *Hook[E], owner E) {
	if h.Linked() {
		panic("intrusive: hook is already linked")
	}
	h.owner = owner
	h.prev = at.prev
	h.next = at
	at.prev.next = h
	at.prev = h
}

// All yields the elements front to back. The element being yielded may be
// unlinked by the loop body.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		end := l.End()
		for h := l.Front(); h != end; {
			next := h.next
			if !yield(h.owner) {
				return
			}
			h = next
		}
	}
}
