package signals

import mapset "github.com/deckarep/golang-set/v2"

// Disconnecter is implemented by every Connection, whatever its argument type.
type Disconnecter interface {
	Disconnect()
}

// Group collects connections, possibly to signals of different types, so they
// can be disconnected together, typically from a deferred call or when the
// owner of the slots goes away. The zero Group is ready to use. Like a
// Signal, a Group is not safe for concurrent use.
type Group struct {
	conns mapset.Set[Disconnecter]
}

// Add adds connections to g. Adding a connection twice has no effect.
func (g *Group) Add(conns ...Disconnecter) {
	if g.conns == nil {
		g.conns = mapset.NewThreadUnsafeSet[Disconnecter]()
	}
	for _, c := range conns {
		g.conns.Add(c)
	}
}

// Len returns the number of connections held by g.
func (g *Group) Len() int {
	if g.conns == nil {
		return 0
	}
	return g.conns.Cardinality()
}

// Disconnect disconnects every connection of g and empties it.
func (g *Group) Disconnect() {
	if g.conns == nil {
		return
	}
	conns := g.conns.ToSlice()
	g.conns.Clear()
	for _, c := range conns {
		c.Disconnect()
	}
}
