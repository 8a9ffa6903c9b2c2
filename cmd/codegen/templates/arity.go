package templates

import (
	"io"
	"strconv"

	"github.com/valyala/quicktemplate"
)

// arity describes the wrapper of Signal for slots taking n arguments.
type arity struct {
	n        int
	typ      string // Signal2[T0, T1]
	args     string // Args2[T0, T1]
	slot     string // func(T0, T1)
	param    string // a Args2[T0, T1]
	call     string // slot(a.V0, a.V1)
	params   string // v0 T0, v1 T1
	argValue string // Args2[T0, T1]{V0: v0, V1: v1}
}

func newArity(n int) arity {
	if n == 0 {
		return arity{
			typ:      "Signal0",
			args:     "struct{}",
			slot:     "func()",
			param:    "struct{}",
			call:     "slot()",
			argValue: "struct{}{}",
		}
	}
	num := strconv.Itoa(n)
	typeParams := "[" + prefixedStrings("T", n) + "]"
	args := "Args" + num + typeParams
	return arity{
		n:        n,
		typ:      "Signal" + num + typeParams,
		args:     args,
		slot:     "func(" + prefixedStrings("T", n) + ")",
		param:    "a " + args,
		call:     "slot(" + prefixedStrings("a.V", n) + ")",
		params:   pairedStrings("v", " T", n),
		argValue: args + "{" + pairedStrings("V", ": v", n) + "}",
	}
}

// StreamArity writes Signal0 and Signal2 up to Signal<count> to qw.
func StreamArity(qw *quicktemplate.Writer, count int) {
	w := qw.N()
	w.S("// Code generated by cmd/codegen. DO NOT EDIT.\n\npackage signals\n")

	streamWrapper(w, newArity(0))
	for n := 2; n <= count; n++ {
		streamWrapper(w, newArity(n))
	}
}

// WriteArity writes Signal0 and Signal2 up to Signal<count> to w.
func WriteArity(w io.Writer, count int) {
	qw := quicktemplate.AcquireWriter(w)
	StreamArity(qw, count)
	quicktemplate.ReleaseWriter(qw)
}

// ArityGen returns the source of Signal0 and Signal2 up to Signal<count>.
func ArityGen(count int) string {
	bb := quicktemplate.AcquireByteBuffer()
	WriteArity(bb, count)
	s := string(bb.B)
	quicktemplate.ReleaseByteBuffer(bb)
	return s
}

func streamWrapper(w *quicktemplate.QWriter, a arity) {
	name := a.typ
	if a.n > 0 {
		name = "Signal" + strconv.Itoa(a.n)

		w.S("\n// Args")
		w.D(a.n)
		w.S(" holds the arguments of a ")
		w.S(name)
		w.S(" emission.\ntype ")
		w.S("Args")
		w.D(a.n)
		w.S("[")
		w.S(prefixedStrings("T", a.n))
		w.S(" any] struct {\n")
		for i := 0; i < a.n; i++ {
			w.S("\tV")
			w.D(i)
			w.S(" T")
			w.D(i)
			w.S("\n")
		}
		w.S("}\n")
	}

	w.S("\n// ")
	w.S(name)
	w.S(" is a Signal whose slots take ")
	if a.n == 0 {
		w.S("no arguments")
	} else {
		w.D(a.n)
		w.S(" arguments")
	}
	w.S(".\ntype ")
	w.S(name)
	if a.n > 0 {
		w.S("[")
		w.S(prefixedStrings("T", a.n))
		w.S(" any]")
	}
	w.S(" struct {\n\tsig Signal[")
	w.S(a.args)
	w.S("]\n}\n")

	streamConnect(w, a, "Connect", "Connect subscribes slot to s.")
	streamConnect(w, a, "ConnectOnce", "ConnectOnce subscribes slot to s for a single invocation.")

	w.S("\n// Emit invokes every connected slot.\nfunc (s *")
	w.S(a.typ)
	w.S(") Emit(")
	w.S(a.params)
	w.S(") {\n\ts.sig.Emit(")
	w.S(a.argValue)
	w.S(")\n}\n")

	w.S("\n// TryEmit is Emit, reporting a panicking slot as a *SlotPanicError.\nfunc (s *")
	w.S(a.typ)
	w.S(") TryEmit(")
	w.S(a.params)
	w.S(") error {\n\treturn s.sig.TryEmit(")
	w.S(a.argValue)
	w.S(")\n}\n")

	w.S("\n// Close disconnects every slot and stops emissions in progress.\nfunc (s *")
	w.S(a.typ)
	w.S(") Close() {\n\ts.sig.Close()\n}\n")

	w.S("\n// Len returns the number of connected slots.\nfunc (s *")
	w.S(a.typ)
	w.S(") Len() int {\n\treturn s.sig.Len()\n}\n")

	w.S("\n// Empty reports whether no slot is connected.\nfunc (s *")
	w.S(a.typ)
	w.S(") Empty() bool {\n\treturn s.sig.Empty()\n}\n")
}

func streamConnect(w *quicktemplate.QWriter, a arity, method, doc string) {
	w.S("\n// ")
	w.S(doc)
	w.S("\nfunc (s *")
	w.S(a.typ)
	w.S(") ")
	w.S(method)
	w.S("(slot ")
	w.S(a.slot)
	w.S(") *Connection[")
	w.S(a.args)
	w.S("] {\n\tif slot == nil {\n\t\tpanic(nilSlot)\n\t}\n\treturn s.sig.")
	w.S(method)
	w.S("(func(")
	w.S(a.param)
	w.S(") { ")
	w.S(a.call)
	w.S(" })\n}\n")
}
