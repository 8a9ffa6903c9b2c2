package templates

import (
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	assert.Equal(t, "T0, T1, T2", prefixedStrings("T", 3))
	assert.Equal(t, "", prefixedStrings("T", 0))
	assert.Equal(t, "v0 T0, v1 T1", pairedStrings("v", " T", 2))
}

func TestNewArity(t *testing.T) {
	a := newArity(3)
	assert.Equal(t, "Signal3[T0, T1, T2]", a.typ)
	assert.Equal(t, "Args3[T0, T1, T2]", a.args)
	assert.Equal(t, "func(T0, T1, T2)", a.slot)
	assert.Equal(t, "slot(a.V0, a.V1, a.V2)", a.call)
	assert.Equal(t, "Args3[T0, T1, T2]{V0: v0, V1: v1, V2: v2}", a.argValue)

	zero := newArity(0)
	assert.Equal(t, "Signal0", zero.typ)
	assert.Equal(t, "", zero.params)
}

func TestArityGenParses(t *testing.T) {
	src := ArityGen(5)

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "arity_gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "signals", f.Name.Name)

	var types []string
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gen.Specs {
			types = append(types, spec.(*ast.TypeSpec).Name.Name)
		}
	}
	assert.Equal(t, []string{
		"Signal0",
		"Args2", "Signal2",
		"Args3", "Signal3",
		"Args4", "Signal4",
		"Args5", "Signal5",
	}, types)
}

func TestArityGenUpToDate(t *testing.T) {
	want, err := os.ReadFile("../../../signals/arity_gen.go")
	require.NoError(t, err)

	got, err := format.Source([]byte(ArityGen(4)))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "run cmd/codegen to regenerate signals/arity_gen.go")
}
