package intern_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yeint-herp/yecc/internal/intern"
)

func TestInternDeterminism(t *testing.T) {
	in := intern.New()
	a := in.Intern("foobar_baz")
	b := in.Intern("foobar_baz")
	require.Equal(t, a, b, "interning the same content twice must return the same reference")
	require.Equal(t, "foobar_baz", in.Lookup(a))
}

func TestInternDistinctContent(t *testing.T) {
	in := intern.New()
	a := in.Intern("foo")
	b := in.Intern("bar")
	require.NotEqual(t, a, b)
}

func TestInternBytesCopiesInput(t *testing.T) {
	in := intern.New()
	buf := []byte("mutable")
	ref := in.InternBytes(buf)
	copy(buf, "XXXXXXX")
	require.Equal(t, "mutable", in.Lookup(ref), "interned content must not alias caller's buffer")
}

func TestInternStable(t *testing.T) {
	in := intern.New()
	refs := make([]intern.Ref, 0, 100)
	for i := 0; i < 100; i++ {
		refs = append(refs, in.Intern("x"))
	}
	for _, r := range refs {
		require.Equal(t, refs[0], r)
	}
	require.Equal(t, 1, in.Len())
}
