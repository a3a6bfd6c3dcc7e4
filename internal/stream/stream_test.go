package stream_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yeint-herp/yecc/internal/stream"
)

func TestPeekNextBasic(t *testing.T) {
	s := stream.OpenBytes("t.c", []byte("ab\nc"))
	require.Equal(t, int('a'), s.Peek())
	require.Equal(t, int('a'), s.Next())
	require.Equal(t, 1, s.Position().Line)
	require.Equal(t, 2, s.Position().Col)
	require.Equal(t, int('b'), s.Next())
	require.Equal(t, int('\n'), s.Next())
	require.Equal(t, 2, s.Position().Line)
	require.Equal(t, 1, s.Position().Col)
	require.Equal(t, int('c'), s.Next())
	require.Equal(t, stream.EOF, s.Next())
	require.True(t, s.EOFAt())
}

func TestUngetRestoresLineCol(t *testing.T) {
	s := stream.OpenBytes("t.c", []byte("a\nb"))
	s.Next() // 'a' -> line1 col2
	s.Next() // '\n' -> line2 col1
	posBefore := s.Position()
	s.Next() // 'b' -> line2 col2
	require.True(t, s.Unget())
	require.Equal(t, posBefore, s.Position())
}

func TestUngetFailsAtOrigin(t *testing.T) {
	s := stream.OpenBytes("t.c", []byte("a"))
	require.False(t, s.Unget())
}

func TestSeekMatchesSequentialLineColumn(t *testing.T) {
	content := []byte("aa\nbb\ncc\ndd")
	s1 := stream.OpenBytes("t.c", content)
	var target int
	for i := 0; i < 7; i++ {
		s1.Next()
	}
	target = int(s1.Position().Offset)
	want := s1.Position()

	s2 := stream.OpenBytes("t.c", content)
	require.True(t, s2.Seek(int64(target)))
	require.Equal(t, want, s2.Position())
}

func TestBlobWindow(t *testing.T) {
	s := stream.OpenBytes("t.c", []byte("abcde"))
	s.Next()
	s.Next() // positioned at 'c', offset 2
	blob := s.Blob()
	require.Equal(t, [5]byte{'a', 'b', 'c', 'd', 'e'}, blob)
	// Blob must not move the position.
	require.Equal(t, 2, s.Position().Offset)
}

func TestBlobZeroPadsAtBoundaries(t *testing.T) {
	s := stream.OpenBytes("t.c", []byte("ab"))
	blob := s.Blob()
	require.Equal(t, [5]byte{0, 0, 'a', 'b', 0}, blob)
}

func TestCrossesBufferBoundary(t *testing.T) {
	big := make([]byte, 10000)
	for i := range big {
		big[i] = byte('a' + i%26)
	}
	s := stream.OpenBytes("t.c", big)
	var last int
	for i := 0; i < 9999; i++ {
		last = s.Next()
	}
	require.Equal(t, int(big[9998]), last)
	require.Equal(t, int(big[9999]), s.Peek())
}
