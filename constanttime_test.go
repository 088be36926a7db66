// constanttime_test.go - tests for ctVerify/ctMove.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem1024

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCtVerify(t *testing.T) {
	require := require.New(t)

	a := []byte{1, 2, 3, 4}
	b := []byte{1, 2, 3, 4}
	require.EqualValues(0, ctVerify(a, b))

	for i := range a {
		c := append([]byte(nil), a...)
		c[i] ^= 0xff
		require.EqualValues(1, ctVerify(a, c), "differing byte at %d", i)
	}
}

func TestCtMove(t *testing.T) {
	require := require.New(t)

	src := []byte{0xaa, 0xbb, 0xcc, 0xdd}

	dst := []byte{1, 2, 3, 4}
	ctMove(dst, src, 0)
	require.Equal([]byte{1, 2, 3, 4}, dst, "cond=0 must not move")

	dst = []byte{1, 2, 3, 4}
	ctMove(dst, src, 1)
	require.Equal(src, dst, "cond=1 must move")

	// Any nonzero byte counts as true, not just 1.
	for _, cond := range []byte{2, 0x80, 0xff} {
		dst = []byte{1, 2, 3, 4}
		ctMove(dst, src, cond)
		require.Equal(src, dst, "cond=%#x must move", cond)
	}
}
