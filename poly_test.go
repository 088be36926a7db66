// poly_test.go - polynomial serialization and compression tests.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem1024

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolyBytesRoundTrip(t *testing.T) {
	require := require.New(t)

	p := randomPoly(t)
	// toBytes implicitly reduces to [0, q); canonicalize before comparing.
	for i := range p {
		p[i] = int16(freeze(p[i]))
	}

	b := p.toBytes()
	got := polyFromBytes(b[:])
	require.Equal(p, got)
}

// TestPolyCompressBoundedError checks the rounding-error bound each
// compression width guarantees: |decompress(compress(x)) - x| <=
// floor(q/2^(d+1)) + 1 (mod q, on the circle), per the compression
// scheme's definition.
func TestPolyCompressBoundedError(t *testing.T) {
	require := require.New(t)

	for _, d := range []int{dv, du} {
		bound := int32(q)>>uint(d+1) + 1
		for x := 0; x < q; x += 7 {
			c := compressCoeff(uint16(x), d)
			y := decompressCoeff(c, d)

			diff := int32(x) - int32(y)
			if diff < 0 {
				diff = -diff
			}
			// Account for wraparound distance on the Z_q circle.
			wrap := int32(q) - diff
			if wrap < diff {
				diff = wrap
			}
			require.LessOrEqualf(diff, bound, "d=%d x=%d y=%d", d, x, y)
		}
	}
}

func TestPolyMsgRoundTrip(t *testing.T) {
	require := require.New(t)

	for trial := 0; trial < 50; trial++ {
		var msg [SymSize]byte
		_, err := rand.Read(msg[:])
		require.NoError(err)

		p := fromMsg(&msg)
		got := p.toMsg()
		require.Equal(msg, got)
	}
}

func TestPolyCompressDecompressRoundTripApprox(t *testing.T) {
	require := require.New(t)

	p := randomPoly(t)
	c := p.compress()
	d := polyDecompress(c[:])

	// Decompression is lossy; re-compressing the lossy result must be
	// idempotent (a fixed point), which is the guarantee compress/decompress
	// pairs are actually required to uphold.
	c2 := d.compress()
	require.Equal(c, c2)
}

func TestPackUnpackCompressedRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, d := range []int{1, 4, 5, 11, 12} {
		coeffs := make([]uint16, n)
		for i := range coeffs {
			coeffs[i] = uint16(i) & ((1 << uint(d)) - 1)
		}
		buf := make([]byte, (n*d+7)/8)
		packCompressed(buf, coeffs, d)

		got := make([]uint16, n)
		unpackCompressed(got, buf, d)
		require.Equal(coeffs, got, "d=%d", d)
	}
}
