// ntt_test.go - NTT round-trip tests.
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

// randomPoly returns a poly with coefficients drawn uniformly from [0, q).
func randomPoly(t *testing.T) poly {
	t.Helper()
	var p poly
	var buf [2]byte
	for i := range p {
		for {
			_, err := rand.Read(buf[:])
			require.NoError(t, err)
			v := int16(buf[0]) | int16(buf[1])<<8
			v &= 0x1fff
			if v < q {
				p[i] = v
				break
			}
		}
	}
	return p
}

// TestNTTRoundTrip checks the documented domain invariant: applying the
// forward NTT followed by the inverse NTT recovers the original
// polynomial, up to the Montgomery factor folded into invnttToMont's
// output.
func TestNTTRoundTrip(t *testing.T) {
	require := require.New(t)

	for trial := 0; trial < 20; trial++ {
		p := randomPoly(t)

		want := p
		want.toMont()
		want.reduce()

		got := p
		got.ntt()
		got.invnttToMont()
		got.reduce()

		require.Equal(want, got, "trial %d", trial)
	}
}

func TestBaseMulMontgomeryAgreesWithSchoolbook(t *testing.T) {
	require := require.New(t)

	a := randomPoly(t)
	b := randomPoly(t)

	aNTT := a
	aNTT.ntt()
	bNTT := b
	bNTT.ntt()

	var prodNTT poly
	prodNTT.baseMulMontgomery(&aNTT, &bNTT)
	prodNTT.invnttToMont()
	prodNTT.reduce()

	want := schoolbookMulMod(a, b)
	want.reduce()

	require.Equal(want, prodNTT)
}

// schoolbookMulMod computes a*b mod (X^n+1) mod q the naive way, used only
// to cross-check the NTT-based multiplication in tests.
func schoolbookMulMod(a, b poly) poly {
	var wide [2 * n]int64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			wide[i+j] += int64(a[i]) * int64(b[j])
		}
	}
	var r poly
	for i := 0; i < n; i++ {
		v := wide[i] - wide[i+n] // X^n == -1
		r[i] = int16(((v % q) + q) % q)
	}
	return r
}
