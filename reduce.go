// reduce.go - Montgomery and Barrett reduction.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem1024

const (
	mont = -1044 // 2^16 mod q, centered
	qinv = -3327 // q^-1 mod 2^16, centered

	// barrettV is floor((1<<26 + q/2) / q), used to avoid a division in
	// barrettReduce.
	barrettV = 20159
)

// montgomeryReduce computes t congruent to a * R^-1 (mod q), where
// R = 2^16, for a signed 32-bit input. The result satisfies |t| < q.
func montgomeryReduce(a int32) int16 {
	t := int16(int32(int16(a)) * qinv)
	return int16((a - int32(t)*q) >> 16)
}

// barrettReduce computes a representative of a mod q in (-q/2, q/2].
func barrettReduce(a int16) int16 {
	t := int16((int32(barrettV)*int32(a) + (1 << 25)) >> 26)
	t *= q
	return a - t
}

// toMont computes a * R mod q, taking a signed 16-bit input and returning a
// result bounded as per montgomeryReduce. R^2 mod q = 1353.
func toMont(a int16) int16 {
	const rSquared = 1353
	return montgomeryReduce(int32(a) * rSquared)
}
