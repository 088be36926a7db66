// constanttime.go - Constant-time comparison and conditional move.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem1024

import "crypto/subtle"

// ctVerify returns 0 if a and b are equal, 1 otherwise, in time independent
// of the position or number of differing bytes.
//
// a and b must have equal length; callers only ever invoke this with two
// fixed-size ciphertext buffers; mismatched lengths are a programmer error.
func ctVerify(a, b []byte) byte {
	return byte(1 - subtle.ConstantTimeCompare(a, b))
}

// ctMove copies src into dst iff cond != 0, and leaves dst unchanged
// otherwise, without branching on cond. cond need not be 0 or 1; any
// nonzero byte counts as true. subtle.ConstantTimeCopy requires its
// selector to be exactly 0 or 1, so cond is canonicalized first.
func ctMove(dst, src []byte, cond byte) {
	nz := byte((uint32(cond) | -uint32(cond)) >> 31) // 0 or 1
	subtle.ConstantTimeCopy(int(nz), dst, src)
}
