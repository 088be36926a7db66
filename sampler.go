// sampler.go - Rejection sampling of the uniform matrix A and CBD-sampled
// secret/error vectors.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem1024

// rejUniform parses buf three bytes at a time into two 12-bit candidates
// and accepts each independently iff it is strictly less than q, writing
// accepted values into r until len(r) coefficients are produced or buf is
// exhausted. It returns the number of coefficients written.
func rejUniform(r []int16, buf []byte) int {
	ctr, pos := 0, 0
	for ctr < len(r) && pos+3 <= len(buf) {
		val0 := uint16(buf[pos]) | (uint16(buf[pos+1]) << 8)
		val0 &= 0xfff
		val1 := uint16(buf[pos+1]) >> 4
		val1 |= uint16(buf[pos+2]) << 4
		val1 &= 0xfff
		pos += 3

		if val0 < q {
			r[ctr] = int16(val0)
			ctr++
		}
		if ctr < len(r) && val1 < q {
			r[ctr] = int16(val1)
			ctr++
		}
	}
	return ctr
}

// getNoiseEta samples a polynomial whose coefficients are close to a
// centered binomial distribution with the fixed eta=2 parameter of this
// module, deriving 64*eta pseudorandom bytes from PRF(seed || nonce).
func getNoiseEta(seed *[SymSize]byte, nonce byte) poly {
	buf := prf(seed, nonce, 64*eta1) // eta1 == eta2 == 2 at this parameter set
	return cbd2(buf)
}

// genMatrix deterministically derives the K*K uniform matrix A (or its
// transpose) from a 32-byte public seed, by rejection-sampling the output
// of one SHAKE-128 instance per matrix cell absorbing seed || j || i (or
// seed || i || j when transposed). Two callers with the same seed and flag
// always obtain byte-identical matrices, since the underlying XOF stream is
// consumed deterministically regardless of how many blocks are squeezed at
// a time.
func genMatrix(seed *[SymSize]byte, transposed bool) [k]polyVec {
	var a [k]polyVec

	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			var xof xofState
			if transposed {
				xof = xofAbsorb(seed[:], byte(i), byte(j))
			} else {
				xof = xofAbsorb(seed[:], byte(j), byte(i))
			}

			buf := xof.xofSqueezeBlocks(genMatrixNBlocks)
			ctr := rejUniform(a[i][j][:], buf)

			for ctr < n {
				// Carry over the buflen%3 leftover bytes that did not form
				// a complete 3-byte/2-coefficient triple, then top up one
				// block at a time. This is what makes the stream
				// consumption (and therefore the resulting matrix)
				// independent of the block-count chosen above.
				off := len(buf) % 3
				var carry [2]byte
				copy(carry[:off], buf[len(buf)-off:])
				next := xof.xofSqueezeBlocks(1)
				buf = append(carry[:off], next...)
				ctr += rejUniform(a[i][j][ctr:n], buf)
			}
		}
	}

	return a
}
