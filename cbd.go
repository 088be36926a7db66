// cbd.go - Centered binomial distribution sampling.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem1024

// loadLittleEndian32 loads the first 4 bytes of x as a little-endian
// 32-bit unsigned integer.
func loadLittleEndian32(x []byte) uint32 {
	return uint32(x[0]) | uint32(x[1])<<8 | uint32(x[2])<<16 | uint32(x[3])<<24
}

// cbd2 samples a polynomial with coefficients distributed according to a
// centered binomial distribution with eta=2, given 2*n/4 = 128 uniformly
// random bytes. This is the only eta this parameter set uses: ETA1 = ETA2
// = 2 at the "1024" module rank.
func cbd2(buf []byte) poly {
	var p poly
	for i := 0; i < n/8; i++ {
		t := loadLittleEndian32(buf[4*i:])
		d := t & 0x55555555
		d += (t >> 1) & 0x55555555

		for j := 0; j < 8; j++ {
			a := int16((d >> uint(4*j+0)) & 0x3)
			b := int16((d >> uint(4*j+2)) & 0x3)
			p[8*i+j] = a - b
		}
	}
	return p
}
