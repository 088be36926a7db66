// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem1024

// zetas holds zeta^BitRev7(i) in Montgomery form, centered in (-q/2, q/2],
// for the primitive 256th root of unity zeta = 17 mod q. Index 0 is unused
// by ntt/invntt (the loops below start their shared counter at 1) but kept
// to match the reference table layout.
var zetas = [128]int16{
	-1044, -758, -359, -1517, 1493, 1422, 287, 202,
	-171, 622, 1577, 182, 962, -1202, -1474, 1468,
	573, -1325, 264, 383, -829, 1458, -1602, -130,
	-681, 1017, 732, 608, -1542, 411, -205, -1571,
	1223, 652, -552, 1015, -1293, 1491, -282, -1544,
	516, -8, -320, -666, -1618, -1162, 126, 1469,
	-853, -90, -271, 830, 107, -1421, -247, -951,
	-398, 961, -1508, -725, 448, -1065, 677, -1275,
	-1103, 430, 555, 843, -1251, 871, 1550, 105,
	422, 587, 177, -235, -291, -460, 1574, 1653,
	-246, 778, 1159, -147, -777, 1483, -602, 1119,
	-1590, 644, -872, 349, 418, 329, -156, -75,
	817, 1097, 603, 610, 1322, -1285, -1465, 384,
	-1215, -136, 1218, -1335, -874, 220, -1187, -1659,
	-1185, -1530, -1278, 794, -1510, -854, -870, 478,
	-108, -308, 996, 991, 958, -1460, 1522, 1628,
}

// fqmul returns the Montgomery product of a and b mod q.
func fqmul(a, b int16) int16 {
	return montgomeryReduce(int32(a) * int32(b))
}

// ntt computes the negacyclic number-theoretic transform of p in place, in
// the Cooley-Tukey (decimation-in-time) direction: input in normal order,
// output in bit-reversed order. Coefficients are not normalized below q
// afterwards; callers that need a canonical range call reduce.
func (p *poly) ntt() {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := fqmul(zeta, p[j+length])
				p[j+length] = p[j] - t
				p[j] = p[j] + t
			}
		}
	}
}

// invnttToMont computes the inverse negacyclic NTT of p in place, in the
// Gentleman-Sande (decimation-in-frequency) direction: input in
// bit-reversed order, output in normal order and in Montgomery form (an
// extra factor of R is folded in via the final constant multiplication, so
// round-tripping through ntt requires one toMont correction at the call
// site, per the documented domain discipline).
func (p *poly) invnttToMont() {
	const f = 1441 // mont^2 / 128 mod q, in Montgomery domain

	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := p[j]
				p[j] = barrettReduce(t + p[j+length])
				p[j+length] = p[j+length] - t
				p[j+length] = fqmul(zeta, p[j+length])
			}
		}
	}

	for j := 0; j < n; j++ {
		p[j] = fqmul(p[j], f)
	}
}

// basemul multiplies two degree-1 polynomials a, b in
// F_q[X]/(X^2 - zeta) and writes the degree-1 product into r. zeta is
// given in Montgomery form; the product coefficients carry a factor of
// R^-1 from the Montgomery reductions.
func basemul(r, a, b *[2]int16, zeta int16) {
	r[0] = fqmul(a[1], b[1])
	r[0] = fqmul(r[0], zeta)
	r[0] += fqmul(a[0], b[0])
	r[1] = fqmul(a[0], b[1])
	r[1] += fqmul(a[1], b[0])
}

// baseMulMontgomery computes the pointwise product of a and b, two
// polynomials in NTT domain, treating each consecutive coefficient pair as
// an element of F_q[X]/(X^2 - gamma): within group i of four coefficients,
// gamma = zeta^BitRev7(64+i) for the first pair and -zeta^BitRev7(64+i)
// for the second. It writes the result, scaled by R^-1, into r.
func (p *poly) baseMulMontgomery(a, b *poly) {
	for i := 0; i < n/4; i++ {
		basemul(
			(*[2]int16)(p[4*i:4*i+2]),
			(*[2]int16)(a[4*i:4*i+2]),
			(*[2]int16)(b[4*i:4*i+2]),
			zetas[64+i],
		)
		basemul(
			(*[2]int16)(p[4*i+2:4*i+4]),
			(*[2]int16)(a[4*i+2:4*i+4]),
			(*[2]int16)(b[4*i+2:4*i+4]),
			-zetas[64+i],
		)
	}
}
