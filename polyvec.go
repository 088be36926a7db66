// polyvec.go - Vector of k=4 ML-KEM-1024 polynomials.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem1024

// polyVec is a vector of k module-rank polynomials, sharing domain
// semantics (normal or NTT) across all k entries.
type polyVec [k]poly

// toBytes serializes v, one poly.toBytes block per entry.
func (v *polyVec) toBytes() [polyVecBytes]byte {
	var r [polyVecBytes]byte
	for i := range v {
		b := v[i].toBytes()
		copy(r[i*polyBytes:], b[:])
	}
	return r
}

// polyVecFromBytes deserializes a packed polyVec; the inverse of toBytes.
func polyVecFromBytes(a []byte) polyVec {
	var v polyVec
	for i := range v {
		v[i] = polyFromBytes(a[i*polyBytes:])
	}
	return v
}

// compress rounds and serializes v to du=11 bits per coefficient, per
// polynomial.
func (v *polyVec) compress() [polyVecCompressedBytes]byte {
	var r [polyVecCompressedBytes]byte
	const perPoly = polyVecCompressedBytes / k
	for i := range v {
		var coeffs [n]uint16
		for j, c := range v[i] {
			coeffs[j] = compressCoeff(freeze(c), du)
		}
		packCompressed(r[i*perPoly:], coeffs[:], du)
	}
	return r
}

// polyVecDecompress deserializes and decompresses a du=11-bit-packed
// polyVec; an approximate inverse of polyVec.compress.
func polyVecDecompress(a []byte) polyVec {
	var v polyVec
	const perPoly = polyVecCompressedBytes / k
	for i := range v {
		var coeffs [n]uint16
		unpackCompressed(coeffs[:], a[i*perPoly:], du)
		for j, c := range coeffs {
			v[i][j] = decompressCoeff(c, du)
		}
	}
	return v
}

// ntt applies the forward NTT to every entry of v.
func (v *polyVec) ntt() {
	for i := range v {
		v[i].ntt()
	}
}

// invnttToMont applies the inverse NTT (to Montgomery form) to every entry
// of v.
func (v *polyVec) invnttToMont() {
	for i := range v {
		v[i].invnttToMont()
	}
}

// add adds a and b entry-wise into v.
func (v *polyVec) add(a, b *polyVec) {
	for i := range v {
		v[i].add(&a[i], &b[i])
	}
}

// reduce applies barrettReduce to every coefficient of every entry of v.
func (v *polyVec) reduce() {
	for i := range v {
		v[i].reduce()
	}
}

// baseMulAccMontgomery computes r = sum_i basemul(a[i], b[i]), scaled by
// R^-1 from the Montgomery multiplications and Barrett-reduced, treating a
// and b as vectors in NTT domain.
func baseMulAccMontgomery(r *poly, a, b *polyVec) {
	var t poly
	r.baseMulMontgomery(&a[0], &b[0])
	for i := 1; i < k; i++ {
		t.baseMulMontgomery(&a[i], &b[i])
		r.add(r, &t)
	}
	r.reduce()
}
