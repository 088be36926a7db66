// indcpa.go - ML-KEM-1024 IND-CPA public-key encryption.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem1024

// indcpaPublicKey is the concatenation of the serialized polynomial vector
// t-hat and the 32-byte public seed used to regenerate the matrix A.
type indcpaPublicKey [indcpaPublicKeySize]byte

// indcpaSecretKey is the serialized secret polynomial vector s-hat.
type indcpaSecretKey [indcpaSecretKeySize]byte

// packPublicKey serializes the public key as t-hat || seed.
func packPublicKey(that *polyVec, seed *[SymSize]byte) indcpaPublicKey {
	var pk indcpaPublicKey
	b := that.toBytes()
	copy(pk[:], b[:])
	copy(pk[polyVecBytes:], seed[:])
	return pk
}

// unpackPublicKey is the inverse of packPublicKey.
func unpackPublicKey(pk *indcpaPublicKey) (that polyVec, seed [SymSize]byte) {
	that = polyVecFromBytes(pk[:polyVecBytes])
	copy(seed[:], pk[polyVecBytes:])
	return
}

// indcpaKeypairDerand generates an IND-CPA public/secret key pair from 32
// bytes of input randomness, per spec section 4.6:
//
//  1. (publicseed, noiseseed) = hashG(coins)
//  2. A = genMatrix(publicseed, transposed=false)
//  3. s[i], e[i] <- CBD(noiseseed, nonce); s-hat = ntt(s), e-hat = ntt(e)
//  4. t-hat[i] = toMont(A[i] . s-hat) + e-hat[i], reduced
//  5. sk = s-hat.toBytes(); pk = t-hat.toBytes() || publicseed
func indcpaKeypairDerand(coins *[SymSize]byte) (indcpaPublicKey, indcpaSecretKey) {
	buf := hashG(coins[:])
	var publicSeed, noiseSeed [SymSize]byte
	copy(publicSeed[:], buf[:SymSize])
	copy(noiseSeed[:], buf[SymSize:])

	a := genMatrix(&publicSeed, false)

	var nonce byte
	var skpv, e polyVec
	for i := 0; i < k; i++ {
		skpv[i] = getNoiseEta(&noiseSeed, nonce)
		nonce++
	}
	for i := 0; i < k; i++ {
		e[i] = getNoiseEta(&noiseSeed, nonce)
		nonce++
	}

	skpv.ntt()
	e.ntt()

	var pkpv polyVec
	for i := 0; i < k; i++ {
		baseMulAccMontgomery(&pkpv[i], &a[i], &skpv)
		pkpv[i].toMont()
	}
	pkpv.add(&pkpv, &e)
	pkpv.reduce()

	var sk indcpaSecretKey
	skBytes := skpv.toBytes()
	copy(sk[:], skBytes[:])

	pk := packPublicKey(&pkpv, &publicSeed)
	return pk, sk
}

// indcpaEncrypt encrypts a 32-byte message m under public key pk using the
// 32 bytes of input randomness coins, per spec section 4.6.
func indcpaEncrypt(m *[indcpaMsgSize]byte, pk *indcpaPublicKey, coins *[SymSize]byte) [indcpaBytes]byte {
	that, publicSeed := unpackPublicKey(pk)

	msgPoly := fromMsg(m)

	at := genMatrix(&publicSeed, true)

	var nonce byte
	var sp, ep polyVec
	for i := 0; i < k; i++ {
		sp[i] = getNoiseEta(coins, nonce)
		nonce++
	}
	for i := 0; i < k; i++ {
		ep[i] = getNoiseEta(coins, nonce)
		nonce++
	}
	epp := getNoiseEta(coins, nonce)
	nonce++

	sp.ntt()

	var bp polyVec
	for i := 0; i < k; i++ {
		baseMulAccMontgomery(&bp[i], &at[i], &sp)
	}
	var v poly
	baseMulAccMontgomery(&v, &that, &sp)

	bp.invnttToMont()
	v.invnttToMont()

	bp.add(&bp, &ep)
	v.add(&v, &epp)
	v.add(&v, &msgPoly)

	bp.reduce()
	v.reduce()

	var c [indcpaBytes]byte
	bc := bp.compress()
	copy(c[:], bc[:])
	vc := v.compress()
	copy(c[polyVecCompressedBytes:], vc[:])
	return c
}

// indcpaDecrypt decrypts ciphertext c under secret key sk, per spec
// section 4.6.
func indcpaDecrypt(c *[indcpaBytes]byte, sk *indcpaSecretKey) [indcpaMsgSize]byte {
	bp := polyVecDecompress(c[:polyVecCompressedBytes])
	v := polyDecompress(c[polyVecCompressedBytes:])

	skpv := polyVecFromBytes(sk[:])

	bp.ntt()

	var mp poly
	baseMulAccMontgomery(&mp, &skpv, &bp)
	mp.invnttToMont()

	mp.sub(&v, &mp)
	mp.reduce()

	return mp.toMsg()
}
