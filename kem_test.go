// kem_test.go - ML-KEM-1024 KEM tests.
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

const nTests = 50

func TestKEMKeys(t *testing.T) {
	require := require.New(t)

	for i := 0; i < nTests; i++ {
		pk, sk, err := GenerateKeyPair(rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		b := sk.Bytes()
		require.Len(b, PrivateKeySize, "sk.Bytes(): length")
		sk2, err := PrivateKeyFromBytes(b)
		require.NoError(err, "PrivateKeyFromBytes()")
		requirePrivateKeyEqual(require, sk, sk2)

		b = pk.Bytes()
		require.Len(b, PublicKeySize, "pk.Bytes(): length")
		pk2, err := PublicKeyFromBytes(b)
		require.NoError(err, "PublicKeyFromBytes()")
		requirePublicKeyEqual(require, pk, pk2)

		ct, ss, err := Encapsulate(rand.Reader, pk)
		require.NoError(err, "Encapsulate()")
		require.Len(ct, CiphertextSize, "Encapsulate(): ct length")
		require.Len(ss, SharedSecretSize, "Encapsulate(): ss length")

		ss2 := Decapsulate(sk, &ct)
		require.Equal(ss, ss2, "Decapsulate(): round trip")
	}
}

func TestKEMKeyFromBytesRejectsWrongLength(t *testing.T) {
	require := require.New(t)

	_, err := PublicKeyFromBytes(make([]byte, PublicKeySize-1))
	require.ErrorIs(err, ErrInvalidKeySize)

	_, err = PrivateKeyFromBytes(make([]byte, PrivateKeySize+1))
	require.ErrorIs(err, ErrInvalidKeySize)
}

func TestKEMPrivateKeyFromBytesRejectsMismatchedHash(t *testing.T) {
	require := require.New(t)

	_, sk, err := GenerateKeyPair(rand.Reader)
	require.NoError(err)

	b := sk.Bytes()
	b[indcpaSecretKeySize] ^= 0xff // corrupt the embedded public key

	_, err = PrivateKeyFromBytes(b)
	require.ErrorIs(err, ErrInvalidPrivateKey)
}

// TestKEMTamperedCipherTextImplicitRejection confirms that decapsulating a
// corrupted ciphertext yields a different shared secret rather than an
// error, per the FO transform's implicit-rejection construction: there is
// no observable decryption-failure branch.
func TestKEMTamperedCipherTextImplicitRejection(t *testing.T) {
	require := require.New(t)
	var rawPos [2]byte

	for i := 0; i < nTests; i++ {
		_, err := rand.Read(rawPos[:])
		require.NoError(err)
		pos := (int(rawPos[0])<<8 | int(rawPos[1])) % CiphertextSize

		pk, sk, err := GenerateKeyPair(rand.Reader)
		require.NoError(err)

		ct, ss, err := Encapsulate(rand.Reader, pk)
		require.NoError(err)

		ct[pos] ^= 0x23

		ss2 := Decapsulate(sk, &ct)
		require.NotEqual(ss, ss2, "Decapsulate(): tampered ciphertext should not recover the original secret")
	}
}

// TestKEMTamperedPrivateKeyImplicitRejection confirms that decapsulating
// with a corrupted secret key (but an otherwise untampered ciphertext)
// behaves the same way: a differing, but still deterministic, secret.
func TestKEMTamperedPrivateKeyImplicitRejection(t *testing.T) {
	require := require.New(t)

	pk, sk, err := GenerateKeyPair(rand.Reader)
	require.NoError(err)

	ct, ss, err := Encapsulate(rand.Reader, pk)
	require.NoError(err)

	sk.sk[0] ^= 0xff

	ss2 := Decapsulate(sk, &ct)
	require.NotEqual(ss, ss2)

	// Decapsulating twice with the same tampered key and ciphertext is
	// still deterministic.
	ss3 := Decapsulate(sk, &ct)
	require.Equal(ss2, ss3)
}

func TestKEMDerandIsDeterministic(t *testing.T) {
	require := require.New(t)

	var keyCoins [64]byte
	_, err := rand.Read(keyCoins[:])
	require.NoError(err)

	pk1, sk1 := GenerateKeyPairDerand(&keyCoins)
	pk2, sk2 := GenerateKeyPairDerand(&keyCoins)
	requirePublicKeyEqual(require, pk1, pk2)
	requirePrivateKeyEqual(require, sk1, sk2)

	var encCoins [SymSize]byte
	_, err = rand.Read(encCoins[:])
	require.NoError(err)

	ct1, ss1 := EncapsulateDerand(pk1, &encCoins)
	ct2, ss2 := EncapsulateDerand(pk1, &encCoins)
	require.Equal(ct1, ct2)
	require.Equal(ss1, ss2)
}

func requirePrivateKeyEqual(r *require.Assertions, a, b *PrivateKey) {
	r.Equal(a.sk, b.sk, "sk (indcpaSecretKey)")
	r.Equal(a.z, b.z, "z")
	requirePublicKeyEqual(r, &a.PublicKey, &b.PublicKey)
}

func requirePublicKeyEqual(r *require.Assertions, a, b *PublicKey) {
	r.Equal(a.pk, b.pk, "pk (indcpaPublicKey)")
	r.Equal(a.h, b.h, "h (H(pk))")
}
