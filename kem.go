// kem.go - ML-KEM-1024 key encapsulation mechanism.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem1024

import (
	"bytes"
	"errors"
	"io"
)

var (
	// ErrInvalidKeySize is returned when a byte-serialized key is the
	// wrong size.
	ErrInvalidKeySize = errors.New("mlkem1024: invalid key size")

	// ErrInvalidCipherTextSize is returned when a byte-serialized
	// ciphertext is the wrong size.
	ErrInvalidCipherTextSize = errors.New("mlkem1024: invalid ciphertext size")

	// ErrInvalidPrivateKey is returned when a byte-serialized private key
	// fails its internal consistency check (H(pk) mismatch).
	ErrInvalidPrivateKey = errors.New("mlkem1024: invalid private key")

	// ErrInvalidMessageSize is returned when a key exchange initiator or
	// responder message is the wrong size. The one exception is
	// UAKEInitiatorState.Shared, whose responder message is a bare
	// ciphertext and which returns ErrInvalidCipherTextSize instead.
	ErrInvalidMessageSize = errors.New("mlkem1024: invalid message size")
)

// PublicKey is an ML-KEM-1024 public key.
type PublicKey struct {
	pk indcpaPublicKey
	h  [32]byte // H(pk), cached
}

// Bytes returns the PublicKeySize-byte serialization of pk.
func (pk *PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeySize)
	copy(b, pk.pk[:])
	return b
}

// PublicKeyFromBytes deserializes a byte-serialized PublicKey.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, ErrInvalidKeySize
	}
	pk := new(PublicKey)
	copy(pk.pk[:], b)
	pk.h = hashH(b)
	return pk, nil
}

// PrivateKey is an ML-KEM-1024 private key.
type PrivateKey struct {
	PublicKey
	sk indcpaSecretKey
	z  [SymSize]byte
}

// Bytes returns the PrivateKeySize-byte serialization of sk:
// sk_cpa || pk || H(pk) || z.
func (sk *PrivateKey) Bytes() []byte {
	b := make([]byte, 0, PrivateKeySize)
	b = append(b, sk.sk[:]...)
	b = append(b, sk.PublicKey.pk[:]...)
	b = append(b, sk.PublicKey.h[:]...)
	b = append(b, sk.z[:]...)
	return b
}

// PrivateKeyFromBytes deserializes a byte-serialized PrivateKey, verifying
// that the embedded H(pk) hash matches the embedded public key.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, ErrInvalidKeySize
	}

	sk := new(PrivateKey)
	copy(sk.sk[:], b[:indcpaSecretKeySize])

	off := indcpaSecretKeySize
	copy(sk.PublicKey.pk[:], b[off:off+PublicKeySize])
	off += PublicKeySize

	sk.PublicKey.h = hashH(sk.PublicKey.pk[:])
	if !bytes.Equal(sk.PublicKey.h[:], b[off:off+SymSize]) {
		return nil, ErrInvalidPrivateKey
	}
	off += SymSize

	copy(sk.z[:], b[off:])
	return sk, nil
}

// GenerateKeyPairDerand deterministically generates a key pair from 64
// bytes of input randomness (coins[:32] seed the IND-CPA keypair,
// coins[32:] become z, the implicit-rejection secret). This is the KAT
// entry point; GenerateKeyPair is the non-deterministic equivalent most
// callers want.
func GenerateKeyPairDerand(coins *[64]byte) (*PublicKey, *PrivateKey) {
	var cpaCoins [SymSize]byte
	copy(cpaCoins[:], coins[:SymSize])

	indcpaPk, indcpaSk := indcpaKeypairDerand(&cpaCoins)

	sk := &PrivateKey{sk: indcpaSk}
	sk.PublicKey.pk = indcpaPk
	sk.PublicKey.h = hashH(indcpaPk[:])
	copy(sk.z[:], coins[SymSize:])

	return &sk.PublicKey, sk
}

// GenerateKeyPair generates a key pair using rng as the source of
// randomness.
func GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	var coins [64]byte
	if _, err := io.ReadFull(rng, coins[:]); err != nil {
		return nil, nil, err
	}
	pk, sk := GenerateKeyPairDerand(&coins)
	return pk, sk, nil
}

// EncapsulateDerand deterministically encapsulates a shared secret to pk
// using 32 bytes of input randomness. The FO^Ⲧ transform of spec section
// 4.7:
//
//  1. buf = coins || H(pk)
//  2. (Kbar, r) = hashG(buf)
//  3. ct = indcpaEncrypt(coins, pk, r)
//  4. ss = Kbar
func EncapsulateDerand(pk *PublicKey, coins *[SymSize]byte) (ct [CiphertextSize]byte, ss [SharedSecretSize]byte) {
	var buf [2 * SymSize]byte
	copy(buf[:SymSize], coins[:])
	copy(buf[SymSize:], pk.h[:])

	kr := hashG(buf[:])
	var kBar, r [SymSize]byte
	copy(kBar[:], kr[:SymSize])
	copy(r[:], kr[SymSize:])

	ct = indcpaEncrypt(coins, &pk.pk, &r)
	ss = kBar
	return
}

// Encapsulate generates a ciphertext and shared secret for pk using rng as
// the source of randomness.
func Encapsulate(rng io.Reader, pk *PublicKey) (ct [CiphertextSize]byte, ss [SharedSecretSize]byte, err error) {
	var coins [SymSize]byte
	if _, err = io.ReadFull(rng, coins[:]); err != nil {
		return
	}
	ct, ss = EncapsulateDerand(pk, &coins)
	return
}

// Decapsulate recovers the shared secret encapsulated in ct using sk. This
// always returns a value and never fails outwardly: on ciphertext tamper
// (or any other re-encryption mismatch), ss is a pseudo-random value
// derived from sk's implicit-rejection secret z and ct, per the FO
// transform's implicit-rejection construction. Both the success and
// failure paths execute identical operations (rkprf is always computed; a
// constant-time move selects between the two candidate secrets), so timing
// does not reveal which case occurred.
func Decapsulate(sk *PrivateKey, ct *[CiphertextSize]byte) (ss [SharedSecretSize]byte) {
	mPrime := indcpaDecrypt(ct, &sk.sk)

	var buf [2 * SymSize]byte
	copy(buf[:SymSize], mPrime[:])
	copy(buf[SymSize:], sk.PublicKey.h[:])

	kr := hashG(buf[:])
	var kBarPrime, rPrime [SymSize]byte
	copy(kBarPrime[:], kr[:SymSize])
	copy(rPrime[:], kr[SymSize:])

	ctPrime := indcpaEncrypt(&mPrime, &sk.PublicKey.pk, &rPrime)

	fail := ctVerify(ct[:], ctPrime[:])

	rejected := rkprf(&sk.z, ct[:])

	ss = rejected
	ctMove(ss[:], kBarPrime[:], 1-fail)
	return
}
