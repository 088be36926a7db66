// kex.go - ML-KEM-1024 authenticated/unauthenticated key exchange.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem1024

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// UAKEInitiatorMessageSize is the size in bytes of the initiator UAKE
// message.
const UAKEInitiatorMessageSize = PublicKeySize + CiphertextSize

// UAKEResponderMessageSize is the size in bytes of the responder UAKE
// message.
const UAKEResponderMessageSize = CiphertextSize

// UAKEInitiatorState is an initiator UAKE instance. Each instance must only
// be used for one key exchange and never reused.
type UAKEInitiatorState struct {
	// Message is the UAKE message to send to the responder.
	Message []byte

	eSk *PrivateKey
	tk  [SharedSecretSize]byte
}

// NewUAKEInitiatorState creates a new initiator UAKE instance, generating
// an ephemeral key pair and a KEM encapsulation under pk.
func (pk *PublicKey) NewUAKEInitiatorState(rng io.Reader) (*UAKEInitiatorState, error) {
	s := new(UAKEInitiatorState)
	s.Message = make([]byte, 0, UAKEInitiatorMessageSize)

	_, eSk, err := GenerateKeyPair(rng)
	if err != nil {
		return nil, err
	}
	s.eSk = eSk
	s.Message = append(s.Message, eSk.PublicKey.Bytes()...)

	ct, tk, err := Encapsulate(rng, pk)
	if err != nil {
		return nil, err
	}
	s.tk = tk
	s.Message = append(s.Message, ct[:]...)

	return s, nil
}

// Shared decapsulates the responder's UAKE message against the initiator's
// ephemeral private key and derives a shared secret from the two
// encapsulated keys, in the order responder-to-initiator then
// initiator-to-responder.
func (s *UAKEInitiatorState) Shared(recv []byte) (sharedSecret [SymSize]byte, err error) {
	if len(recv) != UAKEResponderMessageSize {
		return sharedSecret, ErrInvalidCipherTextSize
	}
	var ct [CiphertextSize]byte
	copy(ct[:], recv)

	tk := Decapsulate(s.eSk, &ct)

	xof := sha3.NewShake256()
	xof.Write(tk[:])
	xof.Write(s.tk[:])
	xof.Read(sharedSecret[:])
	return
}

// UAKEResponderShared generates a responder UAKE message and the resulting
// shared secret, given the initiator's UAKE message and this party's
// long-term private key.
func (sk *PrivateKey) UAKEResponderShared(rng io.Reader, recv []byte) (message []byte, sharedSecret [SymSize]byte, err error) {
	if len(recv) != UAKEInitiatorMessageSize {
		return nil, sharedSecret, ErrInvalidMessageSize
	}
	rawPk, ct := recv[:PublicKeySize], recv[PublicKeySize:]
	peerEphemeral, err := PublicKeyFromBytes(rawPk)
	if err != nil {
		return nil, sharedSecret, err
	}

	var recvCt [CiphertextSize]byte
	copy(recvCt[:], ct)

	message2, tk, err := Encapsulate(rng, peerEphemeral)
	if err != nil {
		return nil, sharedSecret, err
	}
	message = append([]byte(nil), message2[:]...)

	tk2 := Decapsulate(sk, &recvCt)

	xof := sha3.NewShake256()
	xof.Write(tk[:])
	xof.Write(tk2[:])
	xof.Read(sharedSecret[:])
	return
}

// AKEInitiatorMessageSize is the size in bytes of the initiator AKE
// message.
const AKEInitiatorMessageSize = PublicKeySize + CiphertextSize

// AKEResponderMessageSize is the size in bytes of the responder AKE
// message.
const AKEResponderMessageSize = 2 * CiphertextSize

// AKEInitiatorState is an initiator AKE instance. Each instance must only
// be used for one key exchange and never reused.
type AKEInitiatorState struct {
	// Message is the AKE message to send to the responder.
	Message []byte

	eSk *PrivateKey
	tk  [SharedSecretSize]byte
}

// NewAKEInitiatorState creates a new initiator AKE instance. The message
// construction is identical to the UAKE case; the distinction is entirely
// in how the responder and initiator derive the shared secret.
func (pk *PublicKey) NewAKEInitiatorState(rng io.Reader) (*AKEInitiatorState, error) {
	us, err := pk.NewUAKEInitiatorState(rng)
	if err != nil {
		return nil, err
	}
	return &AKEInitiatorState{Message: us.Message, eSk: us.eSk, tk: us.tk}, nil
}

// Shared generates a shared secret for the given AKE instance, responder
// message, and long-term initiator private key.
func (s *AKEInitiatorState) Shared(recv []byte, initiatorPrivateKey *PrivateKey) (sharedSecret [SymSize]byte, err error) {
	if len(recv) != AKEResponderMessageSize {
		return sharedSecret, ErrInvalidMessageSize
	}
	var ct1, ct2 [CiphertextSize]byte
	copy(ct1[:], recv[:CiphertextSize])
	copy(ct2[:], recv[CiphertextSize:])

	tk1 := Decapsulate(s.eSk, &ct1)
	tk2 := Decapsulate(initiatorPrivateKey, &ct2)

	xof := sha3.NewShake256()
	xof.Write(tk1[:])
	xof.Write(tk2[:])
	xof.Write(s.tk[:])
	xof.Read(sharedSecret[:])
	return
}

// AKEResponderShared generates a responder message and shared secret given
// an initiator AKE message and the peer's long-term public key.
func (sk *PrivateKey) AKEResponderShared(rng io.Reader, recv []byte, peerPublicKey *PublicKey) (message []byte, sharedSecret [SymSize]byte, err error) {
	if len(recv) != AKEInitiatorMessageSize {
		return nil, sharedSecret, ErrInvalidMessageSize
	}
	rawPk, ct := recv[:PublicKeySize], recv[PublicKeySize:]
	peerEphemeral, err := PublicKeyFromBytes(rawPk)
	if err != nil {
		return nil, sharedSecret, err
	}

	var recvCt [CiphertextSize]byte
	copy(recvCt[:], ct)

	message = make([]byte, 0, AKEResponderMessageSize)
	xof := sha3.NewShake256()

	tmp1, tk1, err := Encapsulate(rng, peerEphemeral)
	if err != nil {
		return nil, sharedSecret, err
	}
	xof.Write(tk1[:])
	message = append(message, tmp1[:]...)

	tmp2, tk2, err := Encapsulate(rng, peerPublicKey)
	if err != nil {
		return nil, sharedSecret, err
	}
	xof.Write(tk2[:])
	message = append(message, tmp2[:]...)

	tk3 := Decapsulate(sk, &recvCt)
	xof.Write(tk3[:])
	xof.Read(sharedSecret[:])
	return
}
