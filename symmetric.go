// symmetric.go - Facade over the external SHA3/SHAKE oracles this core
// consumes.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem1024

import "golang.org/x/crypto/sha3"

// hashH is SHA3-256.
func hashH(in []byte) [32]byte {
	return sha3.Sum256(in)
}

// hashG is SHA3-512, split by the caller into two 32-byte halves.
func hashG(in []byte) [64]byte {
	return sha3.Sum512(in)
}

// prf derives outLen bytes from SHAKE-256(seed || nonce).
func prf(seed *[SymSize]byte, nonce byte, outLen int) []byte {
	h := sha3.NewShake256()
	h.Write(seed[:])
	h.Write([]byte{nonce})
	out := make([]byte, outLen)
	h.Read(out)
	return out
}

// rkprf is the implicit-rejection pseudo-random function:
// SHAKE-256(z || ct) truncated to 32 bytes.
func rkprf(z *[SymSize]byte, ct []byte) [SymSize]byte {
	h := sha3.NewShake256()
	h.Write(z[:])
	h.Write(ct)
	var out [SymSize]byte
	h.Read(out[:])
	return out
}

// xofState wraps a SHAKE-128 instance for matrix generation, absorbing a
// 32-byte seed plus two index bytes and squeezing output in
// xofBlockBytes-sized blocks.
type xofState struct {
	h sha3.ShakeHash
}

// xofAbsorb resets and absorbs seed || b0 || b1 into a fresh XOF state.
func xofAbsorb(seed []byte, b0, b1 byte) xofState {
	h := sha3.NewShake128()
	h.Write(seed)
	h.Write([]byte{b0, b1})
	return xofState{h: h}
}

// xofSqueezeBlocks squeezes nBlocks*xofBlockBytes bytes from the stream.
func (s *xofState) xofSqueezeBlocks(nBlocks int) []byte {
	out := make([]byte, nBlocks*xofBlockBytes)
	s.h.Read(out)
	return out
}
