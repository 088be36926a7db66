// params.go - ML-KEM-1024 parameterization.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem1024

// Fixed parameters for the "1024" parameter set (module rank k=4, AES-256
// equivalent security). This package provides no algorithm agility; other
// Kyber parameter sets need a different package.
const (
	// SymSize is the size in bytes of the shared key and of the internal
	// seeds, hashes, and nonces derived alongside it.
	SymSize = 32

	n = 256  // polynomial degree
	q = 3329 // modulus
	k = 4    // module rank

	eta1 = 2 // CBD parameter for secret/error vector generation
	eta2 = 2 // CBD parameter for ciphertext noise generation

	du = 11 // compression bit-width, ciphertext vector u
	dv = 5  // compression bit-width, ciphertext scalar v

	polyBytes              = 384       // 256 coefficients packed 12 bits each
	polyCompressedBytes    = 160       // 256 coefficients packed dv=5 bits each
	polyVecBytes           = k * polyBytes
	polyVecCompressedBytes = k * 352 // 256 coefficients packed du=11 bits each, per row

	indcpaMsgSize       = SymSize
	indcpaPublicKeySize = polyVecBytes + SymSize
	indcpaSecretKeySize = polyVecBytes
	indcpaBytes         = polyVecCompressedBytes + polyCompressedBytes

	// PublicKeySize is the length in bytes of a serialized PublicKey.
	PublicKeySize = indcpaPublicKeySize
	// PrivateKeySize is the length in bytes of a serialized PrivateKey.
	PrivateKeySize = indcpaSecretKeySize + indcpaPublicKeySize + 2*SymSize
	// CiphertextSize is the length in bytes of a KEM ciphertext.
	CiphertextSize = indcpaBytes
	// SharedSecretSize is the length in bytes of a KEM shared secret.
	SharedSecretSize = SymSize

	// xofBlockBytes is the SHAKE-128 rate (block size) in bytes.
	xofBlockBytes = 168

	// genMatrixNBlocks is the number of SHAKE-128 blocks pre-squeezed per
	// matrix cell before falling back to incremental top-up, matching the
	// reference's computed GEN_MATRIX_NBLOCKS value for this parameter set.
	genMatrixNBlocks = 3
)
