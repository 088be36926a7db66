// doc.go - mlkem1024 godoc extras.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package mlkem1024 implements ML-KEM-1024 (Kyber-1024), the IND-CCA2-secure
// key encapsulation mechanism based on the hardness of solving the
// learning-with-errors (LWE) problem over module lattices, standardized by
// NIST as FIPS 203.
//
// This implementation is a port of the "clean" reference C implementation
// by Joppe Bos, Léo Ducas, Eike Kiltz, Tancrède Lepoint, Vadim Lyubashevsky,
// John Schanck, Peter Schwabe, Gregor Seiler, and Damien Stehlé, fixed to the
// "1024" parameter set (module rank k=4). No algorithm agility is provided;
// callers that need Kyber-512/768 or other lattice parameter sets need a
// different package.
//
// Additionally, Kyber.AKE and Kyber.UAKE authenticated key exchange
// protocols, built on top of the KEM primitives below, are included for
// users that need them.
//
// For more information, see https://pq-crystals.org/kyber/index.shtml and
// https://csrc.nist.gov/pubs/fips/203/final.
package mlkem1024
