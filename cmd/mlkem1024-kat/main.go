// Command mlkem1024-kat runs the mlkem1024 package against a known-answer
// test fixture file and reports pass/fail.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/post-quantum-go/mlkem1024"
)

// vector is one known-answer-test entry: derandomized keypair generation
// and encapsulation, with the expected outputs at every stage.
type vector struct {
	Name       string `json:"name"`
	KeyCoins   string `json:"key_coins"`   // 64 bytes, hex
	EncCoins   string `json:"enc_coins"`   // 32 bytes, hex
	PublicKey  string `json:"public_key"`  // hex
	PrivateKey string `json:"private_key"` // hex
	CipherText string `json:"ciphertext"`  // hex
	SharedKey  string `json:"shared_key"`  // hex
}

func main() {
	path := flag.String("f", "", "path to KAT fixture JSON file")
	flag.Parse()

	if *path == "" {
		log.Fatal("mlkem1024-kat: -f is required")
	}

	n, err := run(*path, os.Stdout)
	if err != nil {
		log.Fatalf("mlkem1024-kat: %v", err)
	}
	fmt.Fprintf(os.Stdout, "%d vectors passed\n", n)
}

// run loads the fixture at path and checks every vector, writing a
// progress line per vector to w. It returns the number of vectors checked
// and the first error encountered, if any.
func run(path string, w *os.File) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var vectors []vector
	if err := json.Unmarshal(raw, &vectors); err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}

	for i, v := range vectors {
		if err := checkVector(&v); err != nil {
			return i, fmt.Errorf("vector %q: %w", v.Name, err)
		}
		fmt.Fprintf(w, "ok %s\n", v.Name)
	}

	return len(vectors), nil
}

func checkVector(v *vector) error {
	keyCoins, err := decodeFixed(v.KeyCoins, 64)
	if err != nil {
		return fmt.Errorf("key_coins: %w", err)
	}
	encCoins, err := decodeFixed(v.EncCoins, mlkem1024.SharedSecretSize)
	if err != nil {
		return fmt.Errorf("enc_coins: %w", err)
	}

	var coins64 [64]byte
	copy(coins64[:], keyCoins)
	pk, sk := mlkem1024.GenerateKeyPairDerand(&coins64)

	if err := compareHex("public_key", pk.Bytes(), v.PublicKey); err != nil {
		return err
	}
	if err := compareHex("private_key", sk.Bytes(), v.PrivateKey); err != nil {
		return err
	}

	var coins32 [32]byte
	copy(coins32[:], encCoins)
	ct, ss := mlkem1024.EncapsulateDerand(pk, &coins32)

	if err := compareHex("ciphertext", ct[:], v.CipherText); err != nil {
		return err
	}
	if err := compareHex("shared_key", ss[:], v.SharedKey); err != nil {
		return err
	}

	dss := mlkem1024.Decapsulate(sk, &ct)
	if !bytes.Equal(dss[:], ss[:]) {
		return fmt.Errorf("decapsulate: shared secret mismatch")
	}

	return nil
}

func decodeFixed(s string, n int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("expected %d bytes, got %d", n, len(b))
	}
	return b, nil
}

func compareHex(field string, got []byte, wantHex string) error {
	want, err := hex.DecodeString(wantHex)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("%s: mismatch", field)
	}
	return nil
}
