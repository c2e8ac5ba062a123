package gcmsiv

import (
	"bytes"
	"testing"
)

func TestCTRCryptIsSelfInverse(t *testing.T) {
	key := make([]byte, 16)
	b := newBlockCipher(key)

	var c0 [blockSize]byte
	c0[4] = 7

	plaintext := bytes.Repeat([]byte{0x42}, 100)
	ciphertext := make([]byte, len(plaintext))
	ctrCrypt(b, &c0, ciphertext, plaintext)

	c0b := c0 // ctrCrypt must not mutate the caller's counter block
	recovered := make([]byte, len(ciphertext))
	ctrCrypt(b, &c0b, recovered, ciphertext)

	if !bytes.Equal(recovered, plaintext) {
		t.Fatalf("CTR is not self-inverse: got %x, want %x", recovered, plaintext)
	}
}

func TestCTRCryptDoesNotMutateSeed(t *testing.T) {
	key := make([]byte, 16)
	b := newBlockCipher(key)

	var c0 [blockSize]byte
	c0[4] = 0xAB
	want := c0

	dst := make([]byte, 64)
	ctrCrypt(b, &c0, dst, make([]byte, 64))

	if c0 != want {
		t.Fatalf("ctrCrypt mutated the caller's counter seed: %x != %x", c0, want)
	}
}

func TestCTRCryptHandlesPartialFinalBlock(t *testing.T) {
	key := make([]byte, 16)
	b := newBlockCipher(key)

	var c0 [blockSize]byte
	plaintext := bytes.Repeat([]byte{0x01}, blockSize*2+5)
	ciphertext := make([]byte, len(plaintext))
	ctrCrypt(b, &c0, ciphertext, plaintext)

	recovered := make([]byte, len(ciphertext))
	var c0b [blockSize]byte
	ctrCrypt(b, &c0b, recovered, ciphertext)

	if !bytes.Equal(recovered, plaintext) {
		t.Fatalf("partial final block round trip failed")
	}
}
