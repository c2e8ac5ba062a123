package gcmsiv

import "github.com/aeadcrypt/gcmsiv/internal/lebytes"

// ctrCrypt XORs the keystream produced by b under counter block c0 over src,
// writing len(src) bytes to dst. c0's bytes 4..15 are never modified; bytes
// 0..3 are treated as a little-endian uint32 counter that wraps modulo 2^32
// without touching byte 4 (RFC 8452 Appendix C.3) — the increment is plain
// uint32 addition, which already wraps that way in Go.
func ctrCrypt(b cipherBlock, c0 *[blockSize]byte, dst, src []byte) {
	block := *c0
	ctr := lebytes.Uint32(block[0:4])

	var ks [blockSize]byte
	defer zeroize(block[:], ks[:])
	for len(src) >= blockSize {
		b.Encrypt(ks[:], block[:])
		xorBlock(dst, src, ks[:])
		dst = dst[blockSize:]
		src = src[blockSize:]

		ctr++
		lebytes.PutUint32(block[0:4], ctr)
	}

	if len(src) > 0 {
		b.Encrypt(ks[:], block[:])
		xorBytes(dst, src, ks[:])
	}
}

// xorBlock sets dst = src ^ ks for exactly one 16-byte block.
func xorBlock(dst, src, ks []byte) {
	for i := 0; i < blockSize; i++ {
		dst[i] = src[i] ^ ks[i]
	}
}

// xorBytes sets dst[i] = src[i] ^ ks[i] for i in [0, len(src)).
func xorBytes(dst, src, ks []byte) {
	for i := range src {
		dst[i] = src[i] ^ ks[i]
	}
}
