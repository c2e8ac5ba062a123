package gcmsiv

import "github.com/aeadcrypt/gcmsiv/internal/lebytes"

// deriveKeys derives authKey (always 16 bytes) and encKey (16 or 32 bytes,
// matching len(keyGenKey)) from the master key and nonce per RFC 8452
// Section 4.
//
// Each subkey half is the low 8 bytes of AES_ECB(keyGenKey, counter||nonce)
// for successive little-endian 32-bit counters: 0 and 1 build authKey; 2
// and 3 (AES-128) or 2..5 (AES-256) build encKey.
func deriveKeys(authKey *[16]byte, encKey []byte, keyGenKey, nonce []byte) {
	b := newBlockCipher(keyGenKey)

	var block [blockSize]byte
	copy(block[4:], nonce)

	var full [8 * 6]byte // up to 6 counter blocks' worth of 8-byte halves
	n := 2 + len(encKey)/8
	for ctr := 0; ctr < n; ctr++ {
		lebytes.PutUint32(block[0:4], uint32(ctr))
		var out [blockSize]byte
		b.Encrypt(out[:], block[:])
		copy(full[ctr*8:ctr*8+8], out[:8])
	}

	copy(authKey[:], full[0:16])
	copy(encKey, full[16:16+len(encKey)])
}
