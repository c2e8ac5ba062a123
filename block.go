package gcmsiv

import "crypto/aes"

// blockSize is the AES block size in bytes.
const blockSize = aes.BlockSize

// newBlockCipher keys an AES-128 or AES-256 block cipher for single-block
// ECB-mode encryption. No mode of operation is added here; callers drive the
// cipher one block at a time (KDF counters, CTR keystream blocks, the tag
// encryption step).
//
// A key that is neither 16 nor 32 bytes (including a 24-byte AES-192 key)
// is rejected with a panic: callers in this package always guard against it
// first, so it surfaces here as a programmer error, not a recoverable one.
func newBlockCipher(key []byte) cipherBlock {
	if len(key) != 16 && len(key) != 32 {
		panic("gcmsiv: " + aes.KeySizeError(len(key)).Error())
	}
	b, err := aes.NewCipher(key)
	if err != nil {
		panic("gcmsiv: " + err.Error())
	}
	return b
}

// cipherBlock is the single-block ECB contract C2 describes: the Encrypt
// method of crypto/cipher's Block interface (which also has BlockSize and
// Decrypt), narrowed to the one operation this package uses. Naming it
// locally keeps the rest of this package from depending on crypto/cipher
// directly.
type cipherBlock interface {
	Encrypt(dst, src []byte)
}
