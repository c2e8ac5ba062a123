package gcmsiv

import (
	"crypto/aes"
	"errors"
	"strconv"

	"github.com/aeadcrypt/gcmsiv/internal/lebytes"
	"github.com/aeadcrypt/gcmsiv/polyval"
	"github.com/ericlagergren/subtle"
)

// ErrOpen is returned by Open when the recomputed tag does not match the
// tag carried in the ciphertext, or when the ciphertext is too short or too
// long to be a sealed message. It is the only recoverable failure of Open;
// a bad nonce length or buffer overlap in Seal/Open is a programmer error
// signaled by panic, and New reports a bad key length as an error.
var ErrOpen = errors.New("gcmsiv: message authentication failure")

const (
	// NonceSize is the size in bytes of an AES-GCM-SIV nonce.
	NonceSize = 12
	// TagSize is the size in bytes of an AES-GCM-SIV authentication tag.
	TagSize = 16
	// MaxPlaintextSize is the size in bytes of the largest plaintext this
	// package will seal.
	MaxPlaintextSize = 1 << 36
	// MaxAdditionalDataSize is the size in bytes of the largest
	// associated data this package will authenticate.
	MaxAdditionalDataSize = 1 << 36

	maxCiphertextSize = MaxPlaintextSize + TagSize
)

// AEAD is an AES-GCM-SIV instance keyed with a 16- or 32-byte master key.
// An AEAD is immutable after New and safe for concurrent use: Seal and Open
// allocate their own per-call subkeys and POLYVAL state.
type AEAD struct {
	key []byte
}

// New constructs an AEAD from a 16- or 32-byte master key. Any other key
// length is a programmer error, reported as an error here (rather than a
// panic) because key provisioning is commonly a recoverable, caller-facing
// step — unlike the nonce-length checks in Seal/Open, which guard
// call-site arguments the caller fully controls per invocation.
func New(key []byte) (*AEAD, error) {
	switch len(key) {
	case 16, 32:
		return &AEAD{key: dup(key)}, nil
	default:
		return nil, aes.KeySizeError(len(key))
	}
}

func dup(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// NonceSize returns the size in bytes of the nonces Seal and Open expect.
func (a *AEAD) NonceSize() int { return NonceSize }

// Overhead returns the maximum difference between the lengths of a
// plaintext and its sealed ciphertext.
func (a *AEAD) Overhead() int { return TagSize }

// Seal encrypts and authenticates plaintext, authenticates additionalData,
// appends the result to dst, and returns the updated slice. The nonce must
// be NonceSize bytes and, for a given key, unique per message — but unlike
// most AEADs, nonce reuse here only reveals repeated (key, nonce, plaintext,
// additionalData) tuples rather than catastrophically breaking
// confidentiality or integrity.
//
// dst and plaintext may overlap exactly but not partially; to encrypt in
// place, pass plaintext[:0] as dst.
func (a *AEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic("gcmsiv: invalid nonce length: " + strconv.Itoa(len(nonce)))
	}
	if uint64(len(plaintext)) > MaxPlaintextSize {
		panic("gcmsiv: plaintext too large: " + strconv.Itoa(len(plaintext)))
	}
	if uint64(len(additionalData)) > MaxAdditionalDataSize {
		panic("gcmsiv: additional data too large: " + strconv.Itoa(len(additionalData)))
	}

	ret, out := subtle.SliceForAppend(dst, len(plaintext)+TagSize)
	if subtle.InexactOverlap(out, plaintext) {
		panic("gcmsiv: invalid buffer overlap")
	}
	a.seal(out, nonce, plaintext, additionalData)
	return ret
}

// Open authenticates additionalData and the ciphertext (the output of
// Seal), decrypts the ciphertext, appends the result to dst, and returns
// the updated slice if and only if the tag is valid. On failure, Open
// returns ErrOpen and dst is unmodified; any partially-recovered plaintext
// is zeroed rather than returned.
//
// dst and ciphertext may overlap exactly but not partially; to decrypt in
// place, pass ciphertext[:0] as dst.
func (a *AEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("gcmsiv: invalid nonce length: " + strconv.Itoa(len(nonce)))
	}
	if len(ciphertext) < TagSize ||
		uint64(len(ciphertext)) > maxCiphertextSize ||
		uint64(len(additionalData)) > MaxAdditionalDataSize {
		return nil, ErrOpen
	}

	tag := ciphertext[len(ciphertext)-TagSize:]
	ciphertext = ciphertext[:len(ciphertext)-TagSize]

	ret, out := subtle.SliceForAppend(dst, len(ciphertext))
	if subtle.InexactOverlap(out, ciphertext) {
		panic("gcmsiv: invalid buffer overlap")
	}
	if !a.open(out, nonce, ciphertext, tag, additionalData) {
		zeroize(out)
		return nil, ErrOpen
	}
	return ret, nil
}

// seal implements C6 step by step: derive subkeys, compute the synthetic
// tag over (additionalData, plaintext), then run CTR seeded by the tag.
func (a *AEAD) seal(out, nonce, plaintext, additionalData []byte) {
	var authKey [16]byte
	encKey := make([]byte, len(a.key))
	deriveKeys(&authKey, encKey, a.key, nonce)
	defer zeroize(authKey[:], encKey)

	b := newBlockCipher(encKey)

	tag := out[len(out)-TagSize:]
	computeTag(tag, b, authKey[:], nonce, plaintext, additionalData)

	var c0 [blockSize]byte
	copy(c0[:], tag)
	c0[15] |= 0x80
	ctrCrypt(b, &c0, out[:len(out)-TagSize], plaintext)
}

// open is seal's inverse: recover the candidate plaintext under CTR seeded
// by the received tag, then recompute the tag over (additionalData,
// candidate plaintext) and compare in constant time.
func (a *AEAD) open(out, nonce, ciphertext, tag, additionalData []byte) bool {
	var authKey [16]byte
	encKey := make([]byte, len(a.key))
	deriveKeys(&authKey, encKey, a.key, nonce)
	defer zeroize(authKey[:], encKey)

	b := newBlockCipher(encKey)

	var c0 [blockSize]byte
	copy(c0[:], tag)
	c0[15] |= 0x80
	ctrCrypt(b, &c0, out, ciphertext)

	wantTag := make([]byte, TagSize)
	computeTag(wantTag, b, authKey[:], nonce, out, additionalData)
	defer zeroize(wantTag)

	return subtle.ConstantTimeCompare(tag, wantTag) == 1
}

// computeTag is C6 steps 3-10 (and the identical recomputation in open):
// POLYVAL over (additionalData, plaintext, length block), XOR the nonce in,
// clear the top bit, then encrypt the result to produce the tag.
func computeTag(tag []byte, b cipherBlock, authKey, nonce, plaintext, additionalData []byte) {
	p, err := polyval.New(authKey)
	if err != nil {
		// authKey is always exactly 16 bytes here; a mismatch would be a
		// bug in deriveKeys, not a caller-facing condition.
		panic(err)
	}
	defer p.Zero()

	p.Update(additionalData)
	p.Update(plaintext)

	var length [16]byte
	lebytes.PutUint64(length[0:8], uint64(len(additionalData))*8)
	lebytes.PutUint64(length[8:16], uint64(len(plaintext))*8)
	p.Update(length[:])

	p.Sum(tag[:0])
	for i := 0; i < NonceSize; i++ {
		tag[i] ^= nonce[i]
	}
	tag[15] &= 0x7f
	b.Encrypt(tag, tag)
}
