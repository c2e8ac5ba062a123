// Package polyval implements POLYVAL, the universal hash over GF(2^128)
// used as the authenticator base of AES-GCM-SIV (RFC 8452, Section 3).
//
// POLYVAL(H, X) is computed here as byte-reverse(GHASH(H·x^-1, byte-reverse(X))):
// the hash key is pre-multiplied once by x^-1 (mulX_GHASH) so the inner loop
// can use a GHASH-shaped, right-shifting bit-serial multiplier while the
// public Update/Sum API keeps POLYVAL's little-endian byte order. This is a
// mathematical identity, not a shortcut — see RFC 8452 Appendix A.
package polyval

import (
	"encoding/binary"
	"errors"
)

// BlockSize is the size in bytes of a POLYVAL block.
const BlockSize = 16

// KeySize is the required length of a POLYVAL hash key.
const KeySize = 16

var errKeySize = errors.New("polyval: key must be 16 bytes")

// reducingE is the GHASH reduction constant x^128+x^127+x^126+x^121 folded
// into the high word of the shifted-out bit's position.
const reducingE = 0xe100000000000000

// reducingE1 is the same constant in mulX_GHASH's 32-bit-word form.
const reducingE1 = 0xe1000000

// Hash is a stateful POLYVAL instance over a fixed key. Construct one per
// message with New; never reuse an instance across messages (the running
// sum has no way to be un-mixed).
type Hash struct {
	h0, h1 uint64 // pre-multiplied hash key H' (mulX_GHASH(H)), immutable
	s0, s1 uint64 // running accumulator
}

// New returns a POLYVAL hasher keyed with the 16-byte hash key h.
func New(h []byte) (*Hash, error) {
	p := new(Hash)
	if err := p.Init(h); err != nil {
		return nil, err
	}
	return p, nil
}

// Init (re)keys p with the 16-byte hash key h and zeroes its accumulator.
func (p *Hash) Init(h []byte) error {
	if len(h) != KeySize {
		return errKeySize
	}
	p.h0, p.h1 = mulXGHASH(h)
	p.s0, p.s1 = 0, 0
	return nil
}

// mulXGHASH computes H·x^-1 mod (x^128+x^127+x^126+x^121+1) and returns it
// packed as the two 64-bit words the inner multiplier consumes.
//
// h is interpreted as four little-endian 32-bit words, named v0..v3 from
// high to low (v0 covers h[12:16], v3 covers h[0:4]); the whole 128-bit
// quantity is shifted right by one bit, carrying between words, and if the
// bit shifted out of the bottom (v3's old LSB) was 1 the constant
// 0xe1000000 is folded into the new top word.
func mulXGHASH(h []byte) (h0, h1 uint64) {
	v0 := binary.LittleEndian.Uint32(h[12:16])
	v1 := binary.LittleEndian.Uint32(h[8:12])
	v2 := binary.LittleEndian.Uint32(h[4:8])
	v3 := binary.LittleEndian.Uint32(h[0:4])

	b := v0
	v0 = b >> 1
	c := b << 31
	b = v1
	v1 = (b >> 1) | c
	c = b << 31
	b = v2
	v2 = (b >> 1) | c
	c = b << 31
	b = v3
	v3 = (b >> 1) | c

	mask := -(b & 1) // all-ones iff old v3's LSB (the bit shifted off the bottom) was 1
	v0 ^= mask & reducingE1

	h0 = uint64(v0)<<32 | uint64(v1)
	h1 = uint64(v2)<<32 | uint64(v3)
	return h0, h1
}

// Update folds p (which need not be block-aligned) into the running hash.
// Full 16-byte blocks are consumed in order; if a partial block remains, it
// is zero-padded to 16 bytes and consumed as one final block. Callers that
// want independent AAD/plaintext framing (each zero-padded on its own,
// rather than concatenated-then-padded) should call Update once per field.
func (p *Hash) Update(data []byte) {
	for len(data) >= BlockSize {
		p.updateBlock(data[:BlockSize])
		data = data[BlockSize:]
	}
	if len(data) > 0 {
		var blk [BlockSize]byte
		copy(blk[:], data)
		p.updateBlock(blk[:])
	}
}

// updateBlock folds exactly one 16-byte block into the accumulator using a
// bit-serial GF(2^128) multiply by H'. It is a direct, branchless port of
// the mathematics in RFC 8452 Appendix A: every data-dependent choice is a
// mask, never a branch, so timing depends only on block count.
func (p *Hash) updateBlock(blk []byte) {
	v0, v1 := p.h0, p.h1
	var z0, z1 uint64

	xLo := p.s1 ^ binary.LittleEndian.Uint64(blk[0:8])
	xHi := p.s0 ^ binary.LittleEndian.Uint64(blk[8:16])

	for i := 0; i < 64; i++ {
		m := uint64(int64(xHi) >> 63)
		z0 ^= v0 & m
		z1 ^= v1 & m

		m = uint64(int64(v1<<63) >> 63)
		c := v0 & 1
		v0 >>= 1
		v1 = v1>>1 | c<<63
		v0 ^= reducingE & m

		xHi <<= 1
	}

	for i := 64; i < 127; i++ {
		m := uint64(int64(xLo) >> 63)
		z0 ^= v0 & m
		z1 ^= v1 & m

		m = uint64(int64(v1<<63) >> 63)
		c := v0 & 1
		v0 >>= 1
		v1 = v1>>1 | c<<63
		v0 ^= reducingE & m

		xLo <<= 1
	}

	m := uint64(int64(xLo) >> 63)
	p.s0 = z0 ^ (v0 & m)
	p.s1 = z1 ^ (v1 & m)
}

// Sum appends the 16-byte little-endian POLYVAL digest to b and returns the
// resulting slice, following the conventions of hash.Hash.Sum.
func (p *Hash) Sum(b []byte) []byte {
	var d [BlockSize]byte
	binary.LittleEndian.PutUint64(d[0:8], p.s1)
	binary.LittleEndian.PutUint64(d[8:16], p.s0)
	return append(b, d[:]...)
}

// Zero overwrites p's key and accumulator. p must not be used afterward.
func (p *Hash) Zero() {
	p.h0, p.h1, p.s0, p.s1 = 0, 0, 0, 0
}
