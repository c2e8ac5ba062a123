// Package lebytes packs and unpacks little-endian integers.
//
// AES-GCM-SIV frames every multi-byte integer (KDF counters, CTR counters,
// the POLYVAL length block) as little-endian, so the KDF, CTR and
// length-block framing in this module route through here instead of
// spelling out byte order ad hoc. Package polyval loads its blocks with
// encoding/binary directly.
package lebytes

import "encoding/binary"

// PutUint32 writes v to b[0:4], least-significant byte first.
func PutUint32(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// Uint32 reads a little-endian uint32 from b[0:4].
func Uint32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// PutUint64 writes v to b[0:8], least-significant byte first.
func PutUint64(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}

// Uint64 reads a little-endian uint64 from b[0:8].
func Uint64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}
