package gcmsiv

import (
	saferand "github.com/ericlagergren/saferand"
)

// SealAuto generates a fresh, cryptographically random NonceSize-byte
// nonce, seals plaintext under it, and returns nonce || ciphertext || tag.
//
// Auto-nonce mode trades the caller's nonce-management burden for trust in
// the platform CSPRNG (here, saferand's Read): a weak or predictable source
// would erode the nonce-misuse-resistance this construction otherwise
// provides "for free".
func (a *AEAD) SealAuto(plaintext, additionalData []byte) ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := saferand.Read(nonce); err != nil {
		return nil, err
	}
	return a.Seal(nonce, nonce, plaintext, additionalData), nil
}

// OpenAuto splits the leading NonceSize bytes off input as the nonce and
// delegates to Open. Inputs shorter than NonceSize are reported as
// authentication failure (ErrOpen), not a distinct invalid-argument error —
// matching this construction's source behavior, where "too short to even
// contain a nonce" and "tag mismatch" are both just "not a valid message".
func (a *AEAD) OpenAuto(dst, input, additionalData []byte) ([]byte, error) {
	if len(input) < NonceSize {
		return nil, ErrOpen
	}
	return a.Open(dst, input[:NonceSize], input[NonceSize:], additionalData)
}
