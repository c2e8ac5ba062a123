// Package gcmsiv implements AES-GCM-SIV (RFC 8452): a nonce-misuse-resistant
// authenticated encryption scheme built from three pieces —
//
//   - the POLYVAL universal hash (package polyval), realized via the
//     GHASH-shaped bit-serial multiplier RFC 8452 Appendix A describes;
//   - a counter-mode key-derivation function that turns (master key, nonce)
//     into a per-message authentication key and encryption key; and
//   - a synthetic-IV composition: POLYVAL over the framed (AAD, plaintext)
//     produces a tag that doubles as the AES-CTR counter seed.
package gcmsiv
