package gcmsiv

import "runtime"

// zeroize overwrites each buffer with zero bytes. It is called on every
// exit path of seal/open for buffers that held subkeys, the recomputed tag,
// the CTR counter block and keystream, or (on authentication failure)
// unauthenticated plaintext; POLYVAL state is wiped separately by
// polyval.Hash.Zero. runtime.KeepAlive prevents the
// compiler from proving the writes dead and eliding them.
//
//go:noinline
func zeroize(bufs ...[]byte) {
	for _, b := range bufs {
		for i := range b {
			b[i] = 0
		}
		runtime.KeepAlive(b)
	}
}
