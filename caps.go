package gcmsiv

import "golang.org/x/sys/cpu"

// Capabilities reports hardware AES support detected on the host. Every
// code path in this package is portable Go (crypto/aes's software path plus
// the in-package POLYVAL multiplier); nothing here branches on these bits.
// It exists so a caller can log or export metrics about the platform it's
// running on without this package doing any logging of its own — a
// key-handling primitive has no business owning a log sink.
type Capabilities struct {
	// HasAESNI reports whether the host's x86 CPU advertises AES-NI.
	HasAESNI bool
	// HasARMv8AES reports whether the host's ARM64 CPU advertises the
	// ARMv8 Cryptography Extensions' AES instructions.
	HasARMv8AES bool
}

// DetectCapabilities snapshots the capabilities of the running host.
func DetectCapabilities() Capabilities {
	return Capabilities{
		HasAESNI:    cpu.X86.HasAES,
		HasARMv8AES: cpu.ARM64.HasAES,
	}
}
