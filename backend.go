package aesctr

import (
	"crypto/aes"
	"sync"

	"golang.org/x/sys/cpu"
)

// Backend computes the AES-128 forward cipher over a single 16-byte block
// given an expanded schedule. Both implementations below must agree on
// every input (P2); the package never mixes their output within one
// Encrypt/Decrypt call.
type Backend interface {
	Kind() BackendKind
	Encrypt(block [16]byte, sched *Schedule) [16]byte
}

// softwareBackend is the portable implementation: pure Go, no platform
// dependency, usable as a correctness oracle for the hardware path.
type softwareBackend struct{}

func (softwareBackend) Kind() BackendKind { return BackendSoftware }

func (softwareBackend) Encrypt(block [16]byte, sched *Schedule) [16]byte {
	return cipherSoftware(block, sched)
}

// hardwareBackend delegates to crypto/aes, which the Go runtime dispatches
// to AES-NI or the ARMv8 Cryptography Extensions internally when the CPU
// supports them. I1 guarantees sched[0] equals the original key bytes, so
// the key never needs to be threaded through separately.
type hardwareBackend struct{}

func (hardwareBackend) Kind() BackendKind { return BackendHardware }

func (hardwareBackend) Encrypt(block [16]byte, sched *Schedule) [16]byte {
	blk, err := aes.NewCipher(sched[0][:])
	if err != nil {
		// sched[0] is always KeySize bytes by construction (I1); a
		// rejection here means the schedule was built outside expandKey.
		panic(NewBackendError("encrypt", "crypto/aes rejected round-0 key", err))
	}
	var out [16]byte
	blk.Encrypt(out[:], block[:])
	return out
}

var (
	probeOnce    sync.Once
	hardwareGood bool
)

// probeHardware detects AES-NI / ARMv8 crypto extension support exactly
// once per process (spec §9 design note: feature probing must not happen
// per block). Grounded on the probing idiom SnellerInc-sneller's
// internal/aes/hash_amd64.go uses against golang.org/x/sys/cpu, generalized
// to also recognize the ARM64 crypto extensions since crypto/aes supports
// both.
func probeHardware() bool {
	probeOnce.Do(func() {
		hardwareGood = (cpu.X86.HasAES && cpu.X86.HasSSE2) || cpu.ARM64.HasAES
	})
	return hardwareGood
}

// Pick returns the backend the package would use for kind. BackendAuto
// probes CPU features (cached after the first call); BackendHardware and
// BackendSoftware force a specific implementation, which tests use to
// compare the two against each other (P2) and against Appendix A vectors.
func Pick(kind BackendKind) Backend {
	switch kind {
	case BackendHardware:
		return hardwareBackend{}
	case BackendSoftware:
		return softwareBackend{}
	default:
		if probeHardware() {
			return hardwareBackend{}
		}
		return softwareBackend{}
	}
}
