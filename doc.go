// Package aesctr implements AES-128 in CTR mode over an in-place byte
// buffer, with two interchangeable block backends and a scoped worker pool
// for parallel encryption of large buffers.
//
// # Overview
//
// aesctr turns a 128-bit key and a buffer into a keystream XORed in place;
// CTR mode makes encryption and decryption the same operation. The package
// is deliberately narrow: it does not derive keys, authenticate ciphertext,
// or define an on-disk format. Callers own key management, IV storage, and
// integrity checking.
//
// # Block Backends
//
// Two backends compute the same 10-round AES-128 permutation and are
// required to produce bit-identical output for the same key and block:
//
//   - a hardware-accelerated backend, delegating to the standard library's
//     crypto/aes, which the Go runtime itself dispatches to AES-NI or the
//     ARMv8 Cryptography Extensions when present
//   - a portable software backend, a straightforward SubBytes/ShiftRows/
//     MixColumns/AddRoundKey implementation with no platform dependency
//
// Which backend runs is decided once per process by probing CPU features
// with golang.org/x/sys/cpu, not on every block.
//
// # Basic Usage
//
//	buf := []byte("attack at dawn, twelve bells")
//	key := []byte("0123456789abcdef")
//
//	iv, err := aesctr.Encrypt(buf, key)
//	if err != nil {
//	    panic(err)
//	}
//
//	if err := aesctr.Decrypt(buf, key, iv); err != nil {
//	    panic(err)
//	}
//
// # Parallel Encryption
//
// For large buffers, Decompose splits the buffer into independent,
// non-overlapping BlockTasks that can be handed to a Pool's Scope and run
// concurrently without any task needing to outlive the pool:
//
//	pool := aesctr.NewPool()
//	defer pool.Close()
//
//	tasks, iv, err := aesctr.Decompose(buf, key, nil)
//	if err != nil {
//	    panic(err)
//	}
//	pool.Scoped(func(s *aesctr.Scope) {
//	    for _, t := range tasks {
//	        t := t
//	        s.AssignTask(t.Encrypt)
//	    }
//	})
//	_ = iv
//
// # Security Considerations
//
// Protected against: nothing by itself. CTR mode provides confidentiality
// only when a (key, IV) pair is never reused and the buffer is never
// exposed to a chosen-ciphertext attacker without separate authentication.
//
// Not protected against: ciphertext tampering (no MAC), IV/nonce reuse
// across encryptions (the caller's responsibility), key derivation from a
// password (out of scope — see a KDF such as Argon2id for that), traffic
// analysis, or side-channel attacks against the software backend's table
// lookups.
package aesctr
