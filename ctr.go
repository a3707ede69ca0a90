package aesctr

import "crypto/rand"

// reverseBlock returns block with its byte order reversed (byte 0 <-> byte
// 15). The backend boundary reverses the keystream before XOR, per the
// byte-order resolution recorded in SPEC_FULL.md §4.1.
func reverseBlock(block [16]byte) [16]byte {
	var out [16]byte
	for i := range block {
		out[i] = block[15-i]
	}
	return out
}

func randomIV() (IV, error) {
	var iv IV
	if _, err := rand.Read(iv[:]); err != nil {
		return IV{}, NewBackendError("select", "reading entropy for iv", err)
	}
	return iv, nil
}

// xorKeystream runs the CTR construction over buf in place using the given
// key and starting counter, with no parallelism. Encrypt and Decrypt are
// the same transform (I2): CTR mode only ever XORs a keystream.
func xorKeystream(buf []byte, key []byte, iv IV) error {
	if err := validateBuffer(buf, "buf"); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		panic(err)
	}
	sched, err := expandKey(key)
	if err != nil {
		return err
	}
	backend := Pick(BackendAuto)

	counter := iv
	for offset := 0; offset < len(buf); offset += BlockSize {
		end := offset + BlockSize
		if end > len(buf) {
			end = len(buf)
		}
		ks := reverseBlock(backend.Encrypt([16]byte(counter), sched))
		chunk := buf[offset:end]
		for i := range chunk {
			chunk[i] ^= ks[i]
		}
		counter = counter.Add(1)
	}
	return nil
}

// Encrypt encrypts buf in place under key, generating a fresh random IV.
// The returned IV must be supplied to Decrypt; losing it makes the
// ciphertext unrecoverable. Key derivation, IV storage, and integrity
// protection are the caller's responsibility (out of scope here).
func Encrypt(buf []byte, key []byte) (IV, error) {
	iv, err := randomIV()
	if err != nil {
		return IV{}, err
	}
	if err := xorKeystream(buf, key, iv); err != nil {
		return IV{}, err
	}
	return iv, nil
}

// Decrypt decrypts buf in place under key and iv. Since CTR encryption and
// decryption are the same transform, this is xorKeystream by another name;
// it exists so call sites read correctly regardless of direction.
func Decrypt(buf []byte, key []byte, iv IV) error {
	return xorKeystream(buf, key, iv)
}

// EncryptDecrypt runs the CTR transform in place. If iv is nil, a fresh
// random IV is generated and returned; otherwise *iv is used as the
// starting counter. It exists because CTR mode makes "encrypt" and
// "decrypt" the same call, and some callers want that symmetry explicit
// rather than picking one of Encrypt/Decrypt by convention.
func EncryptDecrypt(buf []byte, key []byte, iv *IV) (IV, error) {
	var use IV
	if iv == nil {
		generated, err := randomIV()
		if err != nil {
			return IV{}, err
		}
		use = generated
	} else {
		use = *iv
	}
	if err := xorKeystream(buf, key, use); err != nil {
		return IV{}, err
	}
	return use, nil
}
