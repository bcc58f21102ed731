package cryptox

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

// FitSecret returns the UTF-8 bytes of secret truncated to size, or padded
// with zero bytes when shorter.
func FitSecret(secret string, size int) []byte {
	out := make([]byte, size)
	copy(out, secret)
	return out
}

// DeriveKey stretches a secret into a 32-byte key with Argon2id.
func DeriveKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, KeySize)
}

// Wipe overwrites b with zeros. Used to drop key material once the cipher
// has been built. Nil is fine.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// KeyDerivation selects how the configured key secret becomes an AES key.
type KeyDerivation string

const (
	// KeyDerivationTruncate uses the secret bytes directly, cut or zero-padded
	// to KeySize.
	KeyDerivationTruncate KeyDerivation = "truncate"
	// KeyDerivationArgon2id runs the secret through DeriveKey, salted with the IV.
	KeyDerivationArgon2id KeyDerivation = "argon2id"
)

// KeyMaterial turns configuration secrets into a key and IV of the sizes
// NewCodec expects. Callers should Wipe the key after building the codec.
func KeyMaterial(keySecret, ivSecret string, kd KeyDerivation) (key, iv []byte, err error) {
	iv = FitSecret(ivSecret, IVSize)

	switch kd {
	case "", KeyDerivationTruncate:
		key = FitSecret(keySecret, KeySize)
	case KeyDerivationArgon2id:
		key = DeriveKey([]byte(keySecret), iv)
	default:
		return nil, nil, fmt.Errorf("unknown key derivation %q", kd)
	}

	return key, iv, nil
}
