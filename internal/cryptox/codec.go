// Package cryptox implements the symmetric codec used to encrypt the journal
// backing file: AES-256 in CBC mode with PKCS#7 padding.
//
// By default the codec runs with a fixed IV taken from configuration, which
// keeps files readable by earlier versions but means identical plaintexts
// always produce identical ciphertexts. WithRandomIV switches to a fresh IV
// per message, stored as the first block of the ciphertext.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// IVSize is the CBC initialization vector length in bytes.
	IVSize = aes.BlockSize
)

// ErrDecryption is matched by every *DecryptionError.
var ErrDecryption = errors.New("decryption failed")

// DecryptionError reports why a ciphertext could not be decrypted.
type DecryptionError struct {
	Reason string
}

func (e *DecryptionError) Error() string {
	return "decryption failed: " + e.Reason
}

func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryption
}

// Codec encrypts and decrypts whole buffers. It is safe for concurrent use.
type Codec struct {
	block    cipher.Block
	iv       []byte
	randomIV bool
}

// Option configures a Codec.
type Option func(*Codec)

// WithRandomIV makes Encrypt draw a new IV for every call and prepend it to
// the ciphertext. The configured IV is ignored in this mode.
func WithRandomIV() Option {
	return func(c *Codec) { c.randomIV = true }
}

// NewCodec builds a codec from a 32-byte key and a 16-byte IV.
func NewCodec(key, iv []byte, opts ...Option) (*Codec, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key size %d, want %d", len(key), KeySize)
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("invalid iv size %d, want %d", len(iv), IVSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}

	c := &Codec{block: block, iv: append([]byte(nil), iv...)}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Encrypt pads plaintext to the block size and encrypts it.
func (c *Codec) Encrypt(plaintext []byte) ([]byte, error) {
	padded := pad(plaintext, aes.BlockSize)

	if !c.randomIV {
		out := make([]byte, len(padded))
		cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(out, padded)
		return out, nil
	}

	out := make([]byte, IVSize+len(padded))
	iv := out[:IVSize]
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(out[IVSize:], padded)
	return out, nil
}

// Decrypt reverses Encrypt. A ciphertext produced under another key or IV
// usually fails the padding check; when it does not, the caller gets garbage
// and has to detect it at the next layer.
func (c *Codec) Decrypt(ciphertext []byte) ([]byte, error) {
	iv := c.iv
	if c.randomIV {
		if len(ciphertext) < IVSize+aes.BlockSize {
			return nil, &DecryptionError{Reason: "ciphertext shorter than iv and one block"}
		}
		iv, ciphertext = ciphertext[:IVSize], ciphertext[IVSize:]
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, &DecryptionError{Reason: "ciphertext is not a multiple of the block size"}
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(out, ciphertext)

	plaintext, err := unpad(out, aes.BlockSize)
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}

func pad(b []byte, size int) []byte {
	n := size - len(b)%size
	out := make([]byte, len(b)+n)
	copy(out, b)
	for i := len(b); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

func unpad(b []byte, size int) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > size || n > len(b) {
		return nil, &DecryptionError{Reason: "invalid padding"}
	}
	for _, v := range b[len(b)-n:] {
		if int(v) != n {
			return nil, &DecryptionError{Reason: "invalid padding"}
		}
	}
	return b[:len(b)-n], nil
}
