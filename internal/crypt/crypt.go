// Package crypt seals the persisted data file.
//
// Every store in the process shares one hardcoded key. The key is a
// placeholder: it keeps the file unreadable to casual inspection, nothing
// more. The only contract is Decrypt(Encrypt(x)) == x for the same key and
// that bytes not produced by Encrypt are rejected.
package crypt

import (
	"bytes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const (
	default_passphrase = "invdb:products:fixed-key"
	key_info           = "invdb data file v1"
)

// file header, also bound as associated data
var magic = []byte("IDB1")

var ErrDecrypt = errors.New("message authentication failed")

type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("Failed to %s data: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type Cipher struct {
	aead cipher.AEAD
}

// NewCipher derives a 256-bit key from passphrase.
func NewCipher(passphrase string) (*Cipher, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	kdf := hkdf.New(sha256.New, []byte(passphrase), nil, []byte(key_info))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, &Error{"derive key for", err}
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, &Error{"derive key for", err}
	}
	return &Cipher{aead}, nil
}

var (
	default_cipher *Cipher
	default_once   sync.Once
)

// Default returns the process-wide cipher.
func Default() *Cipher {
	default_once.Do(func() {
		c, err := NewCipher(default_passphrase)
		if err != nil {
			panic(err)
		}
		default_cipher = c
	})
	return default_cipher
}

// Encrypt returns magic || nonce || sealed(plain).
func (c *Cipher) Encrypt(plain []byte) ([]byte, error) {
	nonce_size := c.aead.NonceSize()
	out := make([]byte, len(magic)+nonce_size, len(magic)+nonce_size+len(plain)+c.aead.Overhead())
	copy(out, magic)

	nonce := out[len(magic):]
	if _, err := rand.Read(nonce); err != nil {
		return nil, &Error{"encrypt", err}
	}

	return c.aead.Seal(out, nonce, plain, magic), nil
}

func (c *Cipher) Decrypt(data []byte) ([]byte, error) {
	header := len(magic) + c.aead.NonceSize()
	if len(data) < header+c.aead.Overhead() || !bytes.Equal(data[:len(magic)], magic) {
		return nil, &Error{"decrypt", ErrDecrypt}
	}

	nonce := data[len(magic):header]
	plain, err := c.aead.Open(nil, nonce, data[header:], magic)
	if err != nil {
		return nil, &Error{"decrypt", ErrDecrypt}
	}
	return plain, nil
}
