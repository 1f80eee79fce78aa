package crypt_test

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/tobsdb/invdb/internal/crypt"
	"gotest.tools/assert"
)

func TestRoundTrip(t *testing.T) {
	c := Default()
	inputs := [][]byte{
		{},
		[]byte("1;TV;10;1000;A\n2;Radio;3;200;B\n"),
		bytes.Repeat([]byte("x"), 1<<16),
	}

	for _, in := range inputs {
		sealed, err := c.Encrypt(in)
		assert.NilError(t, err)
		assert.Assert(t, !bytes.Contains(sealed, []byte("Radio")))

		out, err := c.Decrypt(sealed)
		assert.NilError(t, err)
		assert.Assert(t, bytes.Equal(out, in))
	}
}

func TestDefaultIsShared(t *testing.T) {
	assert.Assert(t, Default() == Default())

	other, err := NewCipher("invdb:products:fixed-key")
	assert.NilError(t, err)

	sealed, err := Default().Encrypt([]byte("hello"))
	assert.NilError(t, err)
	out, err := other.Decrypt(sealed)
	assert.NilError(t, err)
	assert.Equal(t, string(out), "hello")
}

func TestDecryptFailures(t *testing.T) {
	c := Default()

	t.Run("arbitrary bytes", func(t *testing.T) {
		_, err := c.Decrypt([]byte("1;TV;10;1000;A\n"))
		assert.Assert(t, errors.Is(err, ErrDecrypt))

		var cerr *Error
		assert.Assert(t, errors.As(err, &cerr))
		assert.Equal(t, cerr.Op, "decrypt")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := c.Decrypt(nil)
		assert.Assert(t, errors.Is(err, ErrDecrypt))
	})

	t.Run("tampered", func(t *testing.T) {
		sealed, err := c.Encrypt([]byte("1;TV;10;1000;A"))
		assert.NilError(t, err)
		sealed[len(sealed)-1] ^= 0xff

		_, err = c.Decrypt(sealed)
		assert.Assert(t, errors.Is(err, ErrDecrypt))
	})

	t.Run("foreign key", func(t *testing.T) {
		foreign, err := NewCipher("someone else")
		assert.NilError(t, err)
		sealed, err := foreign.Encrypt([]byte("1;TV;10;1000;A"))
		assert.NilError(t, err)

		_, err = c.Decrypt(sealed)
		assert.ErrorContains(t, err, "Failed to decrypt data")
	})
}
