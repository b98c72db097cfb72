// Package core binds a key, an IV and a chaining mode into a ready-to-use
// stream transform. All configuration is validated up front so that no bytes
// are read or written for an invalid setup.
package core

import (
	"fmt"
	"io"

	"github.com/riobard/go-blowfish/bfstream"
	"github.com/riobard/go-blowfish/blowfish"
)

// Cipher encrypts and decrypts whole streams under one key, IV and mode.
// It holds no per-stream state and may be shared between goroutines.
type Cipher struct {
	mode  Mode
	block *blowfish.Cipher
	iv    []byte
}

// PickCipher returns a Cipher for the named mode. The IV is required for CBC
// and CFB and ignored for ECB.
func PickCipher(name string, key, iv []byte) (*Cipher, error) {
	mode, err := ParseMode(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, name)
	}
	return NewCipher(mode, key, iv)
}

// NewCipher returns a Cipher for mode.
func NewCipher(mode Mode, key, iv []byte) (*Cipher, error) {
	switch mode {
	case ECB, CBC, CFB:
	default:
		return nil, ErrModeNotSupported
	}

	var ivCopy []byte
	if mode.RequiresIV() {
		if len(iv) != blowfish.BlockSize {
			return nil, bfstream.IVSizeError(blowfish.BlockSize)
		}
		ivCopy = append([]byte(nil), iv...)
	}

	blk, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{mode: mode, block: blk, iv: ivCopy}, nil
}

// Mode returns the chaining mode of c.
func (c *Cipher) Mode() Mode { return c.mode }

// Encrypt reads src until end of stream and writes its ciphertext to dst.
func (c *Cipher) Encrypt(dst io.Writer, src io.Reader) error {
	switch c.mode {
	case ECB:
		return bfstream.EncryptECB(dst, src, c.block)
	case CBC:
		return bfstream.EncryptCBC(dst, src, c.block, c.iv)
	case CFB:
		return bfstream.EncryptCFB(dst, src, c.block, c.iv)
	}
	return ErrModeNotSupported
}

// Decrypt reads src until end of stream and writes its plaintext to dst.
func (c *Cipher) Decrypt(dst io.Writer, src io.Reader) error {
	switch c.mode {
	case ECB:
		return bfstream.DecryptECB(dst, src, c.block)
	case CBC:
		return bfstream.DecryptCBC(dst, src, c.block, c.iv)
	case CFB:
		return bfstream.DecryptCFB(dst, src, c.block, c.iv)
	}
	return ErrModeNotSupported
}
