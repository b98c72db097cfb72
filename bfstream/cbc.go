package bfstream

import (
	"crypto/cipher"
	"io"

	"github.com/riobard/go-blowfish/padding"
)

// EncryptCBC encrypts src chaining each plaintext block with the previous
// ciphertext block, starting from iv.
func EncryptCBC(dst io.Writer, src io.Reader, b cipher.Block, iv []byte) error {
	if err := checkIV(b, iv); err != nil {
		return err
	}
	bs := b.BlockSize()
	buf := make([]byte, bs)
	prev := append([]byte(nil), iv...)

	for {
		n, err := readBlock(src, buf)
		if err != nil {
			return err
		}
		block := buf
		if n < bs {
			block = padding.Pad(buf[:n], bs)
		}
		xorCycle(block, block, prev)
		b.Encrypt(prev, block)
		if _, err := dst.Write(prev); err != nil {
			return err
		}
		if n < bs {
			break
		}
	}
	return flush(dst)
}

// DecryptCBC is the inverse of EncryptCBC.
func DecryptCBC(dst io.Writer, src io.Reader, b cipher.Block, iv []byte) error {
	if err := checkIV(b, iv); err != nil {
		return err
	}
	bs := b.BlockSize()
	buf := make([]byte, bs)
	out := make([]byte, bs)
	prev := append([]byte(nil), iv...)

	n, err := readBlock(src, buf)
	if err != nil {
		return err
	}
	for n == bs {
		b.Decrypt(out, buf)
		xorCycle(out, out, prev)
		copy(prev, buf)
		if n, err = readBlock(src, buf); err != nil {
			return err
		}
		plain := out
		if n < bs {
			plain = padding.Unpad(out, bs)
		}
		if _, err := dst.Write(plain); err != nil {
			return err
		}
	}
	return flush(dst)
}
