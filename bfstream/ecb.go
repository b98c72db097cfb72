package bfstream

import (
	"crypto/cipher"
	"io"

	"github.com/riobard/go-blowfish/padding"
)

// EncryptECB encrypts every block of src independently.
func EncryptECB(dst io.Writer, src io.Reader, b cipher.Block) error {
	bs := b.BlockSize()
	buf := make([]byte, bs)
	out := make([]byte, bs)

	for {
		n, err := readBlock(src, buf)
		if err != nil {
			return err
		}
		block := buf
		if n < bs {
			block = padding.Pad(buf[:n], bs)
		}
		b.Encrypt(out, block)
		if _, err := dst.Write(out); err != nil {
			return err
		}
		if n < bs {
			break
		}
	}
	return flush(dst)
}

// DecryptECB is the inverse of EncryptECB.
func DecryptECB(dst io.Writer, src io.Reader, b cipher.Block) error {
	bs := b.BlockSize()
	buf := make([]byte, bs)
	out := make([]byte, bs)

	n, err := readBlock(src, buf)
	if err != nil {
		return err
	}
	for n == bs {
		b.Decrypt(out, buf)
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
