package bfstream

import (
	"crypto/cipher"
	"io"
)

// EncryptCFB encrypts src in full-block cipher feedback mode. The keystream
// for each block is the encryption of the previous ciphertext block, or of iv
// for the first one. A short final chunk uses only the leading keystream bytes.
func EncryptCFB(dst io.Writer, src io.Reader, b cipher.Block, iv []byte) error {
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
		b.Encrypt(prev, prev)
		ct := xorCycle(prev, buf[:n], prev)
		if n > 0 {
			if _, err := dst.Write(ct); err != nil {
				return err
			}
		}
		if n < bs {
			break
		}
	}
	return flush(dst)
}

// DecryptCFB is the inverse of EncryptCFB. It runs the block cipher forward,
// like the encrypter.
func DecryptCFB(dst io.Writer, src io.Reader, b cipher.Block, iv []byte) error {
	if err := checkIV(b, iv); err != nil {
		return err
	}
	bs := b.BlockSize()
	buf := make([]byte, bs)
	ks := make([]byte, bs)
	prev := append([]byte(nil), iv...)

	for {
		n, err := readBlock(src, buf)
		if err != nil {
			return err
		}
		b.Encrypt(ks, prev)
		copy(prev, buf[:n])
		pt := xorCycle(ks, buf[:n], ks)
		if n > 0 {
			if _, err := dst.Write(pt); err != nil {
				return err
			}
		}
		if n < bs {
			break
		}
	}
	return flush(dst)
}
