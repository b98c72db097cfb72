package blowfish

import (
	"encoding/binary"
	"strconv"
)

// BlockSize is the Blowfish block size in bytes.
const BlockSize = 8

// Bounds on the key length in bytes.
const (
	MinKeySize = 1
	MaxKeySize = 72
)

// KeySizeError means the key length is outside [MinKeySize, MaxKeySize].
type KeySizeError int

func (e KeySizeError) Error() string {
	return "blowfish: invalid key size " + strconv.Itoa(int(e))
}

// Cipher holds the round state derived from one key: 18 subkeys and four
// 256-entry S-boxes.
type Cipher struct {
	p [18]uint32
	s [4][256]uint32
}

// NewCipher derives the round state for key.
func NewCipher(key []byte) (*Cipher, error) {
	if k := len(key); k < MinKeySize || k > MaxKeySize {
		return nil, KeySizeError(k)
	}
	c := &Cipher{p: initP, s: initS}
	c.expandKey(key)
	return c, nil
}

// expandKey mixes key into the subkeys and then replaces every subkey and
// S-box entry, in order, with the running encryption of an all-zero block.
func (c *Cipher) expandKey(key []byte) {
	kr := newKeyReader(key)
	for i := range c.p {
		c.p[i] ^= kr.next()
	}

	var l, r uint32
	for i := 0; i < len(c.p); i += 2 {
		l, r = encryptBlock(l, r, c)
		c.p[i], c.p[i+1] = l, r
	}
	for t := range c.s {
		for i := 0; i < len(c.s[t]); i += 2 {
			l, r = encryptBlock(l, r, c)
			c.s[t][i], c.s[t][i+1] = l, r
		}
	}
}

// BlockSize returns the cipher's block size.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the 8-byte block in src into dst.
// Dst and src may overlap entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("blowfish: input not full block")
	}
	if len(dst) < BlockSize {
		panic("blowfish: output not full block")
	}
	l, r := encryptBlock(binary.BigEndian.Uint32(src[0:4]), binary.BigEndian.Uint32(src[4:8]), c)
	binary.BigEndian.PutUint32(dst[0:4], l)
	binary.BigEndian.PutUint32(dst[4:8], r)
}

// Decrypt decrypts the 8-byte block in src into dst.
// Dst and src may overlap entirely or not at all.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("blowfish: input not full block")
	}
	if len(dst) < BlockSize {
		panic("blowfish: output not full block")
	}
	l, r := decryptBlock(binary.BigEndian.Uint32(src[0:4]), binary.BigEndian.Uint32(src[4:8]), c)
	binary.BigEndian.PutUint32(dst[0:4], l)
	binary.BigEndian.PutUint32(dst[4:8], r)
}

// EncryptBlock encrypts the block given as its left and right halves.
func (c *Cipher) EncryptBlock(l, r uint32) (uint32, uint32) { return encryptBlock(l, r, c) }

// DecryptBlock is the inverse of EncryptBlock.
func (c *Cipher) DecryptBlock(l, r uint32) (uint32, uint32) { return decryptBlock(l, r, c) }
