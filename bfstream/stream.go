package bfstream

import (
	"crypto/cipher"
	"errors"
	"io"
	"strconv"
)

// IVSizeError means the IV length does not match the cipher block size.
type IVSizeError int

func (e IVSizeError) Error() string {
	return "bfstream: IV length must equal block size " + strconv.Itoa(int(e))
}

type flusher interface {
	Flush() error
}

// readBlock fills buf from r and reports how many bytes were read. A short
// count marks the final chunk of the stream; it is not an error.
func readBlock(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = nil
	}
	return n, err
}

func flush(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// xorCycle sets dst[i] = data[i] ^ key[i%len(key)] for every byte of data.
func xorCycle(dst, data, key []byte) []byte {
	for i := range data {
		dst[i] = data[i] ^ key[i%len(key)]
	}
	return dst[:len(data)]
}

func checkIV(b cipher.Block, iv []byte) error {
	if len(iv) != b.BlockSize() {
		return IVSizeError(b.BlockSize())
	}
	return nil
}
