// Package inspect reports structural properties of a ciphertext without the
// key. Identical plaintext blocks encrypt to identical ciphertext blocks in ECB
// mode, so repeated blocks are a strong hint that ECB was used.
package inspect

import (
	"bufio"
	"errors"
	"io"

	"github.com/riobard/go-blowfish/internal"
)

// Report summarises a scanned ciphertext.
type Report struct {
	Blocks   int // full blocks
	Repeated int // full blocks probably seen earlier in the stream
	Trailing int // bytes after the last full block
}

// Aligned reports whether the ciphertext is a whole number of blocks, as ECB
// and CBC output always is.
func (r Report) Aligned() bool { return r.Trailing == 0 }

// LikelyECB reports whether repeated blocks were found.
func (r Report) LikelyECB() bool { return r.Repeated > 0 }

// Scan reads src to the end and counts its blocks of blockSize bytes.
// Repetition is tracked with a rotating Bloom filter, so Repeated may include
// rare false positives and misses repeats that are far apart.
func Scan(src io.Reader, blockSize int) (Report, error) {
	var rep Report
	if blockSize < 1 {
		return rep, errors.New("inspect: block size must be positive")
	}
	seen := internal.NewBloomRing(internal.DefaultSlots, internal.DefaultCapacity, internal.DefaultFPR)
	br := bufio.NewReader(src)
	buf := make([]byte, blockSize)

	for {
		n, err := io.ReadFull(br, buf)
		switch {
		case err == nil:
			rep.Blocks++
			if seen.Seen(buf) {
				rep.Repeated++
			}
			continue
		case errors.Is(err, io.EOF):
		case errors.Is(err, io.ErrUnexpectedEOF):
			rep.Trailing = n
		default:
			return rep, err
		}
		return rep, nil
	}
}
