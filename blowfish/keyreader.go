package blowfish

// keyReader yields the key bytes cyclically. Its position carries over
// between calls to next.
type keyReader struct {
	key []byte
	pos int
}

func newKeyReader(key []byte) *keyReader { return &keyReader{key: key} }

// next packs the next four key bytes into a big-endian word, wrapping to the
// start of the key as often as needed.
func (kr *keyReader) next() uint32 {
	var w uint32
	for i := 0; i < 4; i++ {
		w = w<<8 | uint32(kr.key[kr.pos])
		kr.pos++
		if kr.pos == len(kr.key) {
			kr.pos = 0
		}
	}
	return w
}
