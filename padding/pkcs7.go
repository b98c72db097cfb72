// Package padding implements PKCS#7 padding.
//
// Unpad is deliberately lenient: a block whose trailing bytes do not form
// valid padding is returned as is instead of producing an error. Callers
// relying on this behaviour get no integrity signal from the padding.
package padding

// Pad returns msg extended with 1 to blockSize bytes, each holding the
// number of bytes added, so that the result is a multiple of blockSize.
// A message that is already aligned gets a full block of padding.
func Pad(msg []byte, blockSize int) []byte {
	n := blockSize - len(msg)%blockSize
	out := make([]byte, len(msg)+n)
	copy(out, msg)
	for i := len(msg); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// Unpad strips the padding from the final block. If the last byte is not in
// [1, blockSize], or the bytes it covers do not all equal it, block is
// returned unchanged. The result aliases block.
func Unpad(block []byte, blockSize int) []byte {
	if len(block) == 0 {
		return block
	}
	n := int(block[len(block)-1])
	if n < 1 || n > blockSize || n > len(block) {
		return block
	}
	for _, b := range block[len(block)-n:] {
		if int(b) != n {
			return block
		}
	}
	return block[:len(block)-n]
}
