package blowfish

import "testing"

func TestKeyReaderWraps(t *testing.T) {
	kr := newKeyReader([]byte{1, 2, 3})
	for i, want := range []uint32{0x01020301, 0x02030102, 0x03010203, 0x01020301} {
		if got := kr.next(); got != want {
			t.Errorf("word %d = %08x, want %08x", i, got, want)
		}
	}
}

func TestKeyReaderSingleByte(t *testing.T) {
	kr := newKeyReader([]byte{0xAB})
	if got := kr.next(); got != 0xABABABAB {
		t.Fatalf("next = %08x, want abababab", got)
	}
}

func TestKeyReaderExactWords(t *testing.T) {
	kr := newKeyReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	for i, want := range []uint32{0x01020304, 0x05060708, 0x01020304} {
		if got := kr.next(); got != want {
			t.Errorf("word %d = %08x, want %08x", i, got, want)
		}
	}
}
