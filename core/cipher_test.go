package core

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riobard/go-blowfish/bfstream"
	"github.com/riobard/go-blowfish/blowfish"
)

var (
	testKey = []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF, 0xF0, 0xE1, 0xD2, 0xC3, 0xB4, 0xA5, 0x96, 0x87}
	testIV  = []byte{0xFE, 0xDC, 0xBA, 0x98, 0x76, 0x54, 0x32, 0x10}
)

func TestParseMode(t *testing.T) {
	for name, want := range map[string]Mode{"ecb": ECB, "CBC": CBC, " Cfb\n": CFB} {
		m, err := ParseMode(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, m)
	}
	_, err := ParseMode("ofb")
	assert.ErrorIs(t, err, ErrModeNotSupported)
}

func TestModeString(t *testing.T) {
	for _, name := range ListModes() {
		m, err := ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}
	assert.Equal(t, "unknown", Mode(0).String())
}

func TestListModes(t *testing.T) {
	assert.Equal(t, []string{"cbc", "cfb", "ecb"}, ListModes())
}

func TestRequiresIV(t *testing.T) {
	assert.False(t, ECB.RequiresIV())
	assert.True(t, CBC.RequiresIV())
	assert.True(t, CFB.RequiresIV())
}

func TestPickCipherErrors(t *testing.T) {
	_, err := PickCipher("xts", testKey, testIV)
	assert.ErrorIs(t, err, ErrModeNotSupported)
	assert.Contains(t, err.Error(), `"xts"`)

	_, err = PickCipher("cbc", nil, testIV)
	var ks blowfish.KeySizeError
	require.True(t, errors.As(err, &ks))
	assert.Equal(t, blowfish.KeySizeError(0), ks)

	_, err = PickCipher("cbc", make([]byte, 73), testIV)
	require.True(t, errors.As(err, &ks))

	for _, mode := range []string{"cbc", "cfb"} {
		_, err = PickCipher(mode, testKey, testIV[:4])
		var ivErr bfstream.IVSizeError
		assert.True(t, errors.As(err, &ivErr), mode)

		_, err = PickCipher(mode, testKey, nil)
		assert.True(t, errors.As(err, &ivErr), mode)
	}

	_, err = NewCipher(Mode(9), testKey, nil)
	assert.ErrorIs(t, err, ErrModeNotSupported)
}

func TestECBIgnoresIV(t *testing.T) {
	a, err := PickCipher("ecb", testKey, nil)
	require.NoError(t, err)
	b, err := PickCipher("ecb", testKey, []byte("whatever length"))
	require.NoError(t, err)

	var x, y bytes.Buffer
	require.NoError(t, a.Encrypt(&x, strings.NewReader("identical")))
	require.NoError(t, b.Encrypt(&y, strings.NewReader("identical")))
	assert.Equal(t, x.Bytes(), y.Bytes())
}

func TestDispatch(t *testing.T) {
	msg := "7654321 Now is the time for \x00"
	wantCFB := []byte{
		0xE7, 0x32, 0x14, 0xA2, 0x82, 0x21, 0x39, 0xCA, 0xF2, 0x6E, 0xCF, 0x6D, 0x2E, 0xB9, 0xE7, 0x6E,
		0x3D, 0xA3, 0xDE, 0x04, 0xD1, 0x51, 0x72, 0x00, 0x51, 0x9D, 0x57, 0xA6, 0xC3,
	}
	for _, name := range ListModes() {
		c, err := PickCipher(name, testKey, testIV)
		require.NoError(t, err)

		var ct, pt bytes.Buffer
		require.NoError(t, c.Encrypt(&ct, strings.NewReader(msg)))
		if c.Mode() == CFB {
			assert.Equal(t, wantCFB, ct.Bytes())
		}
		require.NoError(t, c.Decrypt(&pt, &ct))
		assert.Equal(t, msg, pt.String(), name)
	}
}

func TestIVIsCopied(t *testing.T) {
	iv := append([]byte{}, testIV...)
	c, err := PickCipher("cbc", testKey, iv)
	require.NoError(t, err)
	var before bytes.Buffer
	require.NoError(t, c.Encrypt(&before, strings.NewReader("payload")))

	iv[0] ^= 0xFF
	var after bytes.Buffer
	require.NoError(t, c.Encrypt(&after, strings.NewReader("payload")))
	assert.Equal(t, before.Bytes(), after.Bytes())
}
