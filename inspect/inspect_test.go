package inspect

import (
	"bytes"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riobard/go-blowfish/bfstream"
	"github.com/riobard/go-blowfish/blowfish"
)

func TestScanECBAndCBC(t *testing.T) {
	b, err := blowfish.NewCipher([]byte("inspection key"))
	require.NoError(t, err)
	plain := bytes.Repeat([]byte("YELLOW SUBMARINE"), 8)

	var ecb bytes.Buffer
	require.NoError(t, bfstream.EncryptECB(&ecb, bytes.NewReader(plain), b))
	rep, err := Scan(&ecb, blowfish.BlockSize)
	require.NoError(t, err)
	assert.Equal(t, 17, rep.Blocks)
	assert.Equal(t, 14, rep.Repeated)
	assert.True(t, rep.Aligned())
	assert.True(t, rep.LikelyECB())

	var cbc bytes.Buffer
	require.NoError(t, bfstream.EncryptCBC(&cbc, bytes.NewReader(plain), b, []byte("initvect")))
	rep, err = Scan(&cbc, blowfish.BlockSize)
	require.NoError(t, err)
	assert.Equal(t, 17, rep.Blocks)
	assert.False(t, rep.LikelyECB())
}

func TestScanTrailing(t *testing.T) {
	rep, err := Scan(bytes.NewReader(make([]byte, 19)), 8)
	require.NoError(t, err)
	assert.Equal(t, Report{Blocks: 2, Repeated: 1, Trailing: 3}, rep)
	assert.False(t, rep.Aligned())
}

func TestScanEmpty(t *testing.T) {
	rep, err := Scan(bytes.NewReader(nil), 8)
	require.NoError(t, err)
	assert.Equal(t, Report{}, rep)
}

func TestScanErrors(t *testing.T) {
	_, err := Scan(bytes.NewReader(nil), 0)
	assert.Error(t, err)

	_, err = Scan(iotest.TimeoutReader(bytes.NewReader(make([]byte, 64))), 8)
	assert.ErrorIs(t, err, iotest.ErrTimeout)
}
