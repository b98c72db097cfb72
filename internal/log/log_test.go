package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetJSONOutput(&buf)
	defer SetOutput(&bytes.Buffer{})

	SetVerbose(false)
	Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	SetVerbose(true)
	defer SetVerbose(false)
	Debug().Str("mode", "cbc").Msg("shown")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "cbc", entry["mode"])
	assert.Equal(t, "shown", entry["message"])
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	SetJSONOutput(&buf)
	defer SetOutput(&bytes.Buffer{})

	Printf("wrote %d bytes", 24)
	assert.Contains(t, buf.String(), `"message":"wrote 24 bytes"`)
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestSetOutputKeepsLevel(t *testing.T) {
	SetVerbose(true)
	defer SetVerbose(false)
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(&bytes.Buffer{})

	Debug().Msg("console")
	assert.Contains(t, buf.String(), "console")
}
