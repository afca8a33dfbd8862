package main

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWAVHeader(t *testing.T) {
	var buf bytes.Buffer
	pcm := []byte{0, 1, 2, 3}

	require.NoError(t, writeWAV(&buf, pcm))

	out := buf.Bytes()
	require.Len(t, out, 44+len(pcm))
	assert.Equal(t, "RIFF", string(out[0:4]))
	assert.Equal(t, "WAVE", string(out[8:12]))
	assert.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(out[4:8]))
	assert.Equal(t, uint32(sampleRate), binary.LittleEndian.Uint32(out[24:28]))
	assert.Equal(t, "data", string(out[36:40]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(out[40:44]))
	assert.Equal(t, pcm, out[44:])
}
