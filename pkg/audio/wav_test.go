package audio_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/voxlabs/chirp/pkg/audio"

	"github.com/stretchr/testify/require"
)

func TestEncodeWAVHeader(t *testing.T) {
	pcm := bytes.Repeat([]byte{0x12, 0x34}, 500)

	out := audio.EncodeWAV(pcm, audio.DefaultFormat())

	require.Len(t, out, 44+len(pcm))

	require.Equal(t, "RIFF", string(out[0:4]))
	require.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(out[4:8]))
	require.Equal(t, "WAVE", string(out[8:12]))

	require.Equal(t, "fmt ", string(out[12:16]))
	require.Equal(t, uint32(16), binary.LittleEndian.Uint32(out[16:20]))
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(out[20:22]))
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(out[22:24]))
	require.Equal(t, uint32(24000), binary.LittleEndian.Uint32(out[24:28]))
	require.Equal(t, uint32(48000), binary.LittleEndian.Uint32(out[28:32]))
	require.Equal(t, uint16(2), binary.LittleEndian.Uint16(out[32:34]))
	require.Equal(t, uint16(16), binary.LittleEndian.Uint16(out[34:36]))

	require.Equal(t, "data", string(out[36:40]))
	require.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(out[40:44]))

	require.Equal(t, pcm, out[44:])
}

func TestEncodeWAVEmpty(t *testing.T) {
	out := audio.EncodeWAV(nil, audio.DefaultFormat())

	require.Len(t, out, 44)
	require.Equal(t, uint32(36), binary.LittleEndian.Uint32(out[4:8]))
	require.Equal(t, uint32(0), binary.LittleEndian.Uint32(out[40:44]))
}

func TestEncodeWAVStereo(t *testing.T) {
	format := audio.Format{
		SampleRate:    44100,
		Channels:      2,
		BitsPerSample: 16,
	}

	out := audio.EncodeWAV(make([]byte, 8), format)

	require.Equal(t, uint16(2), binary.LittleEndian.Uint16(out[22:24]))
	require.Equal(t, uint32(44100), binary.LittleEndian.Uint32(out[24:28]))
	require.Equal(t, uint32(176400), binary.LittleEndian.Uint32(out[28:32]))
	require.Equal(t, uint16(4), binary.LittleEndian.Uint16(out[32:34]))
}

func TestWriteWAV(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}

	var buf bytes.Buffer
	require.NoError(t, audio.WriteWAV(&buf, pcm, audio.DefaultFormat()))

	require.Equal(t, audio.EncodeWAV(pcm, audio.DefaultFormat()), buf.Bytes())
}
