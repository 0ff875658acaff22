// Package audio frames raw linear PCM samples into WAV containers.
package audio

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Format describes uncompressed linear PCM.
type Format struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
}

// DefaultFormat matches the audio returned by the Gemini TTS models.
func DefaultFormat() Format {
	return Format{
		SampleRate:    24000,
		Channels:      1,
		BitsPerSample: 16,
	}
}

const headerSize = 44

// EncodeWAV frames pcm into a canonical WAV file: a 44-byte RIFF header
// followed by the unmodified sample bytes. Chunk sizes are computed from
// the data length.
func EncodeWAV(pcm []byte, format Format) []byte {
	var buf bytes.Buffer
	buf.Grow(headerSize + len(pcm))

	writeHeader(&buf, len(pcm), format)
	buf.Write(pcm)

	return buf.Bytes()
}

// WriteWAV writes the framed file to w.
func WriteWAV(w io.Writer, pcm []byte, format Format) error {
	var header bytes.Buffer
	writeHeader(&header, len(pcm), format)

	if _, err := w.Write(header.Bytes()); err != nil {
		return err
	}

	_, err := w.Write(pcm)
	return err
}

func writeHeader(buf *bytes.Buffer, dataSize int, format Format) {
	blockAlign := format.Channels * format.BitsPerSample / 8
	byteRate := format.SampleRate * blockAlign

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // linear PCM
	binary.Write(buf, binary.LittleEndian, uint16(format.Channels))
	binary.Write(buf, binary.LittleEndian, uint32(format.SampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(format.BitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))
}
