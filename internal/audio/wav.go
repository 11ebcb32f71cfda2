package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"time"
)

const (
	// wavPCM is the WAVE format tag of uncompressed PCM.
	wavPCM = 1
	// wavHeaderSize is the size of a canonical 44-byte RIFF/WAVE header.
	wavHeaderSize = 44
	// fmtChunkSize is the size of a PCM fmt chunk.
	fmtChunkSize = 16
	// beepSampleRate is the sample rate of synthesised beeps.
	beepSampleRate = 44100
	// beepAmplitude is the peak value of synthesised samples.
	beepAmplitude = 0.3 * math.MaxInt16
	// beepOnFraction is the share of each second the beep sounds.
	beepOnFraction = 0.5
)

var (
	errNotWAV           = errors.New("not a RIFF/WAVE file")
	errUnsupportedWAV   = errors.New("only 16-bit PCM WAV is supported")
	errMissingWAVChunk  = errors.New("missing fmt or data chunk")
	errTruncatedWAVData = errors.New("data chunk is truncated")
)

// Format describes PCM samples.
type Format struct {
	// SampleRate in hertz.
	SampleRate int
	// Channels is 1 for mono, 2 for stereo.
	Channels int
	// BitDepth is the number of bits per sample.
	BitDepth int
}

// parseWAV returns the format and the PCM payload of a WAV file.
//
//nolint:cyclop // Chunk walking is a single loop with a switch.
func parseWAV(data []byte) (Format, []byte, error) {
	var (
		format   Format
		hasFmt   bool
		reader   = bytes.NewReader(data)
		riffHead [12]byte
	)

	if _, err := io.ReadFull(reader, riffHead[:]); err != nil {
		return format, nil, fmt.Errorf("read header: %w", errNotWAV)
	}

	if string(riffHead[0:4]) != "RIFF" || string(riffHead[8:12]) != "WAVE" {
		return format, nil, errNotWAV
	}

	for {
		var (
			chunkID   [4]byte
			chunkSize uint32
		)

		if _, err := io.ReadFull(reader, chunkID[:]); err != nil {
			return format, nil, errMissingWAVChunk
		}

		if err := binary.Read(reader, binary.LittleEndian, &chunkSize); err != nil {
			return format, nil, errMissingWAVChunk
		}

		switch string(chunkID[:]) {
		case "fmt ":
			var header struct {
				AudioFormat   uint16
				Channels      uint16
				SampleRate    uint32
				ByteRate      uint32
				BlockAlign    uint16
				BitsPerSample uint16
			}

			if chunkSize < fmtChunkSize {
				return format, nil, errUnsupportedWAV
			}

			if err := binary.Read(reader, binary.LittleEndian, &header); err != nil {
				return format, nil, fmt.Errorf("read fmt chunk: %w", err)
			}

			if header.AudioFormat != wavPCM || header.BitsPerSample != 16 || header.Channels == 0 {
				return format, nil, errUnsupportedWAV
			}

			format = Format{
				SampleRate: int(header.SampleRate),
				Channels:   int(header.Channels),
				BitDepth:   int(header.BitsPerSample),
			}
			hasFmt = true

			if _, err := reader.Seek(int64(chunkSize-fmtChunkSize), io.SeekCurrent); err != nil {
				return format, nil, fmt.Errorf("skip fmt extension: %w", err)
			}
		case "data":
			if !hasFmt {
				return format, nil, errMissingWAVChunk
			}

			if int64(chunkSize) > int64(reader.Len()) {
				return format, nil, errTruncatedWAVData
			}

			pcm := make([]byte, chunkSize)
			if _, err := io.ReadFull(reader, pcm); err != nil {
				return format, nil, errTruncatedWAVData
			}

			return format, pcm, nil
		default:
			// Chunks are word aligned.
			if _, err := reader.Seek(int64(chunkSize+chunkSize%2), io.SeekCurrent); err != nil {
				return format, nil, fmt.Errorf("skip chunk: %w", err)
			}
		}
	}
}

// encodeWAV wraps mono 16-bit samples into a WAV file.
func encodeWAV(sampleRate int, samples []int16) []byte {
	var (
		dataSize = len(samples) * 2
		buf      = bytes.NewBuffer(make([]byte, 0, wavHeaderSize+dataSize))
	)

	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(wavHeaderSize-8+dataSize)) //nolint:gosec // Bounded by beep length.
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, struct {
		Size          uint32
		AudioFormat   uint16
		Channels      uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
	}{
		Size:          fmtChunkSize,
		AudioFormat:   wavPCM,
		Channels:      1,
		SampleRate:    uint32(sampleRate), //nolint:gosec // Sample rates are small positive numbers.
		ByteRate:      uint32(sampleRate * 2), //nolint:gosec // Same as above.
		BlockAlign:    2,
		BitsPerSample: 16,
	})
	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(dataSize)) //nolint:gosec // Bounded by beep length.
	_ = binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

// Beep synthesises a WAV file of a sine tone at frequency hertz that sounds for
// the first half of every second of length.
func Beep(frequency int, length time.Duration) []byte {
	if length < time.Second {
		length = time.Second
	}

	count := int(length.Seconds() * beepSampleRate)
	samples := make([]int16, count)

	for i := range samples {
		if float64(i%beepSampleRate) >= beepOnFraction*beepSampleRate {
			continue
		}

		phase := 2 * math.Pi * float64(frequency) * float64(i) / beepSampleRate
		samples[i] = int16(beepAmplitude * math.Sin(phase))
	}

	return encodeWAV(beepSampleRate, samples)
}
