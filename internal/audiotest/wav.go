// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math"
)

// WAV16 builds a canonical 44-byte-header PCM 16-bit WAV file in memory.
// samples are interleaved.
func WAV16(sampleRate, channels int, samples []int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}

	return pcmWAV(sampleRate, channels, 16, data)
}

// WAV8 builds an 8-bit PCM WAV file. 8-bit WAV samples are unsigned with
// silence at 128.
func WAV8(sampleRate, channels int, samples []uint8) []byte {
	return pcmWAV(sampleRate, channels, 8, samples)
}

func pcmWAV(sampleRate, channels, bitsPerSample int, data []byte) []byte {
	blockAlign := uint16(channels * bitsPerSample / 8)
	byteRate := uint32(sampleRate) * uint32(blockAlign)
	dataSize := uint32(len(data))

	out := make([]byte, 44+len(data))

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], 36+dataSize)
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(out[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(out[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], byteRate)
	binary.LittleEndian.PutUint16(out[32:34], blockAlign)
	binary.LittleEndian.PutUint16(out[34:36], uint16(bitsPerSample))

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], dataSize)
	copy(out[44:], data)

	return out
}

// SineWAV is a WAV16 file of frames frames of a half-scale sine wave,
// identical on every channel.
func SineWAV(sampleRate, channels, frames int, frequency float64) []byte {
	samples := make([]int16, frames*channels)
	for f := range frames {
		v := int16(16384 * math.Sin(2*math.Pi*frequency*float64(f)/float64(sampleRate)))
		for c := range channels {
			samples[f*channels+c] = v
		}
	}

	return WAV16(sampleRate, channels, samples)
}
