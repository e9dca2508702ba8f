// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ik5/granulizer/audio"
	"github.com/ik5/granulizer/formats/wav"
	"github.com/ik5/granulizer/internal/audiotest"
)

// Example_decoding decodes a small WAV file into a buffer.
func Example_decoding() {
	data := audiotest.WAV16(16000, 1, []int16{0, 16384, -16384, 0, 0})

	src, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	buf, err := audio.Collect(src)
	if err != nil {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", buf.SampleRate())
	fmt.Printf("Channels: %d\n", buf.Channels())
	fmt.Printf("Samples: %v\n", buf.Channel(0))
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Samples: [0 0.5 -0.5 0 0]
}

// Example_encoding writes stereo frames to a WAV file.
func Example_encoding() {
	f, err := os.CreateTemp("", "example-*.wav")
	if err != nil {
		fmt.Printf("Create error: %v\n", err)
		return
	}
	defer os.Remove(f.Name())
	defer f.Close()

	enc := wav.NewEncoder(f, 8000, 2)
	if err := enc.Write(make([]float32, 2*1000)); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}
	if err := enc.Close(); err != nil {
		fmt.Printf("Close error: %v\n", err)
		return
	}

	info, err := f.Stat()
	if err != nil {
		fmt.Printf("Stat error: %v\n", err)
		return
	}

	fmt.Printf("Frames: %d\n", enc.Frames())
	fmt.Printf("Wrote %d bytes\n", info.Size())
	// Output:
	// Frames: 1000
	// Wrote 4044 bytes
}
