// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/granulizer/audio"
	"github.com/ik5/granulizer/internal/audiotest"
)

func TestDecoder_Sniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []byte
		want   bool
	}{
		{name: "wav", header: audiotest.WAV16(8000, 1, []int16{0}), want: true},
		{name: "riff but not wave", header: []byte("RIFF\x00\x00\x00\x00AVI LIST"), want: false},
		{name: "ogg", header: []byte("OggS\x00\x02\x00\x00\x00\x00\x00\x00"), want: false},
		{name: "short", header: []byte("RIFF"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := (Decoder{}).Sniff(tt.header); got != tt.want {
				t.Errorf("Sniff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 8192, -8192, 0}
	src, err := Decoder{}.Decode(bytes.NewReader(audiotest.WAV16(8000, 1, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	buf, err := audio.Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []float32{0, 0.5, -0.5, 0.25, -0.25, 0}
	got := buf.Channel(0)
	if len(got) != len(want) {
		t.Fatalf("decoded %d frames, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-4 {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_8BitUnsigned(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []uint8
		want    []float32
	}{
		{
			name:    "silence",
			samples: []uint8{0x80, 0x80, 0x80, 0x80},
			want:    []float32{0, 0, 0, 0},
		},
		{
			name:    "full range",
			samples: []uint8{0x00, 0x40, 0x80, 0xc0, 0xff, 0x80},
			want:    []float32{-1, -0.5, 0, 0.5, 127.0 / 128, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := Decoder{}.Decode(bytes.NewReader(audiotest.WAV8(8000, 1, tt.samples)))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			buf, err := audio.Collect(src)
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}

			got := buf.Channel(0)
			if len(got) != len(tt.want) {
				t.Fatalf("decoded %d frames, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecoder_StereoFromPlainReader(t *testing.T) {
	t.Parallel()

	data := audiotest.SineWAV(22050, 2, 2205, 441)

	// io.MultiReader hides the Seek method, forcing the in-memory path
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf, err := audio.Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if buf.Channels() != 2 || buf.Frames() != 2205 {
		t.Errorf("got %d channels x %d frames, want 2 x 2205", buf.Channels(), buf.Frames())
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "text", data: []byte("this is not a wav file at all, not even close")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotWavFile) {
				t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
			}
		})
	}
}

type failingPCM struct{}

func (failingPCM) PCMBuffer(*goaudio.IntBuffer) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestSource_PropagatesReadErrors(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        failingPCM{},
		format:     &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		sampleRate: 8000,
		channels:   1,
		bitDepth:   16,
	}

	_, err := s.ReadSamples(make([]float32, 16))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}

	if n, err := s.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}
