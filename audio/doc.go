// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample representation used by the granular
// engine and the primitives needed to produce it from encoded files.
//
// # Sources and Decoders
//
// Format decoders (see the formats/ subpackages) turn an io.Reader into a
// streaming Source of interleaved float32 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// # Buffers
//
// A Buffer is the decoded, immutable form of a whole sample, stored planar
// (one slice per channel). Collect drains a Source into a Buffer:
//
//	src, _ := wav.Decoder{}.Decode(r)
//	buf, err := audio.Collect(src)
//
// Grains read from a Buffer concurrently; nothing ever writes to it after
// construction.
//
// # Conversion
//
// Resample changes the sample rate with cubic interpolation while keeping
// the duration, and Remix changes the channel count:
//
//	buf, _ = audio.Resample(buf, 48000)
//	buf, _ = audio.Remix(buf, 2)
//
// # Format Registry
//
// The registry maps format keys to decoders. Decoders that also implement
// Sniffer can be picked from the first bytes of a file, which is how raw
// downloaded assets are decoded without a file name:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("ogg", vorbis.Decoder{})
//
//	format, dec, err := registry.Detect(data)
package audio
