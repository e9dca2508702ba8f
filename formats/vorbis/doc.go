// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio through github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(bytes.NewReader(data))
//	buf, err := audio.Collect(src)
//
// The decoder keeps the channel layout and sample rate of the stream.
// Decoder implements audio.Sniffer by matching the "OggS" capture pattern;
// other Ogg codecs (Opus, FLAC in Ogg) are detected too but fail in Decode.
package vorbis
