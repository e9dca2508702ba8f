// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG Layer III audio through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so every Source returned by Decoder
// reports two channels, even for mono files (the channel is duplicated by
// the library).
//
//	src, err := mp3.Decoder{}.Decode(bytes.NewReader(data))
//	buf, err := audio.Collect(src)
//
// Decoder implements audio.Sniffer and recognises files that start with an
// ID3v2 tag or directly with a Layer III frame header.
package mp3
