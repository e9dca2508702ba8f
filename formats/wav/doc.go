// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV files through github.com/go-audio/wav.
//
// # Decoding
//
// Decoder handles integer PCM at 8, 16, 24 and 32 bits, any channel count
// and any sample rate. Inputs that are not io.ReadSeeker are buffered in
// memory first, since the RIFF parser seeks between chunks.
//
//	src, err := wav.Decoder{}.Decode(bytes.NewReader(data))
//	buf, err := audio.Collect(src)
//
// Decoder also implements audio.Sniffer, matching the RIFF/WAVE signature,
// so it can be selected with audio.Registry.Detect.
//
// # Encoding
//
// Encoder writes interleaved float32 frames as 16-bit PCM. It is used to
// render a grain cloud to disk:
//
//	f, _ := os.Create("render.wav")
//	enc := wav.NewEncoder(f, 44100, 2)
//	_ = enc.Write(frames)
//	_ = enc.Close()
package wav
