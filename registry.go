// SPDX-License-Identifier: EPL-2.0

package granulizer

import (
	"github.com/ik5/granulizer/audio"
	"github.com/ik5/granulizer/formats/aiff"
	"github.com/ik5/granulizer/formats/mp3"
	"github.com/ik5/granulizer/formats/vorbis"
	"github.com/ik5/granulizer/formats/wav"
)

// NewRegistry returns a registry holding every bundled decoder.
//
// mp3 is registered last: a bare frame sync is the loosest signature and
// should only win when nothing else matched.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("mp3", mp3.Decoder{})

	return reg
}
