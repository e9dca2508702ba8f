// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnknownFormat  = errors.New("unknown audio format")
	ErrInvalidBuffer  = errors.New("invalid sample buffer")
	ErrEmptySource    = errors.New("source produced no samples")
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
)
