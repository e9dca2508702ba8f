// SPDX-License-Identifier: EPL-2.0

package graph

import "errors"

var (
	ErrInvalidOptions    = errors.New("invalid context options")
	ErrInvalidTime       = errors.New("time, offset and duration must be finite and non-negative")
	ErrForeignNode       = errors.New("node belongs to another context")
	ErrInvalidConnection = errors.New("node does not accept inputs")
	ErrAlreadyStarted    = errors.New("source already started")
	ErrNotStarted        = errors.New("source not started")
	ErrDecode            = errors.New("unable to decode audio data")
	ErrFrameSize         = errors.New("buffer length must be a multiple of the channel count")
)
