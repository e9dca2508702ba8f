// SPDX-License-Identifier: EPL-2.0

package output

import "errors"

var (
	ErrDevice         = errors.New("unable to open audio device")
	ErrFormatMismatch = errors.New("audio device already opened with another format")
)
