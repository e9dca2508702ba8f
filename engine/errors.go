// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrNoOutput = errors.New("output factory is required")
	ErrNoLoop   = errors.New("deferrer is required")
)
