// SPDX-License-Identifier: EPL-2.0

package loader

import "errors"

// ErrLoadFailure wraps every failure to obtain an asset.
var ErrLoadFailure = errors.New("unable to load asset")

var errEmptyAsset = errors.New("empty asset")
