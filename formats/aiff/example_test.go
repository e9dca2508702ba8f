// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/granulizer/formats/aiff"
)

// Example_sniff checks the container signature before decoding.
func Example_sniff() {
	header := []byte("FORM\x00\x00\x00\x2eAIFFCOMM")

	fmt.Println(aiff.Decoder{}.Sniff(header))
	fmt.Println(aiff.Decoder{}.Sniff([]byte("RIFF\x00\x00\x00\x00WAVE")))
	// Output:
	// true
	// false
}

// Example_errorHandling shows the sentinel returned for non-AIFF input.
func Example_errorHandling() {
	_, err := aiff.Decoder{}.Decode(bytes.NewReader([]byte("This is not AIFF data")))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("not an AIFF file")
	}
	// Output:
	// not an AIFF file
}
