// SPDX-License-Identifier: EPL-2.0

// Package cli parses command-line arguments into app.Options and maps
// usage errors to exit codes.
package cli
