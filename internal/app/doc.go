// SPDX-License-Identifier: EPL-2.0

// Package app wires the granulizer components into the command-line
// program: it loads the asset, builds the engine and drives it with a
// random grain trigger, either on the audio device or offline into a WAV
// file.
package app
