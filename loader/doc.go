// SPDX-License-Identifier: EPL-2.0

// Package loader fetches the raw encoded bytes of an audio asset.
//
// A locator is an http:// or https:// URL, a file:// URL or a plain file
// path. Load works in the background and reports through exactly one of two
// callbacks; Fetch is the blocking form.
package loader
