// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// 16 and 24-bit PCM are supported with any channel count. Inputs that are
// not seekable are buffered in memory, since go-audio needs io.ReadSeeker.
package aiff
