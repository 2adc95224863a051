// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiffFile = errors.New("aiff: missing FORM/AIFF header")

	// ErrUnsupportedBitDepth is returned for sample sizes other than 16 or 24 bits.
	ErrUnsupportedBitDepth = errors.New("aiff: unsupported bit depth")

	// ErrUnsupportedAiffLayout is returned when COMM declares no channels or rate.
	ErrUnsupportedAiffLayout = errors.New("aiff: unsupported layout")
)
