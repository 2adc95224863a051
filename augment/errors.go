// SPDX-License-Identifier: EPL-2.0

package augment

import "errors"

var (
	// ErrAlignmentPrecondition marks degenerate noise or signal input that
	// would produce an undefined gain: zero-length buffers, silent noise or a
	// non-finite result.
	ErrAlignmentPrecondition = errors.New("degenerate input for noise mixing")
	ErrShapeMismatch         = errors.New("signal and noise shapes differ")
	ErrInvalidRate           = errors.New("invalid stretch or sample rate")
)
