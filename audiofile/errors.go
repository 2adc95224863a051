// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is wrapped by ReadError when no decoder is
// registered for a file extension.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// ReadError reports a file that is missing, unreadable, corrupt or in an
// unsupported format.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a destination that could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
