// SPDX-License-Identifier: EPL-2.0

package prepare

import "errors"

var (
	ErrDownloadStatus = errors.New("unexpected download status")
	ErrUnknownArchive = errors.New("unknown archive format")
	ErrUnsafePath     = errors.New("archive entry escapes the target directory")
)
