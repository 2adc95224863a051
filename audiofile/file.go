// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/wakeaug/audio"
	"github.com/ik5/wakeaug/formats/aiff"
	"github.com/ik5/wakeaug/formats/mp3"
	"github.com/ik5/wakeaug/formats/vorbis"
	"github.com/ik5/wakeaug/formats/wav"
)

// Loader decodes audio files into buffers, picking the decoder from the
// file extension.
type Loader struct {
	registry *audio.Registry
}

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

func NewLoader() *Loader {
	return NewLoaderWithRegistry(DefaultRegistry())
}

func NewLoaderWithRegistry(reg *audio.Registry) *Loader {
	return &Loader{registry: reg}
}

// Supports reports whether path has an extension with a registered decoder.
func (l *Loader) Supports(path string) bool {
	_, ok := l.registry.ForPath(path)
	return ok
}

// Formats lists the registered extensions.
func (l *Loader) Formats() []string {
	return l.registry.Formats()
}

// Load reads path fully. All failures are returned as *ReadError.
func (l *Loader) Load(path string) (*audio.Buffer, error) {
	dec, ok := l.registry.ForPath(path)
	if !ok {
		return nil, &ReadError{Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer src.Close()

	buf, err := audio.Collect(src)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	return buf, nil
}

// Save writes buf to path. See the package Save function.
func (l *Loader) Save(buf *audio.Buffer, path string) error {
	return Save(buf, path)
}

// Save writes buf to path as 16-bit PCM WAV, replacing any existing file.
// The parent directory must already exist. A file left incomplete by an
// encoding failure is removed. All failures are returned as *WriteError.
func Save(buf *audio.Buffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	encErr := wav.Encode(f, buf)
	closeErr := f.Close()

	if err := errors.Join(encErr, closeErr); err != nil {
		_ = os.Remove(path)
		return &WriteError{Path: path, Err: err}
	}

	return nil
}
