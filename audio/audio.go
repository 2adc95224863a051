// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Source is a stream of interleaved PCM samples in [-1, 1].
type Source interface {
	SampleRate() int
	Channels() int

	// ReadSamples fills dst with interleaved samples and returns how many
	// values (not frames) were written. io.EOF marks the end of the stream
	// and may come with a final n > 0.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is the read size the source prefers.
	BufSize() int

	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys, file extensions without the dot, to decoders.
// Keys are case-insensitive and a leading dot is ignored.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{codecs: map[string]Decoder{}}
}

// Register binds d to format, replacing any earlier binding.
func (r *Registry) Register(format string, d Decoder) {
	r.mu.Lock()
	r.codecs[formatKey(format)] = d
	r.mu.Unlock()
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.codecs[formatKey(format)]
	return d, ok
}

// ForPath returns the decoder registered for the extension of path.
func (r *Registry) ForPath(path string) (Decoder, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, false
	}
	return r.Get(ext)
}

// Formats returns the registered keys sorted.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.codecs))
}

func formatKey(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}
