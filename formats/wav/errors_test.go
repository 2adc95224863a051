// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrNotWavFile, "not a WAV file"},
		{ErrUnsupportedEncoding, "only integer PCM WAV supported"},
		{ErrUnsupportedBitDepth, "unsupported WAV bit depth"},
		{ErrUnsupportedWavLayout, "unsupported WAV layout"},
		{ErrEmptyBuffer, "cannot encode an empty buffer"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := []error{ErrNotWavFile, ErrUnsupportedEncoding, ErrUnsupportedBitDepth, ErrUnsupportedWavLayout, ErrEmptyBuffer}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true", a, b)
			}
		}
	}

	wrapped := fmt.Errorf("%w: 8", ErrUnsupportedBitDepth)
	if !errors.Is(wrapped, ErrUnsupportedBitDepth) {
		t.Error("wrapped ErrUnsupportedBitDepth not matched")
	}
}
