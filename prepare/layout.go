// SPDX-License-Identifier: EPL-2.0

package prepare

import (
	"fmt"
	"os"
	"path/filepath"
)

// Layout names the directories below a dataset root.
type Layout struct {
	Base string
}

func (l Layout) Positive() string   { return filepath.Join(l.Base, "positive") }
func (l Layout) Negative() string   { return filepath.Join(l.Base, "negative") }
func (l Layout) Background() string { return filepath.Join(l.Base, "background") }
func (l Layout) Augmented() string  { return filepath.Join(l.Base, "augmented") }

// Bootstrap creates the positive, negative and background directories.
// Existing directories are kept.
func (l Layout) Bootstrap() error {
	for _, dir := range []string{l.Positive(), l.Negative(), l.Background()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	return nil
}
