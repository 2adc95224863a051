// SPDX-License-Identifier: EPL-2.0

package prepare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/wakeaug/augment"
	"github.com/sirupsen/logrus"
)

// Preparer downloads a corpus archive into the dataset tree.
type Preparer struct {
	Layout     Layout
	URL        string
	Downloader *Downloader
	Log        logrus.FieldLogger
}

// NewPreparer returns a Preparer for the dataset rooted at base. A nil
// logger discards output.
func NewPreparer(base, archiveURL string, timeout time.Duration, log logrus.FieldLogger) *Preparer {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &Preparer{
		Layout:     Layout{Base: base},
		URL:        archiveURL,
		Downloader: NewDownloader(timeout),
		Log:        log,
	}
}

// PrepareBackground fills the background directory with noise recordings.
func (p *Preparer) PrepareBackground(ctx context.Context) error {
	return p.prepareInto(ctx, "background", p.Layout.Background())
}

// PrepareNegative fills the negative directory with non wake-word speech.
func (p *Preparer) PrepareNegative(ctx context.Context) error {
	return p.prepareInto(ctx, "negative", p.Layout.Negative())
}

// Run bootstraps the tree and prepares the selected datasets. A failing
// dataset does not stop the next one; all failures are returned joined.
func (p *Preparer) Run(ctx context.Context, background, negative bool) error {
	if err := p.Layout.Bootstrap(); err != nil {
		return err
	}

	var errs []error
	if background {
		if err := p.PrepareBackground(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if negative {
		if err := p.PrepareNegative(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (p *Preparer) prepareInto(ctx context.Context, dataset, dir string) error {
	log := p.Log.WithFields(logrus.Fields{"dataset": dataset, "url": p.URL})

	name, err := archiveName(p.URL)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	archive := filepath.Join(dir, name)

	log.Info("downloading dataset")
	size, err := p.Downloader.Download(ctx, p.URL, archive)
	if err != nil {
		log.WithError(err).Error("download failed")
		return fmt.Errorf("%s: %w", dataset, err)
	}
	log.WithFields(logrus.Fields{"path": archive, "bytes": size}).Info("downloaded")

	files, err := Extract(archive, dir)
	if err != nil {
		log.WithError(err).Error("extraction failed")
		return fmt.Errorf("%s: %w", dataset, err)
	}

	if err := os.Remove(archive); err != nil {
		log.WithError(err).Warn("could not remove archive")
	}

	log.WithFields(logrus.Fields{"dir": dir, "files": files}).Info("dataset ready")

	return nil
}

// archiveName derives the local file name from the last URL path element.
func archiveName(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("dataset url: %w", err)
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("dataset url %q has no file name", raw)
	}

	return name, nil
}

// DirStatus describes one dataset directory.
type DirStatus struct {
	Name     string
	Path     string
	Exists   bool
	WAVFiles int
}

// Verify counts the WAV files below each dataset directory.
func (p *Preparer) Verify() ([]DirStatus, error) {
	return p.Layout.Verify()
}

// Verify counts the WAV files below the positive, negative and background
// directories. Missing directories are reported, not failed.
func (l Layout) Verify() ([]DirStatus, error) {
	dirs := []struct{ name, path string }{
		{"positive", l.Positive()},
		{"negative", l.Negative()},
		{"background", l.Background()},
	}

	isWAV := func(p string) bool { return strings.EqualFold(filepath.Ext(p), ".wav") }

	status := make([]DirStatus, 0, len(dirs))
	for _, d := range dirs {
		s := DirStatus{Name: d.name, Path: d.path}

		files, err := augment.Discover(d.path, true, isWAV)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			s.Exists = true
			s.WAVFiles = len(files)
		}

		status = append(status, s)
	}

	return status, nil
}
