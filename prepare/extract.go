// SPDX-License-Identifier: EPL-2.0

package prepare

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extract unpacks archive into dir and returns the number of files
// written. The format follows the extension: .zip, .tar, or gzip
// compressed tar as .tar.gz, .tgz or .gz. Only directories and regular
// files are extracted; links and devices are skipped.
func Extract(archive, dir string) (int, error) {
	name := strings.ToLower(archive)

	switch {
	case strings.HasSuffix(name, ".zip"):
		return extractZip(archive, dir)
	case strings.HasSuffix(name, ".tar"):
		return extractTarFile(archive, dir, false)
	case strings.HasSuffix(name, ".tgz"), strings.HasSuffix(name, ".gz"):
		return extractTarFile(archive, dir, true)
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownArchive, filepath.Ext(archive))
}

// target resolves an entry name below dir, rejecting names that leave it.
func target(dir, name string) (string, error) {
	path := filepath.Join(dir, filepath.FromSlash(name))

	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}

	return path, nil
}

func writeFile(path string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm()|0o600)
	if err != nil {
		return err
	}

	_, err = io.Copy(f, r)
	return errors.Join(err, f.Close())
}

func extractTarFile(archive, dir string, gzipped bool) (int, error) {
	f, err := os.Open(archive)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", archive, err)
	}
	defer f.Close()

	var r io.Reader = f
	if gzipped {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return 0, fmt.Errorf("gzip %s: %w", archive, err)
		}
		defer gz.Close()
		r = gz
	}

	return extractTar(tar.NewReader(r), dir)
}

func extractTar(tr *tar.Reader, dir string) (int, error) {
	files := 0

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return files, nil
		}
		// names are checked below either way
		if err != nil && !errors.Is(err, tar.ErrInsecurePath) {
			return files, fmt.Errorf("tar: %w", err)
		}

		path, err := target(dir, hdr.Name)
		if err != nil {
			return files, err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(path, 0o755); err != nil {
				return files, err
			}
		case tar.TypeReg:
			if err := writeFile(path, tr, hdr.FileInfo().Mode()); err != nil {
				return files, fmt.Errorf("extract %s: %w", hdr.Name, err)
			}
			files++
		}
	}
}

func extractZip(archive, dir string) (int, error) {
	zr, err := zip.OpenReader(archive)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return 0, fmt.Errorf("open %s: %w", archive, err)
	}
	defer zr.Close()

	files := 0
	for _, zf := range zr.File {
		path, err := target(dir, zf.Name)
		if err != nil {
			return files, err
		}

		mode := zf.Mode()
		switch {
		case mode.IsDir():
			if err := os.MkdirAll(path, 0o755); err != nil {
				return files, err
			}
			continue
		case !mode.IsRegular():
			continue
		}

		rc, err := zf.Open()
		if err != nil {
			return files, fmt.Errorf("extract %s: %w", zf.Name, err)
		}
		err = writeFile(path, rc, mode)
		rc.Close()
		if err != nil {
			return files, fmt.Errorf("extract %s: %w", zf.Name, err)
		}
		files++
	}

	return files, nil
}
