package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	flowerrors "github.com/PolarWolf314/flowkit/internal/errors"
	"github.com/klauspost/compress/flate"
)

// ZipPath returns the archive path derived from a collection directory.
func ZipPath(dir string) string {
	return filepath.Clean(dir) + ".zip"
}

// Build zips the full tree under dir into ZipPath(dir), replacing any
// archive left over from a previous run. Entry names are relative to the
// directory's parent so the zip unpacks into a single top-level directory.
func Build(dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", flowerrors.ErrDirectoryNotFound, dir)
		}
		return "", fmt.Errorf("checking %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", flowerrors.ErrDirectoryNotFound, dir)
	}

	zipPath := ZipPath(dir)
	if err := os.Remove(zipPath); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("removing stale archive %s: %w", zipPath, err)
	}

	out, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("creating archive %s: %w", zipPath, err)
	}
	defer out.Close()

	writer := zip.NewWriter(out)
	writer.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestSpeed)
	})

	base := filepath.Base(filepath.Clean(dir))
	err = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		header := &zip.FileHeader{
			Name:   filepath.ToSlash(filepath.Join(base, rel)),
			Method: zip.Deflate,
		}
		if info, err := entry.Info(); err == nil {
			header.SetMode(info.Mode())
			header.Modified = info.ModTime()
		}

		dst, err := writer.CreateHeader(header)
		if err != nil {
			return err
		}

		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()

		_, err = io.Copy(dst, src)
		return err
	})
	if err != nil {
		writer.Close()
		return "", fmt.Errorf("archiving %s: %w", dir, err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finalizing archive %s: %w", zipPath, err)
	}
	return zipPath, nil
}

// Remove deletes an archive. A missing archive is not an error, so callers
// can invoke it unconditionally on every exit path.
func Remove(zipPath string) error {
	if err := os.Remove(zipPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing archive %s: %w", zipPath, err)
	}
	return nil
}
