package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes a generated file, creating its directory if needed.
// It refuses to overwrite a file that was not produced by the generator.
func WriteFile(file *GeneratedFile) error {
	path := file.Path()

	if err := checkOwned(path); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, file.Content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}

// RemoveStale deletes a previously generated file at path. It reports
// whether a file was removed; missing files and files without the generated
// header are left alone.
func RemoveStale(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	if !IsGenerated(content) {
		return false, nil
	}

	if err := os.Remove(path); err != nil {
		return false, fmt.Errorf("removing %s: %w", path, err)
	}

	return true, nil
}

// IsGenerated reports whether content starts with the generator header.
func IsGenerated(content []byte) bool {
	return bytes.HasPrefix(content, []byte(Header))
}

// checkOwned returns an error if path exists and was not generated.
func checkOwned(path string) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if !IsGenerated(content) {
		return fmt.Errorf("refusing to overwrite %s: not generated by newtype-generator", path)
	}

	return nil
}
