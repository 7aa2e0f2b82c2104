package document

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/nfa/pkg/domain"
)

// WriteFile serializes a to path, in the format chosen by FormatFromPath.
// The file is written atomically: a temp file in the same directory is written,
// synced and renamed over the destination. Failures wrap ErrIO.
func WriteFile(path string, a *domain.Automaton) error {
	data, err := Marshal(a, FormatFromPath(path))
	if err != nil {
		return fmt.Errorf("failed to marshal automaton: %w", err)
	}
	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	// Same directory so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %w", ErrIO, err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("%w: failed to write temp file: %w", ErrIO, err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("%w: failed to fsync temp file: %w", ErrIO, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("%w: failed to close temp file: %w", ErrIO, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: failed to move document into place: %w", ErrIO, err)
	}
	return nil
}

// ReadFile parses the document at path. Unreadable files wrap ErrIO, bad content
// wraps ErrMalformedDocument.
func ReadFile(path string) (*domain.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Unmarshal(data, FormatFromPath(path))
}

// ReadInto replaces *dst with the automaton stored at path and reports success.
// On any failure dst is left untouched.
func ReadInto(path string, dst *domain.Automaton) bool {
	a, err := ReadFile(path)
	if err != nil {
		return false
	}
	*dst = *a
	return true
}
