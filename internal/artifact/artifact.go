// Package artifact measures the input whose cache footprint is estimated.
package artifact

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ErrInputUnreadable is returned when the artifact cannot be opened or measured.
type ErrInputUnreadable struct {
	error
	Path string
}

func NewErrInputUnreadable(path string, cause error) *ErrInputUnreadable {
	return &ErrInputUnreadable{
		error: errors.Wrapf(cause, "input %s is unreadable", path),
		Path:  path,
	}
}

// Unwrap exposes the cause for errors.Is checks such as os.ErrNotExist.
func (e *ErrInputUnreadable) Unwrap() error {
	return errors.Cause(e.error)
}

// Size returns the byte size of the file at path as reported by the filesystem.
// The content is read through once, so a file that opens but cannot be read fails.
func Size(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, NewErrInputUnreadable(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, NewErrInputUnreadable(path, err)
	}
	if info.IsDir() {
		return 0, NewErrInputUnreadable(path, fmt.Errorf("is a directory"))
	}
	if _, err := io.Copy(io.Discard, f); err != nil {
		return 0, NewErrInputUnreadable(path, err)
	}
	return info.Size(), nil
}

// Self returns the path of the running executable.
func Self() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", NewErrInputUnreadable("<self>", err)
	}
	return path, nil
}
