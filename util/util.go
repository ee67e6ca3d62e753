package util

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// fileHasContents returns true if the file at path has data. It returns false
// if any errors are encountered along the way.
func fileHasContents(path string, data []byte) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil || stat.Size() != int64(len(data)) {
		return false
	}
	var buf [4096]byte
	for {
		n, err := f.Read(buf[:])
		// got to end of file and contents are same
		if n == 0 && len(data) == 0 {
			return true
		}
		if err != nil {
			return false
		}
		if n > len(data) || !bytes.Equal(buf[:n], data[:n]) {
			return false
		}
		data = data[n:]
	}
}

// Write data to file name, first checking if it already has those contents
//
// Same interface as [os.WriteFile] - creates name if it doesn't exist with
// perm, but doesn't set perm if the file does exist.
func WriteFileIfChanged(name string, data []byte, perm os.FileMode) error {
	if fileHasContents(name, data) {
		return nil
	}
	return os.WriteFile(name, data, perm)
}

// ReadOptionalFile reads name, treating a missing file as empty.
func ReadOptionalFile(name string) ([]byte, error) {
	contents, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return []byte{}, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "file %s could not be read", name)
	}
	return contents, nil
}

var red = color.New(color.FgRed).SprintFunc()

// Warn prints err and a highlighted summary to stderr.
func Warn(err error, msg string) {
	fmt.Fprintln(os.Stderr, err.Error())
	fmt.Fprintln(os.Stderr, red(msg))
}

// Die is Warn followed by exiting with status 1.
func Die(err error, msg string) {
	Warn(err, msg)
	os.Exit(1)
}
