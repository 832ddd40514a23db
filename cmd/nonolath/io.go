package main

import (
	"io"
	"os"
)

// openInput opens path for reading, or stdin when path is empty.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// openOutput opens path for writing (truncating), or stdout when path
// is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
