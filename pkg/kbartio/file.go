package kbartio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"
)

// File is a Reader over a title-list file opened by path. Close releases
// the decompressor and the file.
type File struct {
	*Reader
	closers []io.Closer
}

// Open opens a title-list file for reading. Files ending in .gz or .br
// are decompressed transparently; KBART dumps from large aggregators are
// usually shipped compressed.
func Open(path string, config ReaderConfig) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open title list: %w", err)
	}

	var source io.Reader = f
	closers := []io.Closer{f}
	switch {
	case strings.HasSuffix(path, ".gz"):
		decompressor, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open gzip title list: %w", err)
		}
		source = decompressor
		closers = append(closers, decompressor)
	case strings.HasSuffix(path, ".br"):
		source = brotli.NewReader(f)
	}

	reader, err := NewReader(source, config)
	if err != nil {
		closeAll(closers)
		return nil, err
	}
	return &File{Reader: reader, closers: closers}, nil
}

// Close closes the decompressor, if any, then the file.
func (f *File) Close() error {
	return closeAll(f.closers)
}

// FileWriter is a Writer over a title-list file created by path. Close
// flushes buffered rows, finishes the compressed stream, and closes the
// file.
type FileWriter struct {
	*Writer
	flushers []io.Closer
}

// Create creates a title-list file for writing. Files ending in .gz or
// .br are compressed transparently.
func Create(path string, config WriterConfig) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create title list: %w", err)
	}

	var sink io.Writer = f
	flushers := []io.Closer{f}
	switch {
	case strings.HasSuffix(path, ".gz"):
		compressor := gzip.NewWriter(f)
		sink = compressor
		flushers = append([]io.Closer{compressor}, flushers...)
	case strings.HasSuffix(path, ".br"):
		compressor := brotli.NewWriter(f)
		sink = compressor
		flushers = append([]io.Closer{compressor}, flushers...)
	}

	return &FileWriter{Writer: NewWriter(sink, config), flushers: flushers}, nil
}

// Close flushes the writer, finishes compression, and closes the file.
// Compressed streams are invalid without it.
func (w *FileWriter) Close() error {
	if err := w.Flush(); err != nil {
		closeAll(w.flushers)
		return err
	}
	return closeAll(w.flushers)
}

// closeAll closes every closer in order, keeping the first error.
func closeAll(closers []io.Closer) error {
	var firstErr error
	for _, c := range closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
