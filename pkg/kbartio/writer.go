package kbartio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/chill17/kbart-go/pkg/kbart"
)

// WriterConfig configures NewWriter. The zero value writes a standard
// tab-delimited title list.
type WriterConfig struct {
	// Delimiter is the field separator. Zero means tab.
	Delimiter rune
}

// Writer serializes records as title-list rows, one per call, preserving
// field order exactly as the record stores it. Output is UTF-8.
type Writer struct {
	csv *csv.Writer
}

// NewWriter wraps w as a title-list writer.
func NewWriter(w io.Writer, config WriterConfig) *Writer {
	delimiter := config.Delimiter
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter
	return &Writer{csv: csvWriter}
}

// WriteHeader writes the record's field names as a header row.
func (w *Writer) WriteHeader(record *kbart.Record) error {
	if err := w.csv.Write(record.Fields()); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	return nil
}

// WriteRecord writes the record's values as one data row.
func (w *Writer) WriteRecord(record *kbart.Record) error {
	if err := w.csv.Write(record.GetFields()); err != nil {
		return fmt.Errorf("failed to write title-list row: %w", err)
	}
	return nil
}

// WriteAll writes a header row taken from the first record followed by one
// data row per record.
func (w *Writer) WriteAll(records []*kbart.Record) error {
	if len(records) == 0 {
		return nil
	}
	if err := w.WriteHeader(records[0]); err != nil {
		return err
	}
	for _, record := range records {
		if err := w.WriteRecord(record); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
