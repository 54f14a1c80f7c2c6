package kbartio

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/chill17/kbart-go/pkg/kbart"
)

// DefaultDelimiter separates fields in a standard KBART title list.
const DefaultDelimiter = '\t'

// ReaderConfig configures NewReader. The zero value reads a standard
// tab-delimited title list.
type ReaderConfig struct {
	// Delimiter is the field separator. Zero means tab.
	Delimiter rune
}

// Reader yields one kbart.Record per data row of a title list. The header
// row is consumed at construction and becomes the field sequence of every
// record, so provider-specific columns survive without schema lookup.
type Reader struct {
	csv    *csv.Reader
	fields []string
}

// NewReader wraps r as a title-list reader and consumes the header row.
// Input is decoded as UTF-8; a leading byte order mark, including the
// UTF-16 marks Excel writes, switches decoding to the marked encoding.
func NewReader(r io.Reader, config ReaderConfig) (*Reader, error) {
	delimiter := config.Delimiter
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	csvReader := csv.NewReader(decoded)
	csvReader.Comma = delimiter
	// Title lists in the wild carry unescaped quotes and ragged rows.
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("title list has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	return &Reader{csv: csvReader, fields: header}, nil
}

// Fields returns the field names read from the header row. The returned
// slice is a fresh copy.
func (r *Reader) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Read returns the next data row as a record, or io.EOF after the last
// row. Rows shorter than the header pad their trailing fields with empty
// strings; longer rows drop the excess.
func (r *Reader) Read() (*kbart.Record, error) {
	row, err := r.csv.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read title-list row: %w", err)
	}
	return kbart.NewRecord(row, kbart.RecordOptions{Fields: r.fields})
}

// ReadAll returns every remaining data row as records.
func (r *Reader) ReadAll() ([]*kbart.Record, error) {
	var records []*kbart.Record
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}
