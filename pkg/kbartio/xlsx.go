package kbartio

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/chill17/kbart-go/pkg/kbart"
)

// ReadXLSX reads a title list from a spreadsheet. The first sheet's first
// row is taken as the field names and every following row becomes one
// record, padded or truncated against the header the same way the text
// reader pads rows.
func ReadXLSX(r io.Reader) ([]*kbart.Record, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	header := rows[0]
	records := make([]*kbart.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record, err := kbart.NewRecord(row, kbart.RecordOptions{Fields: header})
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// WriteXLSX writes records as a single-sheet spreadsheet: a header row of
// field names taken from the first record, then one row per record in
// field order.
func WriteXLSX(w io.Writer, records []*kbart.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to write")
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if err := writeSheetRow(workbook, sheet, 1, records[0].Fields()); err != nil {
		return err
	}
	for position, record := range records {
		if err := writeSheetRow(workbook, sheet, position+2, record.GetFields()); err != nil {
			return err
		}
	}

	if err := workbook.Write(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}

func writeSheetRow(workbook *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	cells := make([]interface{}, len(values))
	for position, value := range values {
		cells[position] = value
	}
	if err := workbook.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
