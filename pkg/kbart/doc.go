// Package kbart implements the KBART (Knowledge Bases And Related Tools)
// holdings record model. It maps the positional values of one title-list
// row to the named fields of a versioned schema (Recommended Practice 1 or
// 2, optionally extended with provider-specific fields), and renders the
// coverage range and embargo code of a record as human-readable text.
//
// KBART is the NISO/UKSG recommended practice for the tabular metadata
// files content providers supply to knowledge bases.
//
// # Specification
//
// KBART Recommended Practice: https://www.niso.org/standards-committees/kbart
//
// # Building a record
//
// Construct a record from the positional values of a data row:
//
//	record, err := kbart.NewRecord(row, kbart.RecordOptions{RP: 2})
//	if err != nil {
//		return err
//	}
//	fmt.Println(record.HoldingsPrettyPrint())
//
// When a header row has already been read, pass its names as Fields and the
// schema tables are bypassed entirely.
//
// This package is part of the KBART SDK for Go. File readers and writers
// live in pkg/kbartio.
package kbart
