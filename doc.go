// The KBART SDK for Go models Knowledge Bases And Related Tools (KBART)
// title-list records as defined by the NISO/UKSG KBART Recommended Practice.
// It provides a record abstraction over the positional KBART field layout,
// human-readable formatting for holdings ranges and embargo codes, and
// readers and writers for the tab-delimited and spreadsheet title-list
// files exchanged between content providers and knowledge bases.
//
// # Packages
//
//   - pkg/kbart: records, schema tables for Recommended Practice 1 and 2,
//     provider field extensions, holdings and embargo formatting
//   - pkg/kbartio: tab-delimited UTF-8 title-list reader and writer,
//     compressed file support, and XLSX ingest/export
//
// # Specification
//
// KBART Recommended Practice: https://www.niso.org/standards-committees/kbart
//
// # Installation
//
//	go get github.com/chill17/kbart-go@latest
package kbart_go
