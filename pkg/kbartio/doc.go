// Package kbartio reads and writes KBART title-list files. A title list is
// a UTF-8, tab-delimited text file whose first row names the fields and
// whose remaining rows each describe one title's holdings; this package
// turns those rows into kbart.Record values and back.
//
// Readers tolerate the byte order marks Excel leaves on exported text and
// accept a configurable delimiter for the comma-separated variants some
// providers ship. Open and Create handle gzip and brotli compressed files
// by extension, and ReadXLSX/WriteXLSX cover the spreadsheet form title
// lists are routinely distributed in.
//
// # Reading a title list
//
//	file, err := kbartio.Open("holdings.txt", kbartio.ReaderConfig{})
//	if err != nil {
//		return err
//	}
//	defer file.Close()
//	for {
//		record, err := file.Read()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		fmt.Println(record.HoldingsPrettyPrint())
//	}
//
// This package is part of the KBART SDK for Go. The record model lives in
// pkg/kbart.
package kbartio
