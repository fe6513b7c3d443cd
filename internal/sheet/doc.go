// Package sheet writes normalized calendar rows to an .xlsx workbook.
//
// The workbook has a single worksheet with a styled header row followed by
// one row per event, in the order the rows were handed in. The destination
// file is overwritten on every export.
package sheet
