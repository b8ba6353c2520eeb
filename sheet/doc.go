// Package sheet provides a minimal XLSX (Office Open XML Spreadsheet) reader.
//
// It parses only what roster ingestion needs: worksheet names, dense cell
// grids with shared-string resolution, and the raw numeric values required to
// recognize Excel serial dates. Styles, merged regions, formulas and document
// metadata are ignored.
package sheet
