package sheet

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
)

// Workbook holds the parsed worksheets of an XLSX file in workbook order.
type Workbook struct {
	Sheets []*Sheet
}

// First returns the first worksheet, or nil for an empty workbook.
func (w *Workbook) First() *Sheet {
	if len(w.Sheets) == 0 {
		return nil
	}
	return w.Sheets[0]
}

// Sheet is one worksheet as a dense, 0-indexed cell grid. Short rows are
// padded with empty cells up to the widest row.
type Sheet struct {
	Name string
	Rows [][]Cell
}

// Cell returns the cell at (row, col), or an empty cell when out of range.
func (s *Sheet) Cell(row, col int) Cell {
	if row < 0 || row >= len(s.Rows) || col < 0 || col >= len(s.Rows[row]) {
		return Cell{}
	}
	return s.Rows[row][col]
}

// RowCount returns the number of rows in the sheet.
func (s *Sheet) RowCount() int {
	return len(s.Rows)
}

// Open opens an XLSX file and parses its worksheets.
func Open(filename string) (*Workbook, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	defer zr.Close()

	return parseWorkbook(&zr.Reader)
}

// Read parses XLSX content from an in-memory or seekable source.
func Read(r io.ReaderAt, size int64) (*Workbook, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return parseWorkbook(zr)
}

// XML structures for the handful of files we read.

type workbookXML struct {
	Sheets struct {
		Sheet []struct {
			Name string `xml:"name,attr"`
			RID  string `xml:"id,attr"`
		} `xml:"sheet"`
	} `xml:"sheets"`
}

type relationshipsXML struct {
	Relationship []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type sharedStringsXML struct {
	SI []struct {
		T string   `xml:"t"`
		R []string `xml:"r>t"`
	} `xml:"si"`
}

type worksheetXML struct {
	SheetData struct {
		Rows []struct {
			R     int `xml:"r,attr"`
			Cells []struct {
				R  string `xml:"r,attr"`
				T  string `xml:"t,attr"`
				V  string `xml:"v"`
				Is struct {
					T string `xml:"t"`
				} `xml:"is"`
			} `xml:"c"`
		} `xml:"row"`
	} `xml:"sheetData"`
}

func parseWorkbook(zr *zip.Reader) (*Workbook, error) {
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}
	if files["xl/workbook.xml"] == nil {
		return nil, fmt.Errorf("not an XLSX file: missing xl/workbook.xml")
	}

	var wb workbookXML
	if err := decodeXML(files["xl/workbook.xml"], &wb); err != nil {
		return nil, fmt.Errorf("parsing workbook: %w", err)
	}

	// Sheet RIDs resolve to worksheet paths through the workbook
	// relationships file.
	targets := make(map[string]string)
	if rels := files["xl/_rels/workbook.xml.rels"]; rels != nil {
		var rx relationshipsXML
		if err := decodeXML(rels, &rx); err != nil {
			return nil, fmt.Errorf("parsing relationships: %w", err)
		}
		for _, r := range rx.Relationship {
			target := r.Target
			if !strings.HasPrefix(target, "/") {
				target = path.Join("xl", target)
			} else {
				target = strings.TrimPrefix(target, "/")
			}
			targets[r.ID] = target
		}
	}

	shared, err := parseSharedStrings(files["xl/sharedStrings.xml"])
	if err != nil {
		return nil, err
	}

	out := &Workbook{}
	for i, ref := range wb.Sheets.Sheet {
		target := targets[ref.RID]
		if target == "" {
			target = fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1)
		}
		f := files[target]
		if f == nil {
			return nil, fmt.Errorf("worksheet %q: missing %s", ref.Name, target)
		}
		s, err := parseSheet(f, ref.Name, shared)
		if err != nil {
			return nil, fmt.Errorf("worksheet %q: %w", ref.Name, err)
		}
		out.Sheets = append(out.Sheets, s)
	}

	return out, nil
}

func parseSharedStrings(f *zip.File) ([]string, error) {
	if f == nil {
		return nil, nil
	}
	var sst sharedStringsXML
	if err := decodeXML(f, &sst); err != nil {
		return nil, fmt.Errorf("parsing shared strings: %w", err)
	}
	shared := make([]string, len(sst.SI))
	for i, si := range sst.SI {
		if si.T != "" {
			shared[i] = si.T
			continue
		}
		// Rich-text runs concatenate to the display string.
		shared[i] = strings.Join(si.R, "")
	}
	return shared, nil
}

func parseSheet(f *zip.File, name string, shared []string) (*Sheet, error) {
	var ws worksheetXML
	if err := decodeXML(f, &ws); err != nil {
		return nil, err
	}

	grid := make(map[int]map[int]Cell)
	maxRow, maxCol := -1, -1

	for _, row := range ws.SheetData.Rows {
		for _, c := range row.Cells {
			col, r, err := ParseCellRef(c.R)
			if err != nil {
				// Cells without a usable reference fall back to the
				// row element's declared number; column is unknown, so
				// the cell is dropped.
				continue
			}
			cell := resolveCell(c.T, c.V, c.Is.T, shared)
			if cell.Type == CellTypeEmpty {
				continue
			}
			if grid[r] == nil {
				grid[r] = make(map[int]Cell)
			}
			grid[r][col] = cell
			if r > maxRow {
				maxRow = r
			}
			if col > maxCol {
				maxCol = col
			}
		}
	}

	s := &Sheet{Name: name}
	if maxRow < 0 {
		return s, nil
	}
	s.Rows = make([][]Cell, maxRow+1)
	for r := 0; r <= maxRow; r++ {
		s.Rows[r] = make([]Cell, maxCol+1)
		cols := grid[r]
		if cols == nil {
			continue
		}
		keys := make([]int, 0, len(cols))
		for col := range cols {
			keys = append(keys, col)
		}
		sort.Ints(keys)
		for _, col := range keys {
			s.Rows[r][col] = cols[col]
		}
	}

	return s, nil
}

// resolveCell maps a raw SpreadsheetML cell to its typed display value.
// Type attributes: s=shared string, str/inlineStr=literal string, b=boolean;
// the default is numeric.
func resolveCell(typ, value, inline string, shared []string) Cell {
	switch typ {
	case "s":
		i := 0
		if _, err := fmt.Sscanf(value, "%d", &i); err != nil || i < 0 || i >= len(shared) {
			return Cell{}
		}
		return makeString(shared[i])
	case "inlineStr":
		return makeString(inline)
	case "str":
		return makeString(value)
	case "b":
		if value == "1" {
			return Cell{Value: "TRUE", Type: CellTypeBoolean}
		}
		return Cell{Value: "FALSE", Type: CellTypeBoolean}
	case "e":
		return Cell{}
	default:
		if strings.TrimSpace(value) == "" {
			return Cell{}
		}
		return Cell{Value: strings.TrimSpace(value), Type: CellTypeNumber}
	}
}

func makeString(v string) Cell {
	v = strings.TrimSpace(v)
	if v == "" {
		return Cell{}
	}
	return Cell{Value: v, Type: CellTypeString}
}

func decodeXML(f *zip.File, v any) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return xml.NewDecoder(rc).Decode(v)
}
