package consolidation

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Output column order, shared by every sheet ("Agregar costo mensual"
// appends Capitas at the end).
var baseColumns = []string{
	"Periodo", "Razón social", "CUIT", "Contrato", "Aseguradora",
	"Deuda total", "Costo mensual", "Q periodos deudores", "Estado contrato",
	"Email del trato", "No contactar", "Productor", "Premier",
	"Cliente importante",
}

var columnWidths = map[string]float64{
	"Periodo": 10, "Razón social": 35, "CUIT": 14, "Contrato": 14,
	"Aseguradora": 18, "Deuda total": 16, "Costo mensual": 16,
	"Q periodos deudores": 14, "Estado contrato": 18, "Email del trato": 34,
	"No contactar": 12, "Productor": 14, "Premier": 14,
	"Cliente importante": 16, "Capitas": 14,
}

// Number formats are written invariant; Excel localizes them per UI
// language.
const (
	moneyFmt = `"$ " #,##0.00`
	qFmt     = "0.00"
	cuitFmt  = "00000000000"
	intFmt   = "0"
)

const sheetZoom = 80

// WriteWorkbook renders every sheet as a formatted auto-table: typed
// column formats, fixed widths, frozen header row and fixed zoom.
func WriteWorkbook(sheets []Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no hay hojas para exportar")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.Name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(sh.Name); err != nil {
			return nil, err
		}
		if err := writeSheet(f, sh); err != nil {
			return nil, fmt.Errorf("hoja %q: %w", sh.Name, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sh Sheet) error {
	cols := baseColumns
	if sh.WithCapitas {
		cols = append(append([]string{}, baseColumns...), "Capitas")
	}

	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(sh.Name, "A1", &header); err != nil {
		return err
	}

	for i, r := range sh.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := rowCells(r, sh.WithCapitas)
		if err := f.SetSheetRow(sh.Name, cell, &row); err != nil {
			return err
		}
	}

	if err := applyColumnFormats(f, sh.Name, cols, len(sh.Rows)); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(cols))
	if err != nil {
		return err
	}
	lastRow := len(sh.Rows) + 1
	if lastRow < 2 {
		lastRow = 2 // a table needs at least one data row range
	}
	if err := f.AddTable(sh.Name, &excelize.Table{
		Range:     fmt.Sprintf("A1:%s%d", lastCol, lastRow),
		Name:      tableName(sh.Name),
		StyleName: "TableStyleMedium2",
	}); err != nil {
		return err
	}

	if err := f.SetPanes(sh.Name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	zoom := float64(sheetZoom)
	return f.SetSheetView(sh.Name, 0, &excelize.ViewOptions{ZoomScale: &zoom})
}

func rowCells(r Row, withCapitas bool) []interface{} {
	cells := []interface{}{
		r.Period,
		r.LegalName,
		cuitCell(r.CUIT),
		int64Cell(r.Contract),
		r.Insurer,
		r.Debt.Round(2).InexactFloat64(),
		decimalCell(r.MonthlyCost),
		decimalCell(r.Q),
		r.ContractState,
		r.Email,
		boolCell(r.DoNotContact),
		r.Producer,
		r.Premier,
		boolCell(r.ImportantClient),
	}
	if withCapitas {
		cells = append(cells, int64Cell(r.Capitas))
	}
	return cells
}

func cuitCell(cuit string) interface{} {
	n, err := strconv.ParseInt(cuit, 10, 64)
	if err != nil {
		return nil
	}
	return n
}

func int64Cell(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func decimalCell(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.Round(2).InexactFloat64()
}

func boolCell(b bool) interface{} {
	if b {
		return "Verdadero"
	}
	return "Falso"
}

func applyColumnFormats(f *excelize.File, sheet string, cols []string, nRows int) error {
	money, err := newFmtStyle(f, moneyFmt)
	if err != nil {
		return err
	}
	q, err := newFmtStyle(f, qFmt)
	if err != nil {
		return err
	}
	cuit, err := newFmtStyle(f, cuitFmt)
	if err != nil {
		return err
	}
	integer, err := newFmtStyle(f, intFmt)
	if err != nil {
		return err
	}

	for i, name := range cols {
		letter, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if w, ok := columnWidths[name]; ok {
			if err := f.SetColWidth(sheet, letter, letter, w); err != nil {
				return err
			}
		} else if err := f.SetColWidth(sheet, letter, letter, 12); err != nil {
			return err
		}

		var style int
		switch name {
		case "CUIT":
			style = cuit
		case "Deuda total", "Costo mensual":
			style = money
		case "Q periodos deudores":
			style = q
		case "Contrato", "Capitas":
			style = integer
		default:
			continue
		}
		if nRows == 0 {
			continue
		}
		first, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(i+1, nRows+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, first, last, style); err != nil {
			return err
		}
	}
	return nil
}

func newFmtStyle(f *excelize.File, numFmt string) (int, error) {
	fmtCopy := numFmt
	return f.NewStyle(&excelize.Style{CustomNumFmt: &fmtCopy})
}

// tableName derives a valid, reasonably unique Excel table name from a
// sheet name ("1 Q.deudor" -> "tbl_1_Q_deudor").
func tableName(sheet string) string {
	var b strings.Builder
	b.WriteString("tbl_")
	for _, r := range sheet {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	name := b.String()
	if len(name) > 29 {
		name = name[:29]
	}
	return name
}

// ReadSheetRows opens a workbook on disk and returns the raw cell grid of
// one sheet (the first when sheet is empty). Used by the source reader.
func ReadSheetRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sheetRows(f, sheet)
}

// ReadWorkbookSheet reads one sheet out of in-memory workbook bytes.
// Mostly a round-trip aid: generated workbooks can be re-read and
// compared against the tables that produced them.
func ReadWorkbookSheet(data []byte, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sheetRows(f, sheet)
}

func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("el archivo no tiene hojas")
		}
		sheet = list[0]
	}
	return f.GetRows(sheet)
}
