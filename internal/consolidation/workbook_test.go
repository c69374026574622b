package consolidation

import (
	"testing"
)

func TestWriteWorkbookRoundTrip(t *testing.T) {
	row1 := baseRow()
	row2 := baseRow()
	row2.CUIT = "30711111118"
	row2.LegalName = "SEGUNDA SRL"
	row2.Contract = int64Ptr(987654)
	row2.MonthlyCost = nil
	row2.Q = nil
	unmatched := Row{
		Period:   "06-2025",
		CUIT:     "27999999996",
		Insurer:  "Provincia ART",
		Debt:     dec("12345.67"),
		Producer: ProducerHouse,
		Premier:  PremierNo,
	}

	sheets := DeriveSheets([]Row{row1, row2}, []Row{unmatched})
	data, err := WriteWorkbook(sheets)
	if err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty workbook")
	}

	got, err := ReadWorkbookSheet(data, SheetConsolidado)
	if err != nil {
		t.Fatalf("ReadWorkbookSheet: %v", err)
	}
	if len(got) != 3 { // header + 2 rows
		t.Fatalf("Consolidado rows = %d, want 3", len(got))
	}
	if got[0][0] != "Periodo" || got[0][2] != "CUIT" {
		t.Fatalf("unexpected header: %v", got[0])
	}
	cuits := map[string]bool{}
	for _, r := range got[1:] {
		cuits[NormalizeTaxID(r[2])] = true
	}
	if !cuits["20123456789"] || !cuits["30711111118"] {
		t.Fatalf("CUITs after round trip = %v", cuits)
	}

	noCruzan, err := ReadWorkbookSheet(data, SheetNoCruzan)
	if err != nil {
		t.Fatalf("ReadWorkbookSheet(No cruzan): %v", err)
	}
	if len(noCruzan) != 2 {
		t.Fatalf("No cruzan rows = %d, want 2", len(noCruzan))
	}

	// the cost-less row lands on the extra-column sheet with a wider header
	agregar, err := ReadWorkbookSheet(data, SheetAgregarCost)
	if err != nil {
		t.Fatalf("ReadWorkbookSheet(Agregar costo mensual): %v", err)
	}
	if len(agregar) != 2 {
		t.Fatalf("Agregar costo mensual rows = %d, want 2", len(agregar))
	}
	header := agregar[0]
	if header[len(header)-1] != "Capitas" {
		t.Fatalf("last column = %q, want Capitas", header[len(header)-1])
	}
}

func int64Ptr(v int64) *int64 { return &v }
