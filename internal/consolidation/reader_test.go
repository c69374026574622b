package consolidation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"cobranzas_art/internal/config"
)

// writeXLSX writes a one-sheet workbook fixture.
func writeXLSX(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs %s: %v", path, err)
	}
}

func writeMappingFixture(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "mapeo.xlsx")
	writeXLSX(t, path, [][]interface{}{
		{"Aseguradora", "deuda_col", "cuit_col"},
		{"Experta ART", "Saldo", "CUIT"},
		{"Andina ART", "Deuda", "Nro CUIT"},
		{"Provincia ART", "Cuota + Interés", "CUIT"},
	})
	return path
}

func TestLoadMapping(t *testing.T) {
	m, err := LoadMapping(writeMappingFixture(t, t.TempDir()))
	if err != nil {
		t.Fatalf("LoadMapping: %v", err)
	}
	if len(m) != 3 {
		t.Fatalf("entries = %d, want 3", len(m))
	}

	spec, err := m.Lookup("provincia art") // folder name, different case
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(spec.DebtColumns) != 2 || spec.DebtColumns[0] != "Cuota" || spec.DebtColumns[1] != "Interés" {
		t.Fatalf("debt columns = %v, want [Cuota Interés]", spec.DebtColumns)
	}

	if _, err := m.Lookup("Omint ART"); err == nil {
		t.Fatalf("unmapped insurer did not fail")
	} else {
		var me *MappingError
		if !errors.As(err, &me) {
			t.Fatalf("error type = %T, want *MappingError", err)
		}
	}
}

func TestLoadMappingMissingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapeo.xlsx")
	writeXLSX(t, path, [][]interface{}{
		{"Aseguradora", "deuda_col"}, // no cuit_col
		{"Experta ART", "Saldo"},
	})
	if _, err := LoadMapping(path); err == nil {
		t.Fatalf("incomplete mapping header did not fail")
	}
}

func TestLoadMaster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maestro.xlsx")
	writeXLSX(t, path, [][]interface{}{
		{
			"CUIT (Nombre de Cuenta)", "Nombre de Cuenta (Nombre de Cuenta)",
			"Número de contrato", "Aporte LRT (Nombre de Cuenta)",
			"Cuenta Perdida", "Correo electrónico", "No Contactar",
			"Productor (Nombre de Cuenta)", "Referido por (Nombre de Cuenta)",
			"Cliente Importante (Nombre de Cuenta)",
			"Cápitas (Nombre de Cuenta)", "Ramo",
		},
		{"20-12345678-9", "ACME SA", "123456.0", "$ 1.234,50", "", "a@b.com",
			"VERDADERO", "GOMEZ", "PREMIER", "FALSO", "12", "ART"},
		{"30711111118", "SEGUNDA SRL", "", "", "Anulado 2023", "nan", "",
			"", "", "", "", "Domestica"},
		{"Total general", "", "", "", "", "", "", "", "", "", "", ""},
	})

	rows, err := LoadMaster(path)
	if err != nil {
		t.Fatalf("LoadMaster: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (summary row dropped)", len(rows))
	}

	r := rows[0]
	if r.CUIT != "20123456789" {
		t.Fatalf("cuit = %q", r.CUIT)
	}
	if r.MonthlyCost == nil || !r.MonthlyCost.Equal(dec("1234.50")) {
		t.Fatalf("monthly cost = %v, want 1234.50", r.MonthlyCost)
	}
	if !r.DoNotContact || r.ImportantClient {
		t.Fatalf("flags: dnc=%v important=%v", r.DoNotContact, r.ImportantClient)
	}
	if r.Producer != "GOMEZ" || r.ReferralSource != "PREMIER" {
		t.Fatalf("producer=%q referral=%q", r.Producer, r.ReferralSource)
	}
	if r.Capitas == nil || *r.Capitas != 12 {
		t.Fatalf("capitas = %v, want 12", r.Capitas)
	}

	if rows[1].CancellationStatus != "Anulado 2023" || rows[1].LineOfBusiness != "Domestica" {
		t.Fatalf("second row: %+v", rows[1])
	}
}

func TestLoadMasterRequiresCUITColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maestro.xlsx")
	writeXLSX(t, path, [][]interface{}{
		{"Razón social", "Contrato"},
		{"ACME SA", "1"},
	})
	if _, err := LoadMaster(path); err == nil {
		t.Fatalf("roster without a CUIT column did not fail")
	}
}

func TestLoadDebts(t *testing.T) {
	dir := t.TempDir()
	m, err := LoadMapping(writeMappingFixture(t, dir))
	if err != nil {
		t.Fatalf("LoadMapping: %v", err)
	}
	period := Period{Month: 6, Year: 2025}

	// Experta reports inverted sign; −1500 means a 1500 debt.
	writeXLSX(t, filepath.Join(dir, "Experta ART", "06-2025.xlsx"), [][]interface{}{
		{"CUIT", "Saldo"},
		{"20123456789", "-1.500,00"},
	})
	// Andina comes one row per policy, summed per CUIT before merging.
	writeXLSX(t, filepath.Join(dir, "Andina ART", "06-2025.xlsx"), [][]interface{}{
		{"Nro CUIT", "Deuda"},
		{"20123456789", "200"},
		{"20123456789", "300"},
		{"30711111118", "4.000,00"},
	})
	// Provincia sums two mapped columns per row.
	writeXLSX(t, filepath.Join(dir, "Provincia ART", "06-2025.xlsx"), [][]interface{}{
		{"CUIT", "Cuota", "Interés"},
		{"30711111118", "1000", "250,50"},
	})
	// A folder without this period's file is skipped.
	if err := os.MkdirAll(filepath.Join(dir, "Omint ART"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	t.Run("cuit policy aggregates across insurers", func(t *testing.T) {
		rows, sources, err := LoadDebts(dir, period, m, config.MatchByCUIT)
		if err != nil {
			t.Fatalf("LoadDebts: %v", err)
		}
		if len(sources) != 3 {
			t.Fatalf("sources = %v, want 3 insurers", sources)
		}
		byCUIT := map[string]DebtRow{}
		for _, r := range rows {
			byCUIT[r.CUIT] = r
		}
		if len(rows) != 2 {
			t.Fatalf("rows = %d, want 2", len(rows))
		}
		if d := byCUIT["20123456789"]; !d.Debt.Equal(dec("2000")) || d.Insurer != "(varias)" {
			t.Fatalf("20123456789: %+v, want debt 2000 insurer (varias)", d)
		}
		if d := byCUIT["30711111118"]; !d.Debt.Equal(dec("5250.50")) {
			t.Fatalf("30711111118: debt %v, want 5250.50", d.Debt)
		}
	})

	t.Run("cuit-insurer policy keeps insurers apart", func(t *testing.T) {
		rows, _, err := LoadDebts(dir, period, m, config.MatchByCUITInsurer)
		if err != nil {
			t.Fatalf("LoadDebts: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("rows = %d, want 3", len(rows))
		}
		for _, r := range rows {
			if r.Insurer == "(varias)" {
				t.Fatalf("aggregated label leaked into per-insurer rows: %+v", r)
			}
		}
	})
}

func TestLoadDebtsMappingErrors(t *testing.T) {
	period := Period{Month: 6, Year: 2025}

	t.Run("extract missing a mapped column", func(t *testing.T) {
		dir := t.TempDir()
		m, err := LoadMapping(writeMappingFixture(t, dir))
		if err != nil {
			t.Fatalf("LoadMapping: %v", err)
		}
		writeXLSX(t, filepath.Join(dir, "Provincia ART", "06-2025.xlsx"), [][]interface{}{
			{"CUIT", "Cuota"}, // Interés missing
			{"30711111118", "1000"},
		})
		_, _, err = LoadDebts(dir, period, m, config.MatchByCUIT)
		var me *MappingError
		if !errors.As(err, &me) {
			t.Fatalf("err = %v, want *MappingError", err)
		}
		if len(me.Columns) != 1 || me.Columns[0] != "Interés" {
			t.Fatalf("missing columns = %v, want [Interés]", me.Columns)
		}
	})

	t.Run("insurer folder without mapping entry", func(t *testing.T) {
		dir := t.TempDir()
		m, err := LoadMapping(writeMappingFixture(t, dir))
		if err != nil {
			t.Fatalf("LoadMapping: %v", err)
		}
		writeXLSX(t, filepath.Join(dir, "Galeno ART", "06-2025.xlsx"), [][]interface{}{
			{"CUIT", "Saldo"},
			{"20123456789", "100"},
		})
		_, _, err = LoadDebts(dir, period, m, config.MatchByCUIT)
		var me *MappingError
		if !errors.As(err, &me) {
			t.Fatalf("err = %v, want *MappingError", err)
		}
	})

	t.Run("no extracts for the period", func(t *testing.T) {
		dir := t.TempDir()
		m, err := LoadMapping(writeMappingFixture(t, dir))
		if err != nil {
			t.Fatalf("LoadMapping: %v", err)
		}
		if _, _, err := LoadDebts(dir, period, m, config.MatchByCUIT); err == nil {
			t.Fatalf("empty period did not fail")
		}
	})
}
