package consolidation

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"cobranzas_art/internal/config"
)

// Master roster schema: one internal field per entry, resolved against the
// header once per read. The roster export renames columns now and then,
// hence the alias lists.
var masterSchema = []struct {
	field   string
	aliases []string
}{
	{"cuit", []string{"CUIT (Nombre de Cuenta)", "CUIT"}},
	{"legal_name", []string{"Nombre de Cuenta (Nombre de Cuenta)", "Razón social"}},
	{"contract", []string{"Número de contrato", "Contrato"}},
	{"insurer", []string{"Aseguradora Enviada LookUp", "Aseguradora"}},
	{"monthly_cost", []string{"Aporte LRT (Nombre de Cuenta)", "Costo mensual"}},
	{"cancellation", []string{"Cuenta Perdida"}},
	{"email", []string{"Correo electrónico", "Email del trato"}},
	{"do_not_contact", []string{"No Contactar"}},
	{"producer", []string{"Productor"}},
	{"producer_account", []string{"Productor (Nombre de Cuenta)"}},
	{"referral", []string{"Referido por (Nombre de Cuenta)"}},
	{"important", []string{"Cliente Importante (Nombre de Cuenta)", "Cliente importante"}},
	{"capitas", []string{"Cápitas (Nombre de Cuenta)", "Capitas"}},
	{"line", []string{"Ramo"}},
}

// LoadMaster reads the first sheet of the master roster workbook into
// normalized rows. Missing roster columns are tolerated as blanks; only
// the CUIT column is mandatory.
func LoadMaster(path string) ([]MasterRow, error) {
	grid, err := ReadSheetRows(path, "")
	if err != nil {
		return nil, fmt.Errorf("maestro %s: %w", path, err)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("maestro %s: archivo vacío", path)
	}

	idx := headerIndex(grid[0])
	fieldCol := map[string]int{}
	for _, col := range masterSchema {
		fieldCol[col.field] = -1
		for _, alias := range col.aliases {
			if i, ok := idx[normalizeHeader(alias)]; ok {
				fieldCol[col.field] = i
				break
			}
		}
	}
	if fieldCol["cuit"] < 0 {
		return nil, fmt.Errorf("maestro %s: falta la columna de CUIT", path)
	}

	// The legacy "Productor" column wins over "Productor (Nombre de
	// Cuenta)" only when it actually carries data somewhere.
	producerCol := fieldCol["producer_account"]
	if c := fieldCol["producer"]; c >= 0 {
		for _, row := range grid[1:] {
			if strings.TrimSpace(cellAt(row, c)) != "" {
				producerCol = c
				break
			}
		}
	}

	get := func(row []string, field string) string {
		return strings.TrimSpace(cellAt(row, fieldCol[field]))
	}

	rows := make([]MasterRow, 0, len(grid)-1)
	for _, raw := range grid[1:] {
		cuitRaw := get(raw, "cuit")
		if !strings.ContainsAny(cuitRaw, "0123456789") {
			continue
		}
		rows = append(rows, MasterRow{
			CUIT:               NormalizeTaxID(cuitRaw),
			LegalName:          get(raw, "legal_name"),
			Contract:           get(raw, "contract"),
			Insurer:            get(raw, "insurer"),
			MonthlyCost:        roundPtr(ParseAmount(get(raw, "monthly_cost"))),
			CancellationStatus: get(raw, "cancellation"),
			ReferralSource:     get(raw, "referral"),
			Email:              get(raw, "email"),
			DoNotContact:       ParseFlag(get(raw, "do_not_contact")),
			Producer:           strings.TrimSpace(cellAt(raw, producerCol)),
			ImportantClient:    ParseFlag(get(raw, "important")),
			LineOfBusiness:     get(raw, "line"),
			Capitas:            intPtrFrom(get(raw, "capitas")),
		})
	}
	return rows, nil
}

// LoadDebts walks the per-insurer folders under dir, reads each insurer's
// MM-YYYY.xlsx extract through its column mapping, applies the per-insurer
// adjustments and aggregates per the selected policy:
//
//   - MatchByCUIT: one row per CUIT, debt summed across insurers, insurer
//     label "(varias)".
//   - MatchByCUITInsurer: one row per (CUIT, insurer folder).
//
// It also returns insurer -> file name, for the lot audit record.
func LoadDebts(dir string, period Period, m Mapping, policy config.MatchPolicy) ([]DebtRow, map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("carpeta de aseguradoras %s: %w", dir, err)
	}

	fileName := period.String() + ".xlsx"
	sourceFiles := map[string]string{}
	var all []DebtRow

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		fp := filepath.Join(dir, e.Name(), fileName)
		if _, err := os.Stat(fp); err != nil {
			continue
		}
		rows, err := readInsurerExtract(fp, e.Name(), m)
		if err != nil {
			return nil, nil, err
		}
		sourceFiles[e.Name()] = fileName
		all = append(all, rows...)
	}

	if len(all) == 0 {
		return nil, nil, fmt.Errorf("no hay archivos %s en %s", fileName, dir)
	}

	switch policy {
	case config.MatchByCUITInsurer:
		return aggregate(all, func(d DebtRow) string { return d.CUIT + "\x00" + d.Insurer }, ""), sourceFiles, nil
	default:
		return aggregate(all, func(d DebtRow) string { return d.CUIT }, "(varias)"), sourceFiles, nil
	}
}

func readInsurerExtract(path, insurer string, m Mapping) ([]DebtRow, error) {
	spec, err := m.Lookup(insurer)
	if err != nil {
		return nil, err
	}

	grid, err := ReadSheetRows(path, "")
	if err != nil {
		return nil, fmt.Errorf("extracto %s: %w", path, err)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("extracto %s: archivo vacío", path)
	}

	idx := headerIndex(grid[0])
	var missing []string
	cuitCol, ok := idx[normalizeHeader(spec.CUITColumn)]
	if !ok {
		missing = append(missing, spec.CUITColumn)
	}
	debtCols := make([]int, 0, len(spec.DebtColumns))
	for _, c := range spec.DebtColumns {
		i, ok := idx[normalizeHeader(c)]
		if !ok {
			missing = append(missing, c)
			continue
		}
		debtCols = append(debtCols, i)
	}
	if len(missing) > 0 {
		return nil, &MappingError{Insurer: insurer, Columns: missing}
	}

	norm := NormalizeInsurer(insurer)
	invertSign := strings.Contains(norm, "experta")

	rows := make([]DebtRow, 0, len(grid)-1)
	for _, raw := range grid[1:] {
		cuitRaw := cellAt(raw, cuitCol)
		if !strings.ContainsAny(cuitRaw, "0123456789") {
			continue
		}
		debt := decimal.Zero
		for _, c := range debtCols {
			if d := ParseAmount(cellAt(raw, c)); d != nil {
				debt = debt.Add(*d)
			}
		}
		// Experta reports debt with inverted sign
		if invertSign {
			debt = debt.Neg()
		}
		rows = append(rows, DebtRow{
			CUIT:    NormalizeTaxID(cuitRaw),
			Insurer: insurer,
			Debt:    debt.Round(2),
		})
	}

	// Andina sends pre-aggregated per-policy rows; collapse per CUIT
	// before merging with the other insurers.
	if strings.Contains(norm, "andina") {
		rows = aggregate(rows, func(d DebtRow) string { return d.CUIT }, insurer)
	}
	return rows, nil
}

// aggregate sums debt per key preserving first-seen order. When label is
// non-empty it replaces the insurer on the aggregated rows.
func aggregate(rows []DebtRow, key func(DebtRow) string, label string) []DebtRow {
	order := make([]string, 0, len(rows))
	byKey := map[string]DebtRow{}
	for _, r := range rows {
		k := key(r)
		if cur, ok := byKey[k]; ok {
			cur.Debt = cur.Debt.Add(r.Debt)
			byKey[k] = cur
			continue
		}
		if label != "" {
			r.Insurer = label
		}
		order = append(order, k)
		byKey[k] = r
	}
	out := make([]DebtRow, 0, len(order))
	for _, k := range order {
		out = append(out, byKey[k])
	}
	return out
}

func roundPtr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	r := d.Round(2)
	return &r
}

func intPtrFrom(raw string) *int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if d := ParseAmount(s); d != nil {
		n := d.IntPart()
		return &n
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &n
	}
	return nil
}

// sortedInsurers is a small debugging aid for log lines.
func sortedInsurers(sourceFiles map[string]string) []string {
	names := make([]string, 0, len(sourceFiles))
	for n := range sourceFiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
