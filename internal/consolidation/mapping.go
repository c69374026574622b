package consolidation

import (
	"fmt"
	"strings"
)

// ColumnSpec tells the reader where an insurer's extract keeps its CUIT
// and debt. DebtColumns holds more than one entry when the mapping row
// uses a summation expression ("Cuota + Interés").
type ColumnSpec struct {
	Insurer     string
	CUITColumn  string
	DebtColumns []string
}

// Mapping is the insurer-name to column-spec table, keyed by normalized
// insurer name. It is resolved once at read time; nothing probes column
// synonyms per row.
type Mapping map[string]ColumnSpec

// Lookup resolves the spec for an insurer (folder) name, by normalized
// match. A missing entry is a MappingError: an insurer with an extract
// file but no mapping must fail the run, never be skipped.
func (m Mapping) Lookup(insurer string) (ColumnSpec, error) {
	if spec, ok := m[NormalizeInsurer(insurer)]; ok {
		return spec, nil
	}
	return ColumnSpec{}, &MappingError{Insurer: insurer}
}

// LoadMapping reads the mapping workbook. Expected header:
// Aseguradora | deuda_col | cuit_col.
func LoadMapping(path string) (Mapping, error) {
	rows, err := ReadSheetRows(path, "")
	if err != nil {
		return nil, fmt.Errorf("mapeo de aseguradoras: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("mapeo de aseguradoras %s: archivo vacío", path)
	}

	idx := headerIndex(rows[0])
	var missing []string
	for _, need := range []string{"Aseguradora", "deuda_col", "cuit_col"} {
		if _, ok := idx[normalizeHeader(need)]; !ok {
			missing = append(missing, need)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("mapeo de aseguradoras incompleto, faltan: %s",
			strings.Join(missing, ", "))
	}

	m := Mapping{}
	for _, row := range rows[1:] {
		name := strings.TrimSpace(cellAt(row, idx[normalizeHeader("Aseguradora")]))
		if name == "" {
			continue
		}
		debtExpr := strings.TrimSpace(cellAt(row, idx[normalizeHeader("deuda_col")]))
		cuitCol := strings.TrimSpace(cellAt(row, idx[normalizeHeader("cuit_col")]))

		spec := ColumnSpec{Insurer: name, CUITColumn: cuitCol}
		for _, part := range strings.Split(debtExpr, "+") {
			if p := strings.TrimSpace(part); p != "" {
				spec.DebtColumns = append(spec.DebtColumns, p)
			}
		}
		m[NormalizeInsurer(name)] = spec
	}
	return m, nil
}

// headerIndex maps normalized header names to their column position.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, taken := idx[key]; key != "" && !taken {
			idx[key] = i
		}
	}
	return idx
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
