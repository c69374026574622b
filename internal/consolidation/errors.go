package consolidation

import (
	"fmt"
	"strings"
)

// FormatError reports an input value whose shape is not one the pipeline
// accepts (period strings, mostly). It always fails the run: a bad period
// is a configuration mistake, not a data wart.

type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("formato no soportado %q: %s", e.Input, e.Reason)
}

// MappingError reports a broken insurer column mapping: either the mapping
// workbook has no row for the insurer, or the extract file is missing the
// configured column(s). It names the insurer and the columns at fault so
// the operator can fix the mapping workbook.

type MappingError struct {
	Insurer string
	Columns []string
}

func (e *MappingError) Error() string {
	if len(e.Columns) == 0 {
		return fmt.Sprintf("no hay mapeo para la aseguradora %q", e.Insurer)
	}
	return fmt.Sprintf("mapeo incompleto para %q: faltan columnas %s",
		e.Insurer, strings.Join(e.Columns, ", "))
}
