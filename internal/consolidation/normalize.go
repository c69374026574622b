package consolidation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Normalization helpers shared by the whole pipeline. Every comparison in
// the matcher and the views goes through these; nothing re-implements its
// own trimming or boolean parsing.

const cuitWidth = 11

// NormalizeTaxID reduces a raw CUIT cell to its digits, left-pads with
// zeros and keeps the rightmost 11. Idempotent.
func NormalizeTaxID(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if len(s) > cuitWidth {
		s = s[len(s)-cuitWidth:]
	}
	return strings.Repeat("0", cuitWidth-len(s)) + s
}

// ParseAmount parses AR-formatted monetary text ("$ 1.234,56", "1 234,50",
// "(1.000,00)") into a decimal. If a comma appears after the last period
// the comma is the decimal separator and periods group thousands; plain
// "1234.56" stays anglo-decimal. Returns nil for empty or unparseable
// input; malformed business data never aborts a run.
func ParseAmount(raw string) *decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "none") {
		return nil
	}

	// "(1.000,00)" means negative; the symbol filter below drops the parens
	neg := strings.Contains(s, "(") && strings.Contains(s, ")")

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	s = b.String()
	if s == "" || s == "-" {
		return nil
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	if lastComma > lastDot {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
		// a second comma means the text was garbage
		if strings.Contains(s, ",") {
			return nil
		}
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	if neg {
		d = d.Neg()
	}
	return &d
}

// Period is a canonical (month, year) pair; all period strings used by the
// pipeline and the audit store render through String().

type Period struct {
	Month int
	Year  int
}

// ParsePeriod accepts "MM-YYYY", "MM/YYYY", "YYYY-MM", "YYYY/MM" and
// "YYYY-MM-DD". Anything else is a FormatError for the caller; the period
// is never silently defaulted.
func ParsePeriod(raw string) (Period, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), "/", "-")
	if s == "" {
		return Period{}, &FormatError{Input: raw, Reason: "periodo vacío"}
	}
	parts := strings.Split(s, "-")

	var mm, yyyy string
	switch len(parts) {
	case 2:
		if len(parts[0]) == 4 {
			yyyy, mm = parts[0], parts[1]
		} else {
			mm, yyyy = parts[0], parts[1]
		}
	case 3:
		if len(parts[0]) != 4 {
			return Period{}, &FormatError{Input: raw, Reason: "se espera AAAA-MM-DD"}
		}
		yyyy, mm = parts[0], parts[1]
	default:
		return Period{}, &FormatError{Input: raw, Reason: "se espera MM-AAAA o AAAA-MM"}
	}

	m, err := strconv.Atoi(mm)
	if err != nil || m < 1 || m > 12 {
		return Period{}, &FormatError{Input: raw, Reason: "mes inválido"}
	}
	y, err := strconv.Atoi(yyyy)
	if err != nil || len(yyyy) != 4 {
		return Period{}, &FormatError{Input: raw, Reason: "año inválido"}
	}
	return Period{Month: m, Year: y}, nil
}

// String renders the canonical "MM-YYYY" form used in filenames, sheet
// rows and lot records.
func (p Period) String() string {
	return fmt.Sprintf("%02d-%04d", p.Month, p.Year)
}

// Date is the first day of the period's month, UTC.
func (p Period) Date() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// IsEmptyEmail treats blank, whitespace-only and the literal strings
// "nan"/"none" (artifacts of upstream exports) as no address.
func IsEmptyEmail(raw string) bool {
	s := strings.TrimSpace(raw)
	return s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "none")
}

var trueTokens = map[string]bool{
	"true": true, "verdadero": true, "si": true, "sí": true, "1": true,
	"t": true, "yes": true,
}

// ParseFlag converts the free-text yes/no spellings found in roster
// exports into a strict boolean: a closed set of true tokens, or a
// non-zero number, is true; everything else (including "No es Premier",
// "ok", "-") is false.
func ParseFlag(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return false
	}
	if trueTokens[s] {
		return true
	}
	if f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64); err == nil {
		return f != 0
	}
	return false
}

// NormalizeInsurer lowercases and collapses whitespace so "Experta  ART"
// and "experta art" compare equal.
func NormalizeInsurer(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
