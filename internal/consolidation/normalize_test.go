package consolidation

import (
	"errors"
	"testing"
)

func TestNormalizeTaxID(t *testing.T) {
	t.Run("strips separators and pads to 11 digits", func(t *testing.T) {
		cases := map[string]string{
			"20-12345678-9":  "20123456789",
			"20123456789":    "20123456789",
			" 20.12345678.9": "20123456789",
			"12345678":       "00012345678",
			"999920123456789": "20123456789",
		}
		for in, want := range cases {
			if got := NormalizeTaxID(in); got != want {
				t.Fatalf("NormalizeTaxID(%q) = %q, want %q", in, got, want)
			}
		}
	})

	t.Run("idempotent and fixed width", func(t *testing.T) {
		for _, in := range []string{"20-12345678-9", "", "abc", "7"} {
			once := NormalizeTaxID(in)
			if len(once) != 11 {
				t.Fatalf("NormalizeTaxID(%q) has length %d, want 11", in, len(once))
			}
			if twice := NormalizeTaxID(once); twice != once {
				t.Fatalf("not idempotent: %q -> %q -> %q", in, once, twice)
			}
		}
	})
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string // "" means nil
	}{
		{"$ 1.234.567,89", "1234567.89"},
		{"1234.56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"1 234,50", "1234.5"},
		{"$ 12.345", "12.345"}, // no comma: the period is the decimal separator
		{"-1.000,00", "-1000"},
		{"(1.000,00)", "-1000"},
		{"100000", "100000"},
		{"", ""},
		{"   ", ""},
		{"nan", ""},
		{"None", ""},
		{"sin dato", ""},
	}
	for _, tc := range cases {
		got := ParseAmount(tc.in)
		if tc.want == "" {
			if got != nil {
				t.Fatalf("ParseAmount(%q) = %s, want nil", tc.in, got)
			}
			continue
		}
		if got == nil {
			t.Fatalf("ParseAmount(%q) = nil, want %s", tc.in, tc.want)
		}
		if got.String() != tc.want {
			t.Fatalf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	t.Run("accepted shapes", func(t *testing.T) {
		cases := map[string]Period{
			"06-2025":    {Month: 6, Year: 2025},
			"6-2025":     {Month: 6, Year: 2025},
			"06/2025":    {Month: 6, Year: 2025},
			"2025-06":    {Month: 6, Year: 2025},
			"2025/06":    {Month: 6, Year: 2025},
			"2025-06-15": {Month: 6, Year: 2025},
		}
		for in, want := range cases {
			got, err := ParsePeriod(in)
			if err != nil {
				t.Fatalf("ParsePeriod(%q): %v", in, err)
			}
			if got != want {
				t.Fatalf("ParsePeriod(%q) = %+v, want %+v", in, got, want)
			}
		}
	})

	t.Run("canonical string", func(t *testing.T) {
		p, err := ParsePeriod("6/2025")
		if err != nil {
			t.Fatalf("ParsePeriod: %v", err)
		}
		if p.String() != "06-2025" {
			t.Fatalf("String() = %q, want 06-2025", p.String())
		}
	})

	t.Run("rejects everything else with FormatError", func(t *testing.T) {
		for _, in := range []string{"", "2025", "13-2025", "junio 2025", "06-25-2025x"} {
			_, err := ParsePeriod(in)
			if err == nil {
				t.Fatalf("ParsePeriod(%q) succeeded, want error", in)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("ParsePeriod(%q) error %T, want *FormatError", in, err)
			}
		}
	})
}

func TestIsEmptyEmail(t *testing.T) {
	for _, in := range []string{"", "   ", "nan", "NaN", "none", "None"} {
		if !IsEmptyEmail(in) {
			t.Fatalf("IsEmptyEmail(%q) = false, want true", in)
		}
	}
	for _, in := range []string{"a@b.com", " cliente@example.com "} {
		if IsEmptyEmail(in) {
			t.Fatalf("IsEmptyEmail(%q) = true, want false", in)
		}
	}
}

func TestParseFlag(t *testing.T) {
	truthy := []string{"true", "TRUE", "Verdadero", "si", "Sí", "1", "yes", "2", "0,5"}
	for _, in := range truthy {
		if !ParseFlag(in) {
			t.Fatalf("ParseFlag(%q) = false, want true", in)
		}
	}
	falsy := []string{"", "false", "no", "0", "No es Premier", "ok", "-"}
	for _, in := range falsy {
		if ParseFlag(in) {
			t.Fatalf("ParseFlag(%q) = true, want false", in)
		}
	}
}
