package consolidation

import (
	"testing"

	"github.com/shopspring/decimal"

	"cobranzas_art/internal/config"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

var testPeriod = Period{Month: 6, Year: 2025}

func TestMatchByCUIT_TieBreak(t *testing.T) {
	t.Run("single blank-status row wins and is labeled Vigente", func(t *testing.T) {
		roster := []MasterRow{
			{CUIT: "20123456789", LegalName: "ACME SA", CancellationStatus: "Anulado 2023", MonthlyCost: decPtr("500")},
			{CUIT: "20123456789", LegalName: "ACME SA", CancellationStatus: "", MonthlyCost: decPtr("1000")},
		}
		debts := []DebtRow{{CUIT: "20123456789", Insurer: "(varias)", Debt: dec("2500")}}

		res := Match(roster, debts, testPeriod, config.MatchByCUIT, nil)
		if len(res.Base) != 1 || len(res.Unmatched) != 0 {
			t.Fatalf("base=%d unmatched=%d, want 1/0", len(res.Base), len(res.Unmatched))
		}
		row := res.Base[0]
		if row.ContractState != StateCurrent {
			t.Fatalf("state = %q, want %q", row.ContractState, StateCurrent)
		}
		if row.MonthlyCost == nil || !row.MonthlyCost.Equal(dec("1000")) {
			t.Fatalf("monthly cost = %v, want 1000 (the blank-status row)", row.MonthlyCost)
		}
	})

	t.Run("two blank-status rows make the CUIT ambiguous", func(t *testing.T) {
		roster := []MasterRow{
			{CUIT: "20123456789", CancellationStatus: ""},
			{CUIT: "20123456789", CancellationStatus: ""},
		}
		debts := []DebtRow{{CUIT: "20123456789", Insurer: "(varias)", Debt: dec("5000")}}

		res := Match(roster, debts, testPeriod, config.MatchByCUIT, nil)
		if len(res.Base) != 0 {
			t.Fatalf("ambiguous CUIT reached the base table: %+v", res.Base)
		}
		if len(res.Unmatched) != 1 {
			t.Fatalf("unmatched=%d, want 1", len(res.Unmatched))
		}
		if !res.AmbiguousCUITs["20123456789"] {
			t.Fatalf("CUIT not flagged ambiguous")
		}
		if res.Unmatched[0].Producer != ProducerHouse {
			t.Fatalf("unmatched producer = %q, want %q", res.Unmatched[0].Producer, ProducerHouse)
		}
	})

	t.Run("zero blank-status rows fall back to the first", func(t *testing.T) {
		roster := []MasterRow{
			{CUIT: "20123456789", LegalName: "FIRST", CancellationStatus: "Anulado"},
			{CUIT: "20123456789", LegalName: "SECOND", CancellationStatus: "Baja"},
		}
		debts := []DebtRow{{CUIT: "20123456789", Insurer: "(varias)", Debt: dec("5000")}}

		res := Match(roster, debts, testPeriod, config.MatchByCUIT, nil)
		if len(res.Base) != 1 {
			t.Fatalf("base=%d, want 1", len(res.Base))
		}
		if res.Base[0].LegalName != "FIRST" {
			t.Fatalf("matched %q, want FIRST", res.Base[0].LegalName)
		}
		if res.Base[0].ContractState != "Anulado" {
			t.Fatalf("state = %q, want Anulado", res.Base[0].ContractState)
		}
	})

	t.Run("debt with no master row goes to unmatched", func(t *testing.T) {
		debts := []DebtRow{{CUIT: "30999999990", Insurer: "(varias)", Debt: dec("5000")}}
		res := Match(nil, debts, testPeriod, config.MatchByCUIT, nil)
		if len(res.Unmatched) != 1 || len(res.Base) != 0 {
			t.Fatalf("base=%d unmatched=%d, want 0/1", len(res.Base), len(res.Unmatched))
		}
	})
}

func TestMatchBusinessExclusions(t *testing.T) {
	roster := []MasterRow{
		{CUIT: "20111111112", Email: "a@b.com"},
		{CUIT: "20222222223", Email: "a@b.com"},
		{CUIT: "20333333334", Email: "a@b.com"},
		{CUIT: "20444444445", Email: "a@b.com"},
		{CUIT: "20555555556", LineOfBusiness: "Domestica", Email: "a@b.com"},
	}
	debts := []DebtRow{
		{CUIT: "20111111112", Insurer: "(varias)", Debt: dec("999")},   // excluded: 0..999
		{CUIT: "20222222223", Insurer: "(varias)", Debt: dec("1000")},  // kept
		{CUIT: "20333333334", Insurer: "(varias)", Debt: dec("-50")},   // kept: negative
		{CUIT: "20444444445", Insurer: "(varias)", Debt: dec("0")},     // excluded: 0..999
		{CUIT: "20555555556", Insurer: "(varias)", Debt: dec("50000")}, // excluded: Domestica
	}

	res := Match(roster, debts, testPeriod, config.MatchByCUIT, nil)
	got := map[string]bool{}
	for _, r := range res.Base {
		got[r.CUIT] = true
	}
	if len(res.Base) != 2 || !got["20222222223"] || !got["20333333334"] {
		t.Fatalf("base CUITs = %v, want exactly {20222222223, 20333333334}", got)
	}
	// excluded rows are matched rows: they must not leak into No cruzan
	if len(res.Unmatched) != 0 {
		t.Fatalf("unmatched = %+v, want empty", res.Unmatched)
	}
}

func TestMatchQDerivation(t *testing.T) {
	t.Run("positive cost yields Q rounded to 2", func(t *testing.T) {
		roster := []MasterRow{{CUIT: "20123456789", MonthlyCost: decPtr("1000.00")}}
		debts := []DebtRow{{CUIT: "20123456789", Insurer: "(varias)", Debt: dec("2500.00")}}

		res := Match(roster, debts, testPeriod, config.MatchByCUIT, nil)
		if len(res.Base) != 1 {
			t.Fatalf("base=%d, want 1", len(res.Base))
		}
		if q := res.Base[0].Q; q == nil || !q.Equal(dec("2.5")) {
			t.Fatalf("Q = %v, want 2.5", q)
		}
	})

	t.Run("zero, blank or negative cost blanks both fields", func(t *testing.T) {
		for name, cost := range map[string]*decimal.Decimal{
			"blank": nil, "zero": decPtr("0"), "negative": decPtr("-100"),
		} {
			roster := []MasterRow{{CUIT: "20123456789", MonthlyCost: cost}}
			debts := []DebtRow{{CUIT: "20123456789", Insurer: "(varias)", Debt: dec("2500")}}

			res := Match(roster, debts, testPeriod, config.MatchByCUIT, nil)
			if len(res.Base) != 1 {
				t.Fatalf("%s: base=%d, want 1", name, len(res.Base))
			}
			if res.Base[0].Q != nil || res.Base[0].MonthlyCost != nil {
				t.Fatalf("%s: Q=%v cost=%v, want both nil", name, res.Base[0].Q, res.Base[0].MonthlyCost)
			}
		}
	})
}

func TestMatchDerivedLabels(t *testing.T) {
	roster := []MasterRow{{
		CUIT:           "20123456789",
		ReferralSource: "PREMIER",
		Producer:       "  ",
		Contract:       "123456.0",
	}}
	debts := []DebtRow{{CUIT: "20123456789", Insurer: "(varias)", Debt: dec("2000")}}

	res := Match(roster, debts, testPeriod, config.MatchByCUIT, nil)
	row := res.Base[0]
	if row.Premier != PremierYes {
		t.Fatalf("premier = %q, want %q", row.Premier, PremierYes)
	}
	if row.Producer != ProducerHouse {
		t.Fatalf("blank producer = %q, want %q", row.Producer, ProducerHouse)
	}
	if row.Contract == nil || *row.Contract != 123456 {
		t.Fatalf("contract = %v, want 123456", row.Contract)
	}
	if row.Period != "06-2025" {
		t.Fatalf("period = %q, want 06-2025", row.Period)
	}
}

func TestMatchByCUITInsurer(t *testing.T) {
	aliases := map[string]string{"qbe art": "experta art"}

	t.Run("resolves per insurer with alias", func(t *testing.T) {
		roster := []MasterRow{
			{CUIT: "20123456789", LegalName: "VIA QBE", Insurer: "QBE ART", CancellationStatus: "Vigente"},
			{CUIT: "20123456789", LegalName: "VIA ANDINA", Insurer: "Andina ART", CancellationStatus: ""},
		}
		debts := []DebtRow{
			{CUIT: "20123456789", Insurer: "Experta ART", Debt: dec("3000")},
			{CUIT: "20123456789", Insurer: "Andina ART", Debt: dec("4000")},
		}

		res := Match(roster, debts, testPeriod, config.MatchByCUITInsurer, aliases)
		if len(res.Base) != 2 || len(res.Unmatched) != 0 {
			t.Fatalf("base=%d unmatched=%d, want 2/0", len(res.Base), len(res.Unmatched))
		}
		names := map[string]string{}
		for _, r := range res.Base {
			names[r.Insurer] = r.LegalName
		}
		if names["QBE ART"] != "VIA QBE" || names["Andina ART"] != "VIA ANDINA" {
			t.Fatalf("wrong master rows resolved: %v", names)
		}
	})

	t.Run("prefers the vigente row, no ambiguity concept", func(t *testing.T) {
		roster := []MasterRow{
			{CUIT: "20123456789", LegalName: "OLD", Insurer: "Andina ART", CancellationStatus: "Anulado"},
			{CUIT: "20123456789", LegalName: "CURRENT", Insurer: "Andina ART", CancellationStatus: ""},
			{CUIT: "20123456789", LegalName: "ALSO CURRENT", Insurer: "Andina ART", CancellationStatus: "Vigente"},
		}
		debts := []DebtRow{{CUIT: "20123456789", Insurer: "Andina ART", Debt: dec("2000")}}

		res := Match(roster, debts, testPeriod, config.MatchByCUITInsurer, nil)
		if len(res.Base) != 1 {
			t.Fatalf("base=%d, want 1", len(res.Base))
		}
		if res.Base[0].LegalName != "CURRENT" {
			t.Fatalf("matched %q, want the first current row", res.Base[0].LegalName)
		}
	})

	t.Run("missing combination goes to unmatched", func(t *testing.T) {
		roster := []MasterRow{{CUIT: "20123456789", Insurer: "Andina ART"}}
		debts := []DebtRow{{CUIT: "20123456789", Insurer: "Provincia ART", Debt: dec("2000")}}

		res := Match(roster, debts, testPeriod, config.MatchByCUITInsurer, nil)
		if len(res.Base) != 0 || len(res.Unmatched) != 1 {
			t.Fatalf("base=%d unmatched=%d, want 0/1", len(res.Base), len(res.Unmatched))
		}
	})
}
