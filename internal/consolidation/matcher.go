package consolidation

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"cobranzas_art/internal/config"
)

// Labels shared with the persistence layer and the views.
const (
	ProducerHouse = "PROMECOR"
	StateCurrent  = "Vigente"
	PremierYes    = "Premier"
	PremierNo     = "No es Premier"
)

// MatchResult partitions the period's debt rows into the consolidated base
// table and "No cruzan". AmbiguousCUITs only carries entries under the
// cuit policy.
type MatchResult struct {
	Base           []Row
	Unmatched      []Row
	AmbiguousCUITs map[string]bool
}

// Match cross-references the aggregated debt rows against the master
// roster.
//
// Under config.MatchByCUIT the authoritative master row per CUIT is
// resolved by the cancellation-status rule: exactly one blank-status row
// wins; two or more blank-status rows make the CUIT ambiguous and every
// debt row for it goes to "No cruzan"; zero blank-status rows fall back to
// the first row in input order.
//
// Under config.MatchByCUITInsurer each (CUIT, insurer) combination
// resolves independently: a current row ("Vigente" or blank status) is
// preferred, else the first; there is no ambiguity concept. Insurer names
// are compared through the alias table so rebrands keep matching.
//
// The base table then drops the business exclusions: line of business
// "Domestica" and debt strictly between 0 and 999 inclusive. Excluded
// rows are matched rows, so they do not reappear in "No cruzan".
func Match(roster []MasterRow, debts []DebtRow, period Period, policy config.MatchPolicy, aliases map[string]string) MatchResult {
	if policy == config.MatchByCUITInsurer {
		return matchByCUITInsurer(roster, debts, period, aliases)
	}
	return matchByCUIT(roster, debts, period)
}

func matchByCUIT(roster []MasterRow, debts []DebtRow, period Period) MatchResult {
	type group struct {
		blanks int
		first  *MasterRow // first row in input order
		blank  *MasterRow // first blank-status row
	}
	groups := map[string]*group{}
	for i := range roster {
		r := &roster[i]
		g := groups[r.CUIT]
		if g == nil {
			g = &group{}
			groups[r.CUIT] = g
		}
		if g.first == nil {
			g.first = r
		}
		if strings.TrimSpace(r.CancellationStatus) == "" {
			g.blanks++
			if g.blank == nil {
				g.blank = r
			}
		}
	}

	ambiguous := map[string]bool{}
	for cuit, g := range groups {
		if g.blanks > 1 {
			ambiguous[cuit] = true
		}
	}

	res := MatchResult{AmbiguousCUITs: ambiguous}
	for _, d := range debts {
		g := groups[d.CUIT]
		if g == nil || ambiguous[d.CUIT] {
			res.Unmatched = append(res.Unmatched, unmatchedRow(d, period))
			continue
		}
		master := g.first
		if g.blank != nil {
			master = g.blank
		}
		if row, keep := consolidatedRow(d, *master, period); keep {
			res.Base = append(res.Base, row)
		}
	}
	return res
}

func matchByCUITInsurer(roster []MasterRow, debts []DebtRow, period Period, aliases map[string]string) MatchResult {
	canon := func(insurer string) string {
		n := NormalizeInsurer(insurer)
		if to, ok := aliases[n]; ok {
			return to
		}
		return n
	}

	type group struct {
		first   *MasterRow
		current *MasterRow // blank or literal "Vigente" status
	}
	groups := map[string]*group{}
	for i := range roster {
		r := &roster[i]
		key := r.CUIT + "\x00" + canon(r.Insurer)
		g := groups[key]
		if g == nil {
			g = &group{}
			groups[key] = g
		}
		if g.first == nil {
			g.first = r
		}
		status := strings.TrimSpace(r.CancellationStatus)
		if g.current == nil && (status == "" || strings.EqualFold(status, StateCurrent)) {
			g.current = r
		}
	}

	res := MatchResult{AmbiguousCUITs: map[string]bool{}}
	for _, d := range debts {
		g := groups[d.CUIT+"\x00"+canon(d.Insurer)]
		if g == nil {
			res.Unmatched = append(res.Unmatched, unmatchedRow(d, period))
			continue
		}
		master := g.first
		if g.current != nil {
			master = g.current
		}
		if row, keep := consolidatedRow(d, *master, period); keep {
			res.Base = append(res.Base, row)
		}
	}
	return res
}

// consolidatedRow joins one debt row with its authoritative master row and
// derives the presentation fields. keep is false when a business exclusion
// applies.
func consolidatedRow(d DebtRow, m MasterRow, period Period) (Row, bool) {
	if strings.EqualFold(strings.TrimSpace(m.LineOfBusiness), "domestica") {
		return Row{}, false
	}
	// exclude 0 <= debt <= 999; keep negatives and >= 1000
	if d.Debt.Sign() >= 0 && d.Debt.LessThan(decimal.NewFromInt(1000)) {
		return Row{}, false
	}

	row := Row{
		Period:          period.String(),
		LegalName:       m.LegalName,
		CUIT:            d.CUIT,
		Contract:        contractNumber(m.Contract),
		Insurer:         m.Insurer,
		Debt:            d.Debt,
		ContractState:   contractState(m.CancellationStatus),
		Email:           m.Email,
		DoNotContact:    m.DoNotContact,
		Producer:        producerLabel(m.Producer),
		Premier:         premierLabel(m.ReferralSource),
		ImportantClient: m.ImportantClient,
		Capitas:         m.Capitas,
	}

	// Q only exists for a positive monthly cost; zero, blank or negative
	// cost blanks both fields.
	if m.MonthlyCost != nil && m.MonthlyCost.Sign() > 0 {
		cost := m.MonthlyCost.Round(2)
		q := d.Debt.DivRound(cost, 2)
		row.MonthlyCost = &cost
		row.Q = &q
	}
	return row, true
}

func unmatchedRow(d DebtRow, period Period) Row {
	return Row{
		Period:   period.String(),
		CUIT:     d.CUIT,
		Insurer:  d.Insurer,
		Debt:     d.Debt,
		Producer: ProducerHouse,
	}
}

func contractState(cancellation string) string {
	if s := strings.TrimSpace(cancellation); s != "" {
		return s
	}
	return StateCurrent
}

func premierLabel(referral string) string {
	if strings.EqualFold(strings.TrimSpace(referral), "premier") {
		return PremierYes
	}
	return PremierNo
}

func producerLabel(producer string) string {
	if p := strings.TrimSpace(producer); p != "" {
		return p
	}
	return ProducerHouse
}

func contractNumber(raw string) *int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	// contracts sometimes arrive as "123456.0" from spreadsheet exports
	s = strings.TrimSuffix(s, ".0")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
