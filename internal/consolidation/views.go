package consolidation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Sheet names, in output order.
const (
	SheetConsolidado = "Consolidado"
	SheetNoCruzan    = "No cruzan"
	SheetSinMail     = "Sin mail"
	SheetAnuladas    = "Anuladas"
	SheetNoContactar = "No contactar"
	SheetImportantes = "Clientes importantes"
	SheetUnQDeudor   = "1 Q.deudor"
	SheetPremier     = "Premier"
	SheetProductor   = "Productor"
	SheetDeudaProme  = "Deuda Promecor"
	SheetAgregarCost = "Agregar costo mensual"
)

var debtThreshold = decimal.NewFromInt(1000)

// DeriveSheets applies the agreed filter matrix over the consolidated base
// table and returns every worksheet of the output workbook, "Consolidado"
// and "No cruzan" included. Views are pure filters over the base, overlap
// by design, and never look at "No cruzan".
func DeriveSheets(base, unmatched []Row) []Sheet {
	sheets := []Sheet{
		{Name: SheetConsolidado, Rows: base},
		{Name: SheetNoCruzan, Rows: unmatched},
		{Name: SheetSinMail, Rows: filter(base, sinMail)},
		{Name: SheetAnuladas, Rows: filter(base, anuladas)},
		{Name: SheetNoContactar, Rows: filter(base, noContactar)},
		{Name: SheetImportantes, Rows: filter(base, clientesImportantes)},
		{Name: SheetUnQDeudor, Rows: filter(base, unQDeudor)},
		{Name: SheetPremier, Rows: filter(base, premier)},
		{Name: SheetProductor, Rows: filter(base, productor)},
		{Name: SheetDeudaProme, Rows: filter(base, deudaPromecor)},
		{Name: SheetAgregarCost, Rows: agregarCostoMensual(base), WithCapitas: true},
	}
	return sheets
}

func filter(rows []Row, pred func(Row) bool) []Row {
	out := []Row{}
	for _, r := range rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func vigente(r Row) bool {
	return strings.EqualFold(strings.TrimSpace(r.ContractState), StateCurrent)
}

func hasMail(r Row) bool {
	return !IsEmptyEmail(r.Email)
}

func isHouseProducer(r Row) bool {
	return strings.EqualFold(strings.TrimSpace(r.Producer), ProducerHouse)
}

// Sin mail: no address and not a Premier client.
func sinMail(r Row) bool {
	return !hasMail(r) && r.Premier == PremierNo
}

// Anuladas: contract no longer current, address known.
func anuladas(r Row) bool {
	return !vigente(r) && hasMail(r)
}

// No contactar: flagged do-not-contact, not an important client.
func noContactar(r Row) bool {
	return r.DoNotContact && !r.ImportantClient && vigente(r) && hasMail(r)
}

// Clientes importantes: the mirror of No contactar.
func clientesImportantes(r Row) bool {
	return r.ImportantClient && !r.DoNotContact && vigente(r) && hasMail(r)
}

// 1 Q.deudor: at most one period behind (Q defined).
func unQDeudor(r Row) bool {
	return r.Q != nil && r.Q.LessThanOrEqual(decimal.NewFromInt(1)) && vigente(r) && hasMail(r)
}

// Premier: Premier clients with a current contract and an address.
func premier(r Row) bool {
	return r.Premier == PremierYes && vigente(r) && hasMail(r)
}

// Productor: external producers, more than one period behind, real debt.
func productor(r Row) bool {
	return !isHouseProducer(r) &&
		r.Q != nil && r.Q.GreaterThan(decimal.NewFromInt(1)) &&
		vigente(r) && hasMail(r) &&
		r.Debt.GreaterThanOrEqual(debtThreshold)
}

// Deuda Promecor: house-produced debtors that survive every exclusion.
func deudaPromecor(r Row) bool {
	return isHouseProducer(r) &&
		r.Q != nil && r.Q.GreaterThan(decimal.NewFromInt(1)) &&
		vigente(r) &&
		!r.ImportantClient && !r.DoNotContact &&
		r.Premier == PremierNo &&
		hasMail(r) &&
		r.Debt.GreaterThanOrEqual(debtThreshold)
}

// Agregar costo mensual: rows whose roster has no usable monthly cost.
// Q is forced blank and Capitas (already joined from the roster) is
// rendered on this sheet only.
func agregarCostoMensual(base []Row) []Row {
	out := []Row{}
	for _, r := range base {
		if r.MonthlyCost != nil && r.MonthlyCost.Sign() != 0 {
			continue
		}
		r.Q = nil
		out = append(out, r)
	}
	return out
}
