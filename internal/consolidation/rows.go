package consolidation

import "github.com/shopspring/decimal"

// Transient row types. All of these live only for the duration of one run;
// the persisted copies are built from them by the usecase layer.

// MasterRow is one contractual relationship (insurer x client) read from
// the master roster. CUIT is already normalized; MonthlyCost already
// parsed (nil when blank or unparseable).
type MasterRow struct {
	CUIT               string
	LegalName          string
	Contract           string
	Insurer            string
	MonthlyCost        *decimal.Decimal
	CancellationStatus string // blank means the contract is current
	ReferralSource     string // drives the Premier label
	Email              string
	DoNotContact       bool
	Producer           string
	ImportantClient    bool
	LineOfBusiness     string
	Capitas            *int64
}

// DebtRow is one insurer's aggregated reported debt for one CUIT. Under
// the cuit policy Insurer is the synthetic "(varias)" after the final
// aggregation; under cuit-insurer it is the source folder name.
type DebtRow struct {
	CUIT    string
	Insurer string
	Debt    decimal.Decimal
}

// Row is one line of the consolidated base table (or of "No cruzan", with
// the master-derived fields left at their zero values). Q and MonthlyCost
// are nil whenever monthly cost is blank, zero or negative.
type Row struct {
	Period          string
	LegalName       string
	CUIT            string
	Contract        *int64
	Insurer         string
	Debt            decimal.Decimal
	MonthlyCost     *decimal.Decimal
	Q               *decimal.Decimal
	ContractState   string
	Email           string
	DoNotContact    bool
	Producer        string
	Premier         string
	ImportantClient bool
	Capitas         *int64 // only rendered on "Agregar costo mensual"
}

// Sheet is a named, ordered subset of rows headed for one worksheet.
type Sheet struct {
	Name        string
	Rows        []Row
	WithCapitas bool
}
