package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SheetTag identifies which output sheet a persisted item was taken from.
// Only the sheets that feed later queries and mailings are persisted.

type SheetTag string

const (
	SheetConsolidado SheetTag = "consolidado"
	SheetNoCruzan    SheetTag = "no_cruzan"
	SheetProductor   SheetTag = "productor"
)

// PremierLabel is the closed two-value label derived from the roster's
// referral-source column.
type PremierLabel string

const (
	PremierYes PremierLabel = "Premier"
	PremierNo  PremierLabel = "No es Premier"
)

// ConsolidationLot is the audit header of one consolidation run.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (input_hash-index): input_hash, used for duplicate-run detection
//
// SourceFiles maps insurer name to the extract file consumed for it,
// e.g. {"Andina ART": "06-2025.xlsx"}.

type ConsolidationLot struct {
	ID               string            `json:"id"`
	CreatedAt        time.Time         `json:"created_at"`
	Period           string            `json:"period"` // canonical MM-YYYY
	MasterFile       string            `json:"master_file"`
	SourceFiles      map[string]string `json:"source_files"`
	OutputPath       string            `json:"output_path"`
	RowsConsolidated int               `json:"rows_consolidated"`
	RowsUnmatched    int               `json:"rows_unmatched"`
	InputHash        string            `json:"input_hash"`
	Notes            string            `json:"notes,omitempty"`
}

// ConsolidatedItem is one persisted line of a lot.
//
// Storage model (DynamoDB):
//   - PK: lot_id
//   - SK: item_key = cuit#insurer#contract#period#sheet
//
// The sort key doubles as the uniqueness constraint: writing the same
// combination twice within a lot is rejected.
//
// Monetary fields use decimal so ARS amounts survive round-trips without
// float drift. MonthlyCost and DebtPeriods are nil when the roster carries
// no positive monthly cost (never zero, never a divide-by-zero artifact).

type ConsolidatedItem struct {
	LotID           string           `json:"lot_id"`
	CUIT            string           `json:"cuit"` // 11 digits, normalized
	Period          string           `json:"period"`
	LegalName       string           `json:"legal_name"`
	Insurer         string           `json:"insurer"`
	Contract        string           `json:"contract"`
	TotalDebt       decimal.Decimal  `json:"total_debt"`
	MonthlyCost     *decimal.Decimal `json:"monthly_cost,omitempty"`
	DebtPeriods     *decimal.Decimal `json:"debt_periods,omitempty"` // Q = debt / monthly cost
	ContractState   string           `json:"contract_state"`
	Email           string           `json:"email"`
	DoNotContact    bool             `json:"do_not_contact"`
	Producer        string           `json:"producer"`
	Premier         PremierLabel     `json:"premier"`
	ImportantClient bool             `json:"important_client"`
	InDebt          bool             `json:"in_debt"`
	Sheet           SheetTag         `json:"sheet"`
}

// ItemKey builds the composite sort key used by the items table.
func (i ConsolidatedItem) ItemKey() string {
	return i.CUIT + "#" + i.Insurer + "#" + i.Contract + "#" + i.Period + "#" + string(i.Sheet)
}
