package response

import (
	"time"

	"cobranzas_art/internal/domain/entities"
	"cobranzas_art/internal/usecase"
)

type LotResponse struct {
	ID               string            `json:"id"`
	CreatedAt        time.Time         `json:"created_at"`
	Period           string            `json:"period"`
	MasterFile       string            `json:"master_file"`
	SourceFiles      map[string]string `json:"source_files"`
	OutputPath       string            `json:"output_path"`
	RowsConsolidated int               `json:"rows_consolidated"`
	RowsUnmatched    int               `json:"rows_unmatched"`
	InputHash        string            `json:"input_hash"`
	Notes            string            `json:"notes,omitempty"`
}

type RunResponse struct {
	Lot          LotResponse `json:"lot"`
	ItemsCreated int         `json:"items_created"`
	Duplicate    bool        `json:"duplicate"`
}

type ConsolidatedItemResponse struct {
	CUIT            string `json:"cuit"`
	Period          string `json:"period"`
	LegalName       string `json:"legal_name"`
	Insurer         string `json:"insurer"`
	Contract        string `json:"contract,omitempty"`
	TotalDebt       string `json:"total_debt"`
	MonthlyCost     string `json:"monthly_cost,omitempty"`
	DebtPeriods     string `json:"debt_periods,omitempty"`
	ContractState   string `json:"contract_state"`
	Email           string `json:"email,omitempty"`
	DoNotContact    bool   `json:"do_not_contact"`
	Producer        string `json:"producer"`
	Premier         string `json:"premier"`
	ImportantClient bool   `json:"important_client"`
	InDebt          bool   `json:"in_debt"`
	Sheet           string `json:"sheet"`
}

type LotDetailResponse struct {
	Lot   LotResponse                `json:"lot"`
	Items []ConsolidatedItemResponse `json:"items"`
}

func FromLot(l entities.ConsolidationLot) LotResponse {
	return LotResponse{
		ID:               l.ID,
		CreatedAt:        l.CreatedAt,
		Period:           l.Period,
		MasterFile:       l.MasterFile,
		SourceFiles:      l.SourceFiles,
		OutputPath:       l.OutputPath,
		RowsConsolidated: l.RowsConsolidated,
		RowsUnmatched:    l.RowsUnmatched,
		InputHash:        l.InputHash,
		Notes:            l.Notes,
	}
}

func FromRunResult(r usecase.RunResult) RunResponse {
	return RunResponse{
		Lot:          FromLot(r.Lot),
		ItemsCreated: r.ItemsCreated,
		Duplicate:    r.Duplicate,
	}
}

func FromItem(it entities.ConsolidatedItem) ConsolidatedItemResponse {
	resp := ConsolidatedItemResponse{
		CUIT:            it.CUIT,
		Period:          it.Period,
		LegalName:       it.LegalName,
		Insurer:         it.Insurer,
		Contract:        it.Contract,
		TotalDebt:       it.TotalDebt.String(),
		ContractState:   it.ContractState,
		Email:           it.Email,
		DoNotContact:    it.DoNotContact,
		Producer:        it.Producer,
		Premier:         string(it.Premier),
		ImportantClient: it.ImportantClient,
		InDebt:          it.InDebt,
		Sheet:           string(it.Sheet),
	}
	if it.MonthlyCost != nil {
		resp.MonthlyCost = it.MonthlyCost.String()
	}
	if it.DebtPeriods != nil {
		resp.DebtPeriods = it.DebtPeriods.String()
	}
	return resp
}

func FromLotDetail(l entities.ConsolidationLot, items []entities.ConsolidatedItem) LotDetailResponse {
	out := LotDetailResponse{Lot: FromLot(l), Items: make([]ConsolidatedItemResponse, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, FromItem(it))
	}
	return out
}

func FromLots(lots []entities.ConsolidationLot) []LotResponse {
	out := make([]LotResponse, 0, len(lots))
	for _, l := range lots {
		out = append(out, FromLot(l))
	}
	return out
}
