package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"cobranzas_art/internal/consolidation"
	"cobranzas_art/internal/domain/entities"
	"cobranzas_art/internal/usecase/interfaces"
)

var (
	ErrInvalidPeriod = errors.New("invalid period")
	ErrInvalidLotID  = errors.New("invalid lot id")
	ErrLotNotFound   = errors.New("consolidation lot not found")
)

// RunResult is what one accepted consolidation request returns. When
// Duplicate is true the inputs matched an already-persisted lot and nothing
// new was written; Lot is that previous lot.
type RunResult struct {
	Lot          entities.ConsolidationLot
	ItemsCreated int
	Duplicate    bool
}

// IConsolidationUseCase drives the consolidation runs and their audit trail.

type IConsolidationUseCase interface {
	Run(ctx context.Context, period string) (RunResult, error)
	ListLots(ctx context.Context) ([]entities.ConsolidationLot, error)
	GetLot(ctx context.Context, id string) (entities.ConsolidationLot, []entities.ConsolidatedItem, error)
	GetWorkbook(ctx context.Context, id string) ([]byte, string, error)
}

type ConsolidationUseCase struct {
	runner    interfaces.IConsolidationRunner
	lotRepo   interfaces.IConsolidationLotRepository
	outputDir string
}

var _ IConsolidationUseCase = (*ConsolidationUseCase)(nil)

func NewConsolidationUseCase(runner interfaces.IConsolidationRunner, lotRepo interfaces.IConsolidationLotRepository, outputDir string) *ConsolidationUseCase {
	return &ConsolidationUseCase{runner: runner, lotRepo: lotRepo, outputDir: outputDir}
}

// Run executes the pipeline for one period and persists the outcome: the
// workbook on disk, the lot header and the rows of the persisted sheets.
// An identical re-submission (same input fingerprint) short-circuits to the
// previous lot without writing anything.
func (u *ConsolidationUseCase) Run(ctx context.Context, period string) (RunResult, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		log.Printf("[consolidation][usecase] invalid period (empty)")
		return RunResult{}, ErrInvalidPeriod
	}

	out, err := u.runner.Run(ctx, period)
	if err != nil {
		log.Printf("[consolidation][usecase] pipeline failed period=%q err=%v", period, err)
		return RunResult{}, err
	}

	prev, err := u.lotRepo.GetLotByInputHash(ctx, out.InputHash)
	if err != nil {
		log.Printf("[consolidation][usecase] duplicate lookup failed hash=%s err=%v", out.InputHash, err)
		return RunResult{}, err
	}
	if prev.ID != "" {
		log.Printf("[consolidation][usecase] duplicate run period=%s lot_id=%s hash=%s", out.Period, prev.ID, out.InputHash)
		return RunResult{Lot: prev, Duplicate: true}, nil
	}

	outputPath := filepath.Join(u.outputDir, fmt.Sprintf("Consolidado_ART_%s.xlsx", out.Period))
	if err := os.MkdirAll(u.outputDir, 0o755); err != nil {
		return RunResult{}, fmt.Errorf("carpeta de salida %s: %w", u.outputDir, err)
	}
	if err := os.WriteFile(outputPath, out.Workbook, 0o644); err != nil {
		return RunResult{}, fmt.Errorf("escribiendo %s: %w", outputPath, err)
	}

	lot := entities.ConsolidationLot{
		ID:               uuid.NewString(),
		CreatedAt:        time.Now().UTC(),
		Period:           out.Period.String(),
		MasterFile:       out.MasterFile,
		SourceFiles:      out.SourceFiles,
		OutputPath:       outputPath,
		RowsConsolidated: len(out.Base),
		RowsUnmatched:    len(out.Unmatched),
		InputHash:        out.InputHash,
	}
	created, err := u.lotRepo.CreateLot(ctx, lot)
	if err != nil {
		log.Printf("[consolidation][usecase] lot create failed period=%s err=%v", out.Period, err)
		return RunResult{}, err
	}

	items := lotItems(created.ID, out)
	n, err := u.lotRepo.BulkAddItems(ctx, items)
	if err != nil {
		log.Printf("[consolidation][usecase] item bulk insert failed lot_id=%s err=%v", created.ID, err)
		// The lot header already carries the input hash; left in place it
		// would make a retry of the same inputs short-circuit as a
		// duplicate of an incomplete lot.
		if delErr := u.lotRepo.DeleteLot(ctx, created.ID); delErr != nil {
			log.Printf("[consolidation][usecase] lot rollback failed lot_id=%s err=%v", created.ID, delErr)
		}
		return RunResult{}, err
	}

	log.Printf("[consolidation][usecase] run persisted period=%s lot_id=%s items=%d output=%s",
		out.Period, created.ID, n, outputPath)
	return RunResult{Lot: created, ItemsCreated: n}, nil
}

// ListLots returns every persisted lot, newest first.
func (u *ConsolidationUseCase) ListLots(ctx context.Context) ([]entities.ConsolidationLot, error) {
	lots, err := u.lotRepo.ListLots(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(lots, func(i, j int) bool { return lots[i].CreatedAt.After(lots[j].CreatedAt) })
	return lots, nil
}

func (u *ConsolidationUseCase) GetLot(ctx context.Context, id string) (entities.ConsolidationLot, []entities.ConsolidatedItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ConsolidationLot{}, nil, ErrInvalidLotID
	}
	lot, err := u.lotRepo.GetLotByID(ctx, id)
	if err != nil {
		return entities.ConsolidationLot{}, nil, err
	}
	if lot.ID == "" {
		return entities.ConsolidationLot{}, nil, ErrLotNotFound
	}
	items, err := u.lotRepo.ListItems(ctx, lot.ID)
	if err != nil {
		return entities.ConsolidationLot{}, nil, err
	}
	return lot, items, nil
}

// GetWorkbook returns the rendered xlsx of a lot, re-read from its output
// path, plus the download file name.
func (u *ConsolidationUseCase) GetWorkbook(ctx context.Context, id string) ([]byte, string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, "", ErrInvalidLotID
	}
	lot, err := u.lotRepo.GetLotByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if lot.ID == "" {
		return nil, "", ErrLotNotFound
	}
	data, err := os.ReadFile(lot.OutputPath)
	if err != nil {
		log.Printf("[consolidation][usecase] workbook read failed lot_id=%s path=%s err=%v", lot.ID, lot.OutputPath, err)
		return nil, "", fmt.Errorf("leyendo %s: %w", lot.OutputPath, err)
	}
	return data, filepath.Base(lot.OutputPath), nil
}

// lotItems flattens the persisted sheets into lot items. Only three sheets
// go to the audit tables: the base, the unmatched rows and the
// producer-collection view; the remaining sheets are filters the workbook
// keeps on its own.
func lotItems(lotID string, out consolidation.RunOutput) []entities.ConsolidatedItem {
	items := make([]entities.ConsolidatedItem, 0, len(out.Base)+len(out.Unmatched))
	for _, r := range out.Base {
		items = append(items, itemFromRow(lotID, r, entities.SheetConsolidado))
	}
	for _, r := range out.Unmatched {
		items = append(items, itemFromRow(lotID, r, entities.SheetNoCruzan))
	}
	if sh, ok := out.SheetByName(consolidation.SheetProductor); ok {
		for _, r := range sh.Rows {
			items = append(items, itemFromRow(lotID, r, entities.SheetProductor))
		}
	}
	return items
}

func itemFromRow(lotID string, r consolidation.Row, sheet entities.SheetTag) entities.ConsolidatedItem {
	contract := ""
	if r.Contract != nil {
		contract = fmt.Sprintf("%d", *r.Contract)
	}
	return entities.ConsolidatedItem{
		LotID:           lotID,
		CUIT:            r.CUIT,
		Period:          r.Period,
		LegalName:       r.LegalName,
		Insurer:         r.Insurer,
		Contract:        contract,
		TotalDebt:       r.Debt,
		MonthlyCost:     r.MonthlyCost,
		DebtPeriods:     r.Q,
		ContractState:   r.ContractState,
		Email:           r.Email,
		DoNotContact:    r.DoNotContact,
		Producer:        r.Producer,
		Premier:         entities.PremierLabel(r.Premier),
		ImportantClient: r.ImportantClient,
		InDebt:          r.Debt.Sign() > 0,
		Sheet:           sheet,
	}
}
