package consolidation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"sort"

	"cobranzas_art/internal/config"
)

// RunOutput is everything one consolidation run produces: the rendered
// workbook, the tables behind it and the audit metadata.
type RunOutput struct {
	Period      Period
	Sheets      []Sheet
	Base        []Row
	Unmatched   []Row
	Workbook    []byte
	MasterFile  string
	SourceFiles map[string]string
	InputHash   string
}

// Pipeline runs the whole consolidation: read sources, match, derive the
// sheets, render the workbook and hash the input. It is a single
// deterministic in-memory transformation; it runs to completion or fails.
type Pipeline struct {
	cfg *config.Config
}

func NewPipeline(cfg *config.Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

func (p *Pipeline) Run(ctx context.Context, periodRaw string) (RunOutput, error) {
	period, err := ParsePeriod(periodRaw)
	if err != nil {
		return RunOutput{}, err
	}
	log.Printf("[consolidation][pipeline] run start period=%s policy=%s", period, p.cfg.MatchPolicy)

	roster, err := LoadMaster(p.cfg.MasterPath)
	if err != nil {
		return RunOutput{}, err
	}

	mapping, err := LoadMapping(p.cfg.MappingPath)
	if err != nil {
		return RunOutput{}, err
	}

	debts, sourceFiles, err := LoadDebts(p.cfg.InsurersDir, period, mapping, p.cfg.MatchPolicy)
	if err != nil {
		return RunOutput{}, err
	}
	log.Printf("[consolidation][pipeline] sources loaded period=%s roster_rows=%d debt_rows=%d insurers=%v",
		period, len(roster), len(debts), sortedInsurers(sourceFiles))

	res := Match(roster, debts, period, p.cfg.MatchPolicy, p.cfg.InsurerAliases)
	sheets := DeriveSheets(res.Base, res.Unmatched)

	wb, err := WriteWorkbook(sheets)
	if err != nil {
		return RunOutput{}, err
	}

	out := RunOutput{
		Period:      period,
		Sheets:      sheets,
		Base:        res.Base,
		Unmatched:   res.Unmatched,
		Workbook:    wb,
		MasterFile:  filepath.Base(p.cfg.MasterPath),
		SourceFiles: sourceFiles,
	}
	out.InputHash = inputHash(out)

	log.Printf("[consolidation][pipeline] run success period=%s base_rows=%d unmatched_rows=%d ambiguous_cuits=%d",
		period, len(res.Base), len(res.Unmatched), len(res.AmbiguousCUITs))
	return out, nil
}

// SheetByName returns the sheet with the given name, or false.
func (o RunOutput) SheetByName(name string) (Sheet, bool) {
	for _, sh := range o.Sheets {
		if sh.Name == name {
			return sh, true
		}
	}
	return Sheet{}, false
}

// inputHash fingerprints a run's inputs so an identical re-submission can
// be detected before anything is persisted. It covers the period, the
// source file map and, for the persisted sheets, the schema, the row count
// and a bounded row sample.
func inputHash(o RunOutput) string {
	h := sha256.New()
	h.Write([]byte(o.Period.String()))

	files, _ := json.Marshal(sortedFileList(o.SourceFiles))
	h.Write(files)

	hashRows := func(tag string, rows []Row) {
		h.Write([]byte(tag))
		if len(rows) == 0 {
			h.Write([]byte("empty"))
			return
		}
		fmt.Fprintf(h, "%d", len(rows))
		sample := rows
		if len(sample) > 200 {
			sample = sample[:200]
		}
		for _, r := range sample {
			fmt.Fprintf(h, "%s|%s|%s|%s|%s\n", r.CUIT, r.Insurer, r.Period,
				r.Debt.StringFixed(2), contractString(r.Contract))
		}
	}

	hashRows("C", o.Base)
	hashRows("N", o.Unmatched)
	if sh, ok := o.SheetByName(SheetProductor); ok {
		hashRows("P", sh.Rows)
	} else {
		hashRows("P", nil)
	}

	return hex.EncodeToString(h.Sum(nil))
}

func contractString(c *int64) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%d", *c)
}

func sortedFileList(m map[string]string) [][2]string {
	out := make([][2]string, 0, len(m))
	for k, v := range m {
		out = append(out, [2]string{k, v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
