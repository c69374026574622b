package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cobranzas_art/internal/consolidation"
	"cobranzas_art/internal/domain/entities"
	"cobranzas_art/internal/usecase/interfaces"
)

var (
	ErrInvalidCUIT          = errors.New("invalid cuit")
	ErrNoLotForPeriod       = errors.New("no consolidation lot for period")
	ErrInvalidSheetTag      = errors.New("invalid sheet for notices")
	ErrGatewayNotConfigured = errors.New("notice gateway not configured")
)

// NoticeSummary totals one notice batch. Processed counts items, not
// emails: a grouped email of five contracts adds five to Processed.
type NoticeSummary struct {
	LotID     string
	Period    string
	Sheet     entities.SheetTag
	Processed int
	Sent      int
	Failed    int
	Excluded  int
}

// INoticeUseCase sends the debt notices of a consolidated period and keeps
// the per-CUIT send log.

type INoticeUseCase interface {
	SendForPeriod(ctx context.Context, period string, sheet entities.SheetTag) (NoticeSummary, error)
	ListLogByCUIT(ctx context.Context, cuit string) ([]entities.EmailSendLog, error)
}

type NoticeUseCase struct {
	lotRepo interfaces.IConsolidationLotRepository
	logRepo interfaces.IEmailLogRepository
	gateway interfaces.INoticeGateway
}

var _ INoticeUseCase = (*NoticeUseCase)(nil)

func NewNoticeUseCase(lotRepo interfaces.IConsolidationLotRepository, logRepo interfaces.IEmailLogRepository, gateway interfaces.INoticeGateway) *NoticeUseCase {
	return &NoticeUseCase{lotRepo: lotRepo, logRepo: logRepo, gateway: gateway}
}

// How many contracts a recipient must accumulate before they get one
// grouped email instead of one email per contract.
const groupThreshold = 3

// Q at which a single-contract notice switches to the intimation wording.
const intimationQ = 3

// SendForPeriod mails the debt notices for the latest lot of a period.
//
// Per recipient: three or more contracts go out as one grouped email,
// fewer go out one email per contract. Items without an address, flagged
// do-not-contact or without positive debt are logged as excluded and never
// reach the transport. Every item gets exactly one log entry.
func (u *NoticeUseCase) SendForPeriod(ctx context.Context, period string, sheet entities.SheetTag) (NoticeSummary, error) {
	p, err := consolidation.ParsePeriod(period)
	if err != nil {
		return NoticeSummary{}, err
	}
	switch sheet {
	case "":
		sheet = entities.SheetConsolidado
	case entities.SheetConsolidado, entities.SheetProductor:
	default:
		return NoticeSummary{}, ErrInvalidSheetTag
	}
	if u.gateway == nil {
		log.Printf("[notice][usecase] gateway not configured period=%s", p)
		return NoticeSummary{}, ErrGatewayNotConfigured
	}

	lot, err := u.latestLot(ctx, p.String())
	if err != nil {
		return NoticeSummary{}, err
	}

	items, err := u.lotRepo.ListItemsBySheet(ctx, lot.ID, sheet)
	if err != nil {
		return NoticeSummary{}, err
	}
	log.Printf("[notice][usecase] batch start period=%s sheet=%s lot_id=%s items=%d", p, sheet, lot.ID, len(items))

	sum := NoticeSummary{LotID: lot.ID, Period: p.String(), Sheet: sheet, Processed: len(items)}

	groups := map[string][]entities.ConsolidatedItem{}
	var order []string
	for _, it := range items {
		if reason := exclusionReason(it); reason != "" {
			u.logExcluded(ctx, lot.ID, it, reason)
			sum.Excluded++
			continue
		}
		key := strings.ToLower(strings.TrimSpace(it.Email))
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], it)
	}

	for _, key := range order {
		group := groups[key]
		if len(group) >= groupThreshold {
			u.sendOne(ctx, lot.ID, p, sheet, group, &sum)
			continue
		}
		for _, it := range group {
			u.sendOne(ctx, lot.ID, p, sheet, []entities.ConsolidatedItem{it}, &sum)
		}
	}

	log.Printf("[notice][usecase] batch done period=%s sheet=%s sent=%d failed=%d excluded=%d",
		p, sheet, sum.Sent, sum.Failed, sum.Excluded)
	return sum, nil
}

func (u *NoticeUseCase) ListLogByCUIT(ctx context.Context, cuit string) ([]entities.EmailSendLog, error) {
	cuit = consolidation.NormalizeTaxID(cuit)
	if !strings.ContainsAny(cuit, "123456789") {
		return nil, ErrInvalidCUIT
	}
	entries, err := u.logRepo.ListByCUIT(ctx, cuit)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	return entries, nil
}

// latestLot picks the most recent lot persisted for the period.
func (u *NoticeUseCase) latestLot(ctx context.Context, period string) (entities.ConsolidationLot, error) {
	lots, err := u.lotRepo.ListLotsByPeriod(ctx, period)
	if err != nil {
		return entities.ConsolidationLot{}, err
	}
	if len(lots) == 0 {
		return entities.ConsolidationLot{}, ErrNoLotForPeriod
	}
	sort.Slice(lots, func(i, j int) bool { return lots[i].CreatedAt.After(lots[j].CreatedAt) })
	return lots[0], nil
}

func exclusionReason(it entities.ConsolidatedItem) string {
	if consolidation.IsEmptyEmail(it.Email) {
		return "sin email"
	}
	if it.DoNotContact {
		return "no contactar"
	}
	if !it.InDebt {
		return "sin deuda exigible"
	}
	return ""
}

// sendOne builds, sends and logs one email for a group of one or more
// contracts of the same recipient.
func (u *NoticeUseCase) sendOne(ctx context.Context, lotID string, p consolidation.Period, sheet entities.SheetTag, group []entities.ConsolidatedItem, sum *NoticeSummary) {
	to := strings.TrimSpace(group[0].Email)
	subject := noticeSubject(p, sheet, group)
	body := noticeBody(p, group)

	msgID, err := u.gateway.Send(ctx, interfaces.NoticeMessage{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: body,
	})

	status := entities.EmailSendSent
	errText := ""
	if err != nil {
		status = entities.EmailSendFailed
		errText = err.Error()
		log.Printf("[notice][usecase] send failed to=%s contracts=%d err=%v", to, len(group), err)
	}

	for _, it := range group {
		u.appendLog(ctx, entities.EmailSendLog{
			ID:          uuid.NewString(),
			CreatedAt:   time.Now().UTC(),
			CUIT:        it.CUIT,
			Insurer:     it.Insurer,
			Contract:    it.Contract,
			Recipients:  []string{to},
			Subject:     subject,
			BodySummary: bodySummary(body),
			Status:      status,
			Error:       errText,
			MessageID:   msgID,
			LotID:       lotID,
		})
		if err != nil {
			sum.Failed++
		} else {
			sum.Sent++
		}
	}
}

func (u *NoticeUseCase) logExcluded(ctx context.Context, lotID string, it entities.ConsolidatedItem, reason string) {
	u.appendLog(ctx, entities.EmailSendLog{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		CUIT:       it.CUIT,
		Insurer:    it.Insurer,
		Contract:   it.Contract,
		Recipients: nil,
		Subject:    "",
		Status:     entities.EmailSendExcluded,
		Error:      reason,
		LotID:      lotID,
	})
}

// appendLog writes a send-log entry; the log never blocks the batch.
func (u *NoticeUseCase) appendLog(ctx context.Context, entry entities.EmailSendLog) {
	if _, err := u.logRepo.Create(ctx, entry); err != nil {
		log.Printf("[notice][usecase] send-log write failed cuit=%s err=%v", entry.CUIT, err)
	}
}

// noticeSubject applies the agreed subject rules:
//
//	grouped (>=3 contracts)      "DEUDA ART - <MM-YYYY>"
//	producer sheet, single       "DEUDA ART - <Productor> <MM-YYYY>"
//	other sheets, single         "DEUDA ART - <Razón social> <CUIT> <Aseguradora> <MM-YYYY>"
func noticeSubject(p consolidation.Period, sheet entities.SheetTag, group []entities.ConsolidatedItem) string {
	if len(group) >= groupThreshold {
		return fmt.Sprintf("DEUDA ART - %s", p)
	}
	it := group[0]
	if sheet == entities.SheetProductor {
		if prod := strings.TrimSpace(it.Producer); prod != "" {
			return fmt.Sprintf("DEUDA ART - %s %s", prod, p)
		}
		return fmt.Sprintf("DEUDA ART - %s", p)
	}
	parts := []string{}
	for _, s := range []string{it.LegalName, it.CUIT, it.Insurer} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	parts = append(parts, p.String())
	return "DEUDA ART - " + strings.Join(parts, " ")
}

// noticeBody renders the HTML body. Groups always get the soft wording; a
// single contract switches to the intimation wording at Q >= 3.
func noticeBody(p consolidation.Period, group []entities.ConsolidatedItem) string {
	intimated := len(group) == 1 && qAtLeast(group[0].DebtPeriods, intimationQ)

	var b strings.Builder
	if len(group) >= groupThreshold {
		b.WriteString("<p>Estimado/a,</p>")
	} else if name := strings.TrimSpace(group[0].LegalName); name != "" {
		fmt.Fprintf(&b, "<p>Estimado/a %s</p>", name)
	} else {
		b.WriteString("<p>Estimado/a,</p>")
	}

	if intimated {
		b.WriteString("<p>Nos ponemos en contacto desde Promecor, su Broker de Seguros, para informarle que a la fecha tiene un saldo pendiente con su actual ART, por lo cual el contrato se encuentra INTIMADO en proceso de anulación.</p>")
		b.WriteString("<p>De acuerdo con la legislación vigente (art. 27 ley 24.557), se inicia el proceso de intimación y anulación de la cobertura por falta de pago a partir de la segunda cuota adeudada.</p>")
		b.WriteString("<p>El saldo adeudado informado por la Compañía es el siguiente:</p>")
	} else {
		b.WriteString("<p>Nos ponemos en contacto desde Promecor, su Broker de Seguros, con el objetivo de informarle que a la fecha tiene un saldo pendiente con su actual ART.</p>")
		b.WriteString("<p>Consideramos oportuno dar aviso de la situación para que, en la medida de lo posible, podamos accionar en consecuencia y verificar si esto corresponde a conceptos no remunerativos o si hace falta gestionar un pago cancelatorio.</p>")
		fmt.Fprintf(&b, "<p>Al %02d/%d, el saldo pendiente es el que se detalla a continuación.</p>", p.Month, p.Year)
	}

	b.WriteString("<ul>")
	for _, it := range group {
		fmt.Fprintf(&b, "<li>Contrato %s · %s · $ %s</li>", it.Contract, it.LegalName, formatARS(it.TotalDebt))
	}
	b.WriteString("</ul>")

	b.WriteString("<p>Si corresponde, deberá abonar el importe generando un VEP de pago a través de la página de AFIP y transferirlo por su entidad bancaria. Una vez realizada esta gestión, o si ya está abonada la deuda, por favor envíe el VEP y su comprobante de pago para actualizar el saldo.</p>")
	b.WriteString("<p>VEP Capital: Impuesto 312 – Concepto 19 – Subconcepto 19 – Período Fiscal (mes anterior al actual / año actual)<br>")
	b.WriteString("VEP Intereses: Impuesto 312 – Concepto 19 – Subconcepto 51 – Período Fiscal (mes anterior al actual / año actual)</p>")
	b.WriteString("<p>Si necesita un estado de cuenta, solicítelo por este medio. Quedamos a disposición.</p>")
	b.WriteString("<p>Cobranzas Promecor</p>")
	return b.String()
}

func qAtLeast(q *decimal.Decimal, n int64) bool {
	return q != nil && q.GreaterThanOrEqual(decimal.NewFromInt(n))
}

// formatARS renders an amount with Argentine separators: 1234567.89
// becomes "1.234.567,89".
func formatARS(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2) // -1234567.89
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

func bodySummary(html string) string {
	const maxLen = 2000
	if len(html) > maxLen {
		return html[:maxLen]
	}
	return html
}
