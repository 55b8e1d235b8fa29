package plancast

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// Plan files carry plain JSON numbers, not quoted decimals.
	decimal.MarshalJSONWithoutQuotes = true
}

// marshalEntityRecord renders the canonical plan record shared by all
// entity variants: identity fields first, then the variant's data
// object, then the ledger.
func marshalEntityRecord(c entityCore, t EntityType, data *jsonObjectWriter) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", c.id)
	w.Append("name", c.name)
	w.Append("type", t)
	w.Append("templateKey", c.templateKey)
	w.Optional("parentId", c.parentID)
	w.Append("data", data)
	w.Append("ledgerEntries", c.ledger)
	return w.MarshalJSON()
}

// ledgerEntryRecord is the decoding shape of one ledger entry. Entries
// flagged deleted are tombstones kept by editing tools; they are
// dropped on load.
type ledgerEntryRecord struct {
	ID            string              `json:"id"`
	Day           int                 `json:"day"`
	Amount        decimal.NullDecimal `json:"amount"`
	ShareQuantity decimal.NullDecimal `json:"shareQuantity"`
	SharePrice    decimal.NullDecimal `json:"sharePrice"`
	IsDeleted     bool                `json:"isDeleted"`
}

// entityRecord is the decoding shape of one plan record. Data holds the
// union of every variant's fields; DecodeEntity picks the relevant ones
// per type.
type entityRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	TemplateKey string `json:"templateKey"`
	ParentID    string `json:"parentId"`
	Data        struct {
		GrowthRate            *float64  `json:"growthRate"`
		Symbol                *string   `json:"symbol"`
		Schedule              *Schedule `json:"schedule"`
		TargetEntityID        *string   `json:"targetEntityId"`
		SourceEntityID        *string   `json:"sourceEntityId"`
		InterestRate          *float64  `json:"interestRate"`
		PaymentAmount         *float64  `json:"paymentAmount"`
		PaymentSchedule       *Schedule `json:"paymentSchedule"`
		PaymentSourceEntityID *string   `json:"paymentSourceEntityId"`
	} `json:"data"`
	LedgerEntries []ledgerEntryRecord `json:"ledgerEntries"`
}

func (r entityRecord) ledger() Ledger {
	var ledger Ledger
	for _, e := range r.LedgerEntries {
		if e.IsDeleted {
			continue
		}
		ledger = append(ledger, LedgerEntry{
			ID:            e.ID,
			Day:           e.Day,
			Amount:        e.Amount,
			ShareQuantity: e.ShareQuantity,
			SharePrice:    e.SharePrice,
		})
	}
	return ledger
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

func scheduleOrDefault(p *Schedule) Schedule {
	if p == nil {
		return defaultSchedule()
	}
	return *p
}

// DecodeEntity turns one plan record into the matching entity variant.
// The type tag is matched case-insensitively; an unknown tag is an
// error. A missing schedule falls back to monthly on the 1st.
func DecodeEntity(data []byte) (Entity, error) {
	var r entityRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode entity record: %w", err)
	}
	t, err := ParseEntityType(r.Type)
	if err != nil {
		return nil, err
	}
	d, ledger := r.Data, r.ledger()
	switch t {
	case AccountType:
		return NewAccount(r.ID, r.Name, r.TemplateKey, r.ParentID, ledger, deref(d.GrowthRate)), nil
	case PossessionType:
		return NewPossession(r.ID, r.Name, r.TemplateKey, r.ParentID, ledger, deref(d.GrowthRate)), nil
	case HoldingType:
		return NewHolding(r.ID, r.Name, r.TemplateKey, r.ParentID, ledger, deref(d.Symbol), deref(d.GrowthRate)), nil
	case DebtType:
		return NewDebt(r.ID, r.Name, r.TemplateKey, r.ParentID, ledger,
			deref(d.InterestRate), deref(d.PaymentAmount),
			scheduleOrDefault(d.PaymentSchedule), deref(d.PaymentSourceEntityID)), nil
	case IncomeType:
		return NewIncome(r.ID, r.Name, r.TemplateKey, r.ParentID, ledger,
			deref(d.GrowthRate), scheduleOrDefault(d.Schedule), deref(d.TargetEntityID)), nil
	case ExpenseType:
		return NewExpense(r.ID, r.Name, r.TemplateKey, r.ParentID, ledger,
			deref(d.GrowthRate), scheduleOrDefault(d.Schedule), deref(d.SourceEntityID)), nil
	}
	return nil, fmt.Errorf("unknown entity type: %q", r.Type)
}

// EncodeEntity writes one entity as a single plan record line. The
// fallback entity is runtime-only and cannot be encoded.
func EncodeEntity(w io.Writer, e Entity) error {
	data, err := e.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode entity %q: %w", e.ID(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodePlan writes the entities as JSON Lines, one record per line,
// silently skipping the fallback entity.
func EncodePlan(w io.Writer, entities []Entity) error {
	for _, e := range entities {
		if _, ok := e.(*Fallback); ok {
			continue
		}
		if err := EncodeEntity(w, e); err != nil {
			return err
		}
	}
	return nil
}

// DecodePlan reads a JSON Lines plan, one entity record per non-blank
// line.
func DecodePlan(r io.Reader) ([]Entity, error) {
	var entities []Entity
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		e, err := DecodeEntity(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entities = append(entities, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	return entities, nil
}
