// Package model holds the indexer's domain types.
package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNoInputs  = errors.New("transaction has no inputs")
	ErrNoOutputs = errors.New("transaction has no outputs")
)

// Transaction is an immutable indexed transaction. Updates return copies.
type Transaction struct {
	TxID        string
	Outputs     []Output
	Inputs      []Input
	Confirmed   bool
	Fee         int64
	Timestamp   time.Time
	FromBlock   bool
	BlockHash   string
	BlockHeight *uint64
	BlockTime   *time.Time
	RawHex      string
	Version     int32
	LockTime    uint32
	Size        uint32
	// Operation is nil for plain transactions.
	Operation TokenOperation
	// Valid is nil until the transaction is first persisted as a token transaction.
	Valid *SlpValid
}

// Validate checks the structural invariants of a transaction.
func (t Transaction) Validate() error {
	if len(t.Inputs) == 0 {
		return ErrNoInputs
	}
	if len(t.Outputs) == 0 {
		return ErrNoOutputs
	}
	return nil
}

// IsToken reports whether the transaction carries a parsed token operation.
func (t Transaction) IsToken() bool {
	return t.Operation != nil
}

// Verdict returns the current verdict, UNKNOWN when none is set.
func (t Transaction) Verdict() SlpValid {
	if t.Valid == nil {
		return UnknownVerdict()
	}
	return *t.Valid
}

// TokenRef returns the token the transaction operates on.
func (t Transaction) TokenRef() (TokenRef, bool) {
	if t.Operation == nil {
		return TokenRef{}, false
	}
	return t.Operation.Ref(), true
}

// WithVerdict returns a copy carrying v on the transaction and on every annotated output.
func (t Transaction) WithVerdict(v SlpValid) Transaction {
	outputs := make([]Output, len(t.Outputs))
	for i, o := range t.Outputs {
		outputs[i] = o.WithParentValid(v.Verdict)
	}
	t.Outputs = outputs
	t.Valid = &v
	return t
}

// WithoutVerdict returns a copy with the verdict cleared.
func (t Transaction) WithoutVerdict() Transaction {
	t.Valid = nil
	return t
}

// WithInputs returns a copy with inputs replaced and the fee recomputed.
func (t Transaction) WithInputs(inputs []Input) Transaction {
	t.Inputs = append([]Input(nil), inputs...)
	t.Fee = CalculateFee(t.Inputs, t.Outputs)
	return t
}

// WithOutputs returns a copy with outputs replaced.
func (t Transaction) WithOutputs(outputs []Output) Transaction {
	t.Outputs = append([]Output(nil), outputs...)
	return t
}

// SlpOutputs returns the token annotations of the transaction outputs.
func (t Transaction) SlpOutputs() []SlpUtxo {
	var res []SlpUtxo
	for _, o := range t.Outputs {
		if o.Slp != nil {
			res = append(res, *o.Slp)
		}
	}
	return res
}

// TokenAmount sums the token amounts carried by the outputs.
func (t Transaction) TokenAmount() decimal.Decimal {
	total := decimal.Zero
	for _, s := range t.SlpOutputs() {
		total = total.Add(s.Amount)
	}
	return total
}

// TokenIDs lists the distinct token ids found on outputs.
func (t Transaction) TokenIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, s := range t.SlpOutputs() {
		if _, ok := seen[s.TokenID]; ok {
			continue
		}
		seen[s.TokenID] = struct{}{}
		ids = append(ids, s.TokenID)
	}
	return ids
}

// CalculateFee subtracts output value from resolved input value. It is zero
// when no input value is known.
func CalculateFee(inputs []Input, outputs []Output) int64 {
	var in uint64
	for _, input := range inputs {
		if r, ok := input.Resolution(); ok {
			in += r.Amount
		}
	}
	if in == 0 {
		return 0
	}
	var out uint64
	for _, o := range outputs {
		out += o.Amount
	}
	return int64(in) - int64(out)
}
