package model

import (
	"fmt"
	"time"
)

// Outpoint references an output by txid and index.
type Outpoint struct {
	TxID  string
	Index uint32
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxID, o.Index)
}

// Output is a transaction output tracked by the UTXO store.
type Output struct {
	TxID        string
	Index       uint32
	Address     string
	ScriptHex   string
	Amount      uint64
	Confirmed   bool
	Spent       bool
	SpentBy     string
	OpReturn    bool
	Slp         *SlpUtxo
	Timestamp   time.Time
	BlockHeight *uint64
}

// Outpoint returns the key of the output.
func (o Output) Outpoint() Outpoint {
	return Outpoint{TxID: o.TxID, Index: o.Index}
}

// WithParentValid returns a copy whose token annotation carries v.
// Outputs without an annotation are returned unchanged.
func (o Output) WithParentValid(v Verdict) Output {
	if o.Slp == nil {
		return o
	}
	slp := *o.Slp
	slp.ParentValid = v
	o.Slp = &slp
	return o
}

// WithAnnotation returns a copy carrying slp.
func (o Output) WithAnnotation(slp SlpUtxo) Output {
	o.Slp = &slp
	return o
}
