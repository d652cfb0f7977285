package model

// InputValue is either Unresolved or Resolved.
type InputValue interface {
	isInputValue()
}

// Unresolved marks an input whose previous output has not been looked up,
// or was not found because it belongs to an untracked plain transaction.
type Unresolved struct{}

// Resolved carries what the previous output held.
type Resolved struct {
	Amount uint64
	Slp    *SlpUtxo
}

func (Unresolved) isInputValue() {}
func (Resolved) isInputValue()   {}

// Input spends PrevTxID:PrevIndex.
type Input struct {
	Address   string
	PrevTxID  string
	PrevIndex uint32
	Coinbase  bool
	Sequence  uint32
	Value     InputValue
}

// Outpoint returns the output this input spends.
func (i Input) Outpoint() Outpoint {
	return Outpoint{TxID: i.PrevTxID, Index: i.PrevIndex}
}

// Resolve returns a copy of the input carrying the resolved value.
func (i Input) Resolve(amount uint64, slp *SlpUtxo) Input {
	var annotation *SlpUtxo
	if slp != nil {
		c := *slp
		annotation = &c
	}
	i.Value = Resolved{Amount: amount, Slp: annotation}
	return i
}

// Resolution returns the resolved value if there is one.
func (i Input) Resolution() (Resolved, bool) {
	r, ok := i.Value.(Resolved)
	return r, ok
}

// Slp returns the token annotation of the spent output, if resolved and annotated.
func (i Input) Slp() *SlpUtxo {
	if r, ok := i.Resolution(); ok {
		return r.Slp
	}
	return nil
}
