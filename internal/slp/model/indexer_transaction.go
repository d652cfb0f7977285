package model

// EntryKind tells whether an address entry points at an output or an input.
type EntryKind string

const (
	EntryOutput EntryKind = "output"
	EntryInput  EntryKind = "input"
)

// AddressEntry points at the position of an output or input touching an address.
type AddressEntry struct {
	Kind     EntryKind
	Position int
}

// IndexerTransaction is a Transaction plus its address index.
type IndexerTransaction struct {
	Transaction  Transaction
	AddressIndex map[string][]AddressEntry
}

// NewIndexerTransaction builds the address index for tx.
func NewIndexerTransaction(tx Transaction) IndexerTransaction {
	index := make(map[string][]AddressEntry)
	for i, o := range tx.Outputs {
		if o.Address == "" {
			continue
		}
		index[o.Address] = append(index[o.Address], AddressEntry{Kind: EntryOutput, Position: i})
	}
	for i, in := range tx.Inputs {
		if in.Address == "" {
			continue
		}
		index[in.Address] = append(index[in.Address], AddressEntry{Kind: EntryInput, Position: i})
	}
	return IndexerTransaction{Transaction: tx, AddressIndex: index}
}

// WithVerdict returns a new IndexerTransaction with v applied and the index rebuilt.
func (t IndexerTransaction) WithVerdict(v SlpValid) IndexerTransaction {
	return NewIndexerTransaction(t.Transaction.WithVerdict(v))
}

// TxID is a shortcut for t.Transaction.TxID.
func (t IndexerTransaction) TxID() string {
	return t.Transaction.TxID
}

// Addresses returns the addresses touched by the transaction.
func (t IndexerTransaction) Addresses() []string {
	res := make([]string, 0, len(t.AddressIndex))
	for addr := range t.AddressIndex {
		res = append(res, addr)
	}
	return res
}
