package ingester

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	headerstore "github.com/goodnatureofminers/slp-indexer/internal/slp/repository/badger"
	"github.com/shopspring/decimal"
)

// memStore keeps outputs, transactions, headers and token details in memory.
// It follows the merge rules of the real stores.
type memStore struct {
	mu      sync.Mutex
	outputs map[model.Outpoint]model.Output
	txs     map[string]model.Transaction
	details map[string]model.TokenDetails
	headers map[string]model.BlockHeader
	heights map[uint64]string
	tip     string
}

func newMemStore() *memStore {
	return &memStore{
		outputs: make(map[model.Outpoint]model.Output),
		txs:     make(map[string]model.Transaction),
		details: make(map[string]model.TokenDetails),
		headers: make(map[string]model.BlockHeader),
		heights: make(map[uint64]string),
	}
}

func (s *memStore) Save(_ context.Context, outputs []model.Output) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range outputs {
		if prev, ok := s.outputs[o.Outpoint()]; ok {
			o.Timestamp = prev.Timestamp
			o.Spent = prev.Spent
			o.SpentBy = prev.SpentBy
			if o.Slp != nil && prev.Slp != nil && o.Slp.ParentValid == model.VerdictUnknown {
				o = o.WithParentValid(prev.Slp.ParentValid)
			}
		}
		s.outputs[o.Outpoint()] = o
	}
	return nil
}

func (s *memStore) Spend(_ context.Context, outpoints []model.Outpoint, spender string) error {
	s.setSpent(outpoints, true, spender)
	return nil
}

func (s *memStore) Unspend(_ context.Context, outpoints []model.Outpoint) error {
	s.setSpent(outpoints, false, "")
	return nil
}

func (s *memStore) setSpent(outpoints []model.Outpoint, spent bool, spender string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, op := range outpoints {
		o, ok := s.outputs[op]
		if !ok {
			continue
		}
		o.Spent = spent
		o.SpentBy = spender
		s.outputs[op] = o
	}
}

func (s *memStore) Remove(_ context.Context, txIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := make(map[string]struct{}, len(txIDs))
	for _, id := range txIDs {
		removed[id] = struct{}{}
	}
	for op := range s.outputs {
		if _, ok := removed[op.TxID]; ok {
			delete(s.outputs, op)
		}
	}
	return nil
}

func (s *memStore) FetchByOutpoints(_ context.Context, outpoints []model.Outpoint) ([]model.Output, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []model.Output
	for _, op := range outpoints {
		if o, ok := s.outputs[op]; ok {
			res = append(res, o)
		}
	}
	return res, nil
}

func (s *memStore) LookupOutput(ctx context.Context, outpoint model.Outpoint) (*model.Output, error) {
	res, _ := s.FetchByOutpoints(ctx, []model.Outpoint{outpoint})
	if len(res) == 0 {
		return nil, nil
	}
	return &res[0], nil
}

func (s *memStore) Spenders(_ context.Context, txID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{})
	var res []string
	for op, o := range s.outputs {
		if op.TxID != txID || !o.Spent || o.SpentBy == "" {
			continue
		}
		if _, ok := seen[o.SpentBy]; ok {
			continue
		}
		seen[o.SpentBy] = struct{}{}
		res = append(res, o.SpentBy)
	}
	sort.Strings(res)
	return res, nil
}

func (s *memStore) RefreshValidity(_ context.Context, tx model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range tx.Outputs {
		stored, ok := s.outputs[o.Outpoint()]
		if !ok || stored.Slp == nil {
			continue
		}
		s.outputs[o.Outpoint()] = stored.WithParentValid(tx.Verdict().Verdict)
	}
	return nil
}

func (s *memStore) FetchTransaction(ctx context.Context, txID string) (*model.IndexerTransaction, error) {
	res, _ := s.FetchTransactions(ctx, []string{txID})
	if len(res) == 0 {
		return nil, nil
	}
	return &res[0], nil
}

func (s *memStore) LookupTransaction(ctx context.Context, txID string) (*model.IndexerTransaction, error) {
	return s.FetchTransaction(ctx, txID)
}

func (s *memStore) FetchTransactions(_ context.Context, txIDs []string) ([]model.IndexerTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []model.IndexerTransaction
	for _, id := range txIDs {
		if tx, ok := s.txs[id]; ok {
			res = append(res, model.NewIndexerTransaction(tx))
		}
	}
	return res, nil
}

func (s *memStore) SaveTransactions(_ context.Context, txs []model.IndexerTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range txs {
		s.txs[tx.TxID()] = tx.Transaction
	}
	return nil
}

func (s *memStore) TransactionIDsByBlockHash(_ context.Context, blockHash string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []string
	for id, tx := range s.txs {
		if tx.BlockHash == blockHash {
			res = append(res, id)
		}
	}
	sort.Strings(res)
	return res, nil
}

func (s *memStore) RemoveTransactions(_ context.Context, txIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range txIDs {
		delete(s.txs, id)
	}
	return nil
}

func (s *memStore) TokenDetails(_ context.Context, tokenID string) (*model.TokenDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.details[tokenID]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (s *memStore) SaveTokenDetails(_ context.Context, details model.TokenDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details[details.TokenID] = details
	return nil
}

func (s *memStore) Put(_ context.Context, header model.BlockHeader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.headers[header.Hash] = header
	s.heights[header.Height] = header.Hash
	if tip, ok := s.headers[s.tip]; !ok || header.Height >= tip.Height {
		s.tip = header.Hash
	}
	return nil
}

func (s *memStore) ByHeight(_ context.Context, height uint64) (*model.BlockHeader, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.headers[s.heights[height]]
	if !ok {
		return nil, fmt.Errorf("height %d: %w", height, headerstore.ErrNotFound)
	}
	return &h, nil
}

func (s *memStore) Tip(_ context.Context) (*model.BlockHeader, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.headers[s.tip]
	if !ok {
		return nil, fmt.Errorf("tip: %w", headerstore.ErrNotFound)
	}
	return &h, nil
}

func (s *memStore) Delete(_ context.Context, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.headers[hash]
	if !ok {
		return nil
	}
	delete(s.headers, hash)
	if s.heights[h.Height] == hash {
		delete(s.heights, h.Height)
	}
	if s.tip == hash {
		s.tip = ""
		if _, ok := s.headers[h.PrevHash]; ok {
			s.tip = h.PrevHash
		}
	}
	return nil
}

// utxoSet returns every stored output ordered by outpoint.
func (s *memStore) utxoSet() []model.Output {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]model.Output, 0, len(s.outputs))
	for _, o := range s.outputs {
		res = append(res, o)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Outpoint().String() < res[j].Outpoint().String() })
	return res
}

func (s *memStore) transaction(txID string) model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txs[txID]
}

func (s *memStore) output(txID string, index uint32) model.Output {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outputs[model.Outpoint{TxID: txID, Index: index}]
}

type nopMetrics struct{}

func (nopMetrics) ObserveBatch(error, int, time.Time)                {}
func (nopMetrics) ObserveVerdict(model.OperationKind, model.Verdict) {}
func (nopMetrics) ObserveCascade(int, int, time.Time)                {}
func (nopMetrics) ObserveBlock(error, uint64, time.Time)             {}
func (nopMetrics) ObserveReorg(error, int)                           {}
func (nopMetrics) ObserveTransaction(string)                         {}
func (nopMetrics) ObserveHit(string)                                 {}
func (nopMetrics) ObserveMiss(string)                                {}

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// txBuilder assembles transactions for pipeline tests.
type txBuilder struct {
	tx model.Transaction
}

func newTx(id string) *txBuilder {
	return &txBuilder{tx: model.Transaction{TxID: id, Timestamp: testTime}}
}

func (b *txBuilder) spend(txID string, index uint32) *txBuilder {
	b.tx.Inputs = append(b.tx.Inputs, model.Input{PrevTxID: txID, PrevIndex: index, Value: model.Unresolved{}})
	return b
}

func (b *txBuilder) coinbase() *txBuilder {
	b.tx.Inputs = append(b.tx.Inputs, model.Input{Coinbase: true, Value: model.Unresolved{}})
	return b
}

func (b *txBuilder) opReturn() *txBuilder {
	return b.output("OP_RETURN:"+b.tx.TxID, 0)
}

func (b *txBuilder) output(address string, amount uint64) *txBuilder {
	b.tx.Outputs = append(b.tx.Outputs, model.Output{
		TxID:      b.tx.TxID,
		Index:     uint32(len(b.tx.Outputs)),
		Address:   address,
		Amount:    amount,
		OpReturn:  len(b.tx.Outputs) == 0 && amount == 0,
		Timestamp: testTime,
	})
	return b
}

func (b *txBuilder) genesis(ticker string, minted uint64) *txBuilder {
	b.tx.Operation = model.GenesisOperation{
		TokenRef:     model.TokenRef{TokenID: b.tx.TxID, TokenType: model.TokenTypePermissionless},
		Ticker:       ticker,
		Name:         ticker + " token",
		MintedAmount: minted,
	}
	return b
}

func (b *txBuilder) send(tokenID string, quantities ...uint64) *txBuilder {
	b.tx.Operation = model.SendOperation{
		TokenRef:   model.TokenRef{TokenID: tokenID, TokenType: model.TokenTypePermissionless},
		Quantities: quantities,
	}
	return b
}

func (b *txBuilder) inBlock(hash string, height uint64) *txBuilder {
	h := height
	bt := testTime.Add(time.Duration(height) * 10 * time.Minute)
	b.tx.Confirmed = true
	b.tx.FromBlock = true
	b.tx.BlockHash = hash
	b.tx.BlockHeight = &h
	b.tx.BlockTime = &bt
	return b
}

func (b *txBuilder) build() model.Transaction {
	return b.tx
}

func block(hash, prev string, height uint64, txs ...model.Transaction) model.Block {
	return model.Block{
		BlockHeader:  model.BlockHeader{Hash: hash, PrevHash: prev, Height: height, Time: testTime},
		Transactions: txs,
	}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
