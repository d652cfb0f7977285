package clickhouse

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/shopspring/decimal"
)

// Transactions keep their inputs, outputs and token operation as JSON
// documents. Outputs are also stored row by row in slp_utxos.

type slpDoc struct {
	TokenID     string          `json:"token_id"`
	Amount      decimal.Decimal `json:"amount"`
	HasBaton    bool            `json:"has_baton,omitempty"`
	Ticker      string          `json:"ticker,omitempty"`
	Operation   string          `json:"operation"`
	Name        string          `json:"name,omitempty"`
	TokenType   uint16          `json:"token_type"`
	ParentValid string          `json:"parent_valid"`
}

type outputDoc struct {
	Index       uint32    `json:"index"`
	Address     string    `json:"address"`
	ScriptHex   string    `json:"script_hex"`
	Amount      uint64    `json:"amount"`
	Confirmed   bool      `json:"confirmed,omitempty"`
	OpReturn    bool      `json:"op_return,omitempty"`
	Slp         *slpDoc   `json:"slp,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	BlockHeight *uint64   `json:"block_height,omitempty"`
}

type inputDoc struct {
	Address   string  `json:"address"`
	PrevTxID  string  `json:"prev_txid"`
	PrevIndex uint32  `json:"prev_index"`
	Coinbase  bool    `json:"coinbase,omitempty"`
	Sequence  uint32  `json:"sequence"`
	Resolved  bool    `json:"resolved"`
	Amount    uint64  `json:"amount,omitempty"`
	Slp       *slpDoc `json:"slp,omitempty"`
}

type operationDoc struct {
	Kind         string   `json:"kind"`
	TokenID      string   `json:"token_id"`
	TokenType    uint16   `json:"token_type"`
	Ticker       string   `json:"ticker,omitempty"`
	Name         string   `json:"name,omitempty"`
	DocumentURI  string   `json:"document_uri,omitempty"`
	DocumentHash string   `json:"document_hash,omitempty"`
	Decimals     uint8    `json:"decimals,omitempty"`
	BatonVout    *uint32  `json:"baton_vout,omitempty"`
	MintedAmount uint64   `json:"minted_amount,omitempty"`
	Quantities   []uint64 `json:"quantities,omitempty"`
}

func toSlpDoc(s *model.SlpUtxo) *slpDoc {
	if s == nil {
		return nil
	}
	return &slpDoc{
		TokenID:     s.TokenID,
		Amount:      s.Amount,
		HasBaton:    s.HasBaton,
		Ticker:      s.Ticker,
		Operation:   string(s.Operation),
		Name:        s.Name,
		TokenType:   uint16(s.TokenType),
		ParentValid: string(s.ParentValid),
	}
}

func (d *slpDoc) model() (*model.SlpUtxo, error) {
	if d == nil {
		return nil, nil
	}
	verdict, err := model.ParseVerdict(d.ParentValid)
	if err != nil {
		return nil, err
	}
	return &model.SlpUtxo{
		TokenID:     d.TokenID,
		Amount:      d.Amount,
		HasBaton:    d.HasBaton,
		Ticker:      d.Ticker,
		Operation:   model.OperationKind(d.Operation),
		Name:        d.Name,
		TokenType:   model.TokenTypeFromCode(d.TokenType),
		ParentValid: verdict,
	}, nil
}

func encodeOutputs(outputs []model.Output) (string, error) {
	docs := make([]outputDoc, len(outputs))
	for i, o := range outputs {
		docs[i] = outputDoc{
			Index:       o.Index,
			Address:     o.Address,
			ScriptHex:   o.ScriptHex,
			Amount:      o.Amount,
			Confirmed:   o.Confirmed,
			OpReturn:    o.OpReturn,
			Slp:         toSlpDoc(o.Slp),
			Timestamp:   o.Timestamp,
			BlockHeight: o.BlockHeight,
		}
	}
	raw, err := json.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("encode outputs: %w", err)
	}
	return string(raw), nil
}

func decodeOutputs(txID, raw string) ([]model.Output, error) {
	var docs []outputDoc
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		return nil, fmt.Errorf("decode outputs: %w", err)
	}
	outputs := make([]model.Output, len(docs))
	for i, d := range docs {
		slp, err := d.Slp.model()
		if err != nil {
			return nil, fmt.Errorf("decode output %d: %w", d.Index, err)
		}
		outputs[i] = model.Output{
			TxID:        txID,
			Index:       d.Index,
			Address:     d.Address,
			ScriptHex:   d.ScriptHex,
			Amount:      d.Amount,
			Confirmed:   d.Confirmed,
			OpReturn:    d.OpReturn,
			Slp:         slp,
			Timestamp:   d.Timestamp,
			BlockHeight: d.BlockHeight,
		}
	}
	return outputs, nil
}

func encodeInputs(inputs []model.Input) (string, error) {
	docs := make([]inputDoc, len(inputs))
	for i, in := range inputs {
		doc := inputDoc{
			Address:   in.Address,
			PrevTxID:  in.PrevTxID,
			PrevIndex: in.PrevIndex,
			Coinbase:  in.Coinbase,
			Sequence:  in.Sequence,
		}
		if r, ok := in.Resolution(); ok {
			doc.Resolved = true
			doc.Amount = r.Amount
			doc.Slp = toSlpDoc(r.Slp)
		}
		docs[i] = doc
	}
	raw, err := json.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("encode inputs: %w", err)
	}
	return string(raw), nil
}

func decodeInputs(raw string) ([]model.Input, error) {
	var docs []inputDoc
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		return nil, fmt.Errorf("decode inputs: %w", err)
	}
	inputs := make([]model.Input, len(docs))
	for i, d := range docs {
		in := model.Input{
			Address:   d.Address,
			PrevTxID:  d.PrevTxID,
			PrevIndex: d.PrevIndex,
			Coinbase:  d.Coinbase,
			Sequence:  d.Sequence,
			Value:     model.Unresolved{},
		}
		if d.Resolved {
			slp, err := d.Slp.model()
			if err != nil {
				return nil, fmt.Errorf("decode input %d: %w", i, err)
			}
			in = in.Resolve(d.Amount, slp)
		}
		inputs[i] = in
	}
	return inputs, nil
}

func encodeOperation(op model.TokenOperation) (string, error) {
	if op == nil {
		return "", nil
	}
	ref := op.Ref()
	doc := operationDoc{
		Kind:      string(op.Kind()),
		TokenID:   ref.TokenID,
		TokenType: uint16(ref.TokenType),
	}
	switch o := op.(type) {
	case model.GenesisOperation:
		doc.Ticker = o.Ticker
		doc.Name = o.Name
		doc.DocumentURI = o.DocumentURI
		doc.DocumentHash = o.DocumentHash
		doc.Decimals = o.Decimals
		doc.BatonVout = o.BatonVout
		doc.MintedAmount = o.MintedAmount
	case model.MintOperation:
		doc.BatonVout = o.BatonVout
		doc.MintedAmount = o.MintedAmount
	case model.SendOperation:
		doc.Quantities = o.Quantities
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode operation: %w", err)
	}
	return string(raw), nil
}

func decodeOperation(raw string) (model.TokenOperation, error) {
	if raw == "" {
		return nil, nil
	}
	var doc operationDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode operation: %w", err)
	}
	ref := model.TokenRef{TokenID: doc.TokenID, TokenType: model.TokenTypeFromCode(doc.TokenType)}

	switch model.OperationKind(doc.Kind) {
	case model.OperationGenesis:
		return model.GenesisOperation{
			TokenRef:     ref,
			Ticker:       doc.Ticker,
			Name:         doc.Name,
			DocumentURI:  doc.DocumentURI,
			DocumentHash: doc.DocumentHash,
			Decimals:     doc.Decimals,
			BatonVout:    doc.BatonVout,
			MintedAmount: doc.MintedAmount,
		}, nil
	case model.OperationMint:
		return model.MintOperation{TokenRef: ref, BatonVout: doc.BatonVout, MintedAmount: doc.MintedAmount}, nil
	case model.OperationSend:
		return model.SendOperation{TokenRef: ref, Quantities: doc.Quantities}, nil
	default:
		return nil, fmt.Errorf("unknown operation kind %q", doc.Kind)
	}
}

func tokenIDsOf(tx model.Transaction) []string {
	ids := tx.TokenIDs()
	if ref, ok := tx.TokenRef(); ok {
		for _, id := range ids {
			if id == ref.TokenID {
				return ids
			}
		}
		ids = append(ids, ref.TokenID)
	}
	if ids == nil {
		return []string{}
	}
	return ids
}

func verdictColumns(tx model.Transaction) (string, string) {
	if tx.Valid == nil {
		return "", ""
	}
	return string(tx.Valid.Verdict), tx.Valid.Reason
}

func distinctTxIDs(outpoints []model.Outpoint) []string {
	seen := make(map[string]struct{}, len(outpoints))
	ids := make([]string, 0, len(outpoints))
	for _, op := range outpoints {
		if _, ok := seen[op.TxID]; ok {
			continue
		}
		seen[op.TxID] = struct{}{}
		ids = append(ids, op.TxID)
	}
	return ids
}
