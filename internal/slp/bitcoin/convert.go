// Package bitcoin turns node data into indexer transactions and blocks.
package bitcoin

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/goodnatureofminers/slp-indexer/pkg/safe"
	"go.uber.org/zap"
)

// TxContext places a transaction on the chain. A zero BlockHash means the
// transaction is unconfirmed.
type TxContext struct {
	Timestamp   time.Time
	BlockHash   string
	BlockHeight *uint64
	BlockTime   *time.Time
}

// Converter maps wire messages onto model values.
type Converter struct {
	decoder *ScriptDecoder
	logger  *zap.Logger
}

// NewConverter constructs a Converter.
func NewConverter(decoder *ScriptDecoder, logger *zap.Logger) *Converter {
	return &Converter{decoder: decoder, logger: logger.Named("converter")}
}

// Block converts a raw block found at height.
func (c *Converter) Block(msg *wire.MsgBlock, height uint64) (model.Block, error) {
	block := btcutil.NewBlock(msg)
	blockTime := msg.Header.Timestamp.UTC()
	header := model.BlockHeader{
		Hash:     block.Hash().String(),
		PrevHash: msg.Header.PrevBlock.String(),
		Height:   height,
		Time:     blockTime,
	}

	txs := make([]model.Transaction, 0, len(msg.Transactions))
	for _, tx := range block.Transactions() {
		h := height
		converted, err := c.convert(tx, TxContext{
			Timestamp:   blockTime,
			BlockHash:   header.Hash,
			BlockHeight: &h,
			BlockTime:   &blockTime,
		})
		if err != nil {
			return model.Block{}, fmt.Errorf("block %s: %w", header.Hash, err)
		}
		txs = append(txs, converted)
	}
	return model.Block{BlockHeader: header, Transactions: txs}, nil
}

// Transaction converts a single raw transaction.
func (c *Converter) Transaction(msg *wire.MsgTx, txc TxContext) (model.Transaction, error) {
	return c.convert(btcutil.NewTx(msg), txc)
}

// RawTransaction decodes serialized transaction bytes and converts them.
func (c *Converter) RawTransaction(raw []byte, txc TxContext) (model.Transaction, error) {
	var msg wire.MsgTx
	if err := msg.Deserialize(bytes.NewReader(raw)); err != nil {
		return model.Transaction{}, fmt.Errorf("decode raw transaction: %w", err)
	}
	return c.Transaction(&msg, txc)
}

func (c *Converter) convert(tx *btcutil.Tx, txc TxContext) (model.Transaction, error) {
	msg := tx.MsgTx()
	txID := tx.Hash().String()

	var raw bytes.Buffer
	if err := msg.Serialize(&raw); err != nil {
		return model.Transaction{}, fmt.Errorf("serialize transaction %s: %w", txID, err)
	}
	size, err := safe.Uint32(raw.Len())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %s size: %w", txID, err)
	}

	inputs := make([]model.Input, 0, len(msg.TxIn))
	coinbase := isCoinbase(msg)
	for _, in := range msg.TxIn {
		input := model.Input{
			PrevTxID:  in.PreviousOutPoint.Hash.String(),
			PrevIndex: in.PreviousOutPoint.Index,
			Sequence:  in.Sequence,
			Coinbase:  coinbase,
			Value:     model.Unresolved{},
		}
		if coinbase {
			input.PrevTxID = ""
			input.PrevIndex = 0
		}
		inputs = append(inputs, input)
	}

	confirmed := txc.BlockHash != ""
	outputs := make([]model.Output, 0, len(msg.TxOut))
	var operation model.TokenOperation
	parsed := false
	for i, out := range msg.TxOut {
		index, err := safe.Uint32(i)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("transaction %s output index: %w", txID, err)
		}
		amount, err := safe.Uint64(out.Value)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("transaction %s output %d value: %w", txID, i, err)
		}
		address, opReturn := c.decoder.Address(txID, out.PkScript)

		if opReturn && !parsed {
			parsed = true
			operation = c.parseOperation(txID, out.PkScript)
		}

		outputs = append(outputs, model.Output{
			TxID:        txID,
			Index:       index,
			Address:     address,
			ScriptHex:   hex.EncodeToString(out.PkScript),
			Amount:      amount,
			Confirmed:   confirmed,
			OpReturn:    opReturn,
			Timestamp:   txc.Timestamp,
			BlockHeight: txc.BlockHeight,
		})
	}

	converted := model.Transaction{
		TxID:        txID,
		Inputs:      inputs,
		Outputs:     outputs,
		Confirmed:   confirmed,
		Timestamp:   txc.Timestamp,
		FromBlock:   confirmed,
		BlockHash:   txc.BlockHash,
		BlockHeight: txc.BlockHeight,
		BlockTime:   txc.BlockTime,
		RawHex:      hex.EncodeToString(raw.Bytes()),
		Version:     msg.Version,
		LockTime:    msg.LockTime,
		Size:        size,
		Operation:   operation,
	}
	if err := converted.Validate(); err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", txID, err)
	}
	return converted, nil
}

func (c *Converter) parseOperation(txID string, script []byte) model.TokenOperation {
	op, err := ParseSlpScript(txID, script)
	if err != nil {
		if !errors.Is(err, ErrNotSlp) {
			c.logger.Debug("slp op_return rejected", zap.String("txid", txID), zap.Error(err))
		}
		return nil
	}
	return op
}

func isCoinbase(msg *wire.MsgTx) bool {
	if len(msg.TxIn) != 1 {
		return false
	}
	prev := msg.TxIn[0].PreviousOutPoint
	return prev.Index == wire.MaxPrevOutIndex && prev.Hash == (chainhash.Hash{})
}
