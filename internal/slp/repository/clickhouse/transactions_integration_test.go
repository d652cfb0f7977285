package clickhouse

import (
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/shopspring/decimal"
)

func newSendTx(id, tokenID, blockHash string, ts time.Time, verdict model.SlpValid) model.Transaction {
	return model.Transaction{
		TxID:      id,
		Confirmed: blockHash != "",
		FromBlock: blockHash != "",
		BlockHash: blockHash,
		Timestamp: ts,
		Version:   1,
		Size:      220,
		Inputs: []model.Input{
			{Address: "qpfunding", PrevTxID: txid("f"), PrevIndex: 0, Sequence: 0xffffffff, Value: model.Unresolved{}},
		},
		Outputs: []model.Output{
			{TxID: id, Index: 0, Address: "OP_RETURN:" + id, ScriptHex: "6a", OpReturn: true, Timestamp: ts},
			{
				TxID:      id,
				Index:     1,
				Address:   "qpowner",
				ScriptHex: "76a914",
				Amount:    546,
				Timestamp: ts,
				Slp: &model.SlpUtxo{
					TokenID:     tokenID,
					Amount:      decimal.NewFromInt(10),
					Operation:   model.OperationSend,
					TokenType:   model.TokenTypePermissionless,
					ParentValid: verdict.Verdict,
				},
			},
		},
		Operation: model.SendOperation{
			TokenRef:   model.TokenRef{TokenID: tokenID, TokenType: model.TokenTypePermissionless},
			Quantities: []uint64{10},
		},
		Valid: &verdict,
	}
}

func (s *RepositorySuite) TestInsertTransactions_LatestVersionWins() {
	ts := time.Now().UTC().Truncate(time.Millisecond)
	tx := newSendTx(txid("a"), txid("t"), txid("b"), ts, model.UnknownVerdict())

	s.expectObserve("insert_transactions", 2)
	s.expectObserve("transactions_by_ids", 1)

	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, []model.Transaction{tx}))
	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, []model.Transaction{tx.WithVerdict(model.ValidVerdict(""))}))

	got, err := s.repo.TransactionsByIDs(s.testCtx, []string{tx.TxID})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(model.VerdictValid, got[0].Verdict().Verdict)
	s.Equal(model.VerdictValid, got[0].Outputs[1].Slp.ParentValid)
	s.True(got[0].Timestamp.Equal(ts))
	s.Equal(model.OperationSend, got[0].Operation.Kind())
	s.Equal(uint64(1), s.countRows("slp_transactions"))
}

func (s *RepositorySuite) TestTransactionsByToken() {
	base := time.Now().UTC().Truncate(time.Millisecond)
	token := txid("t")
	txs := []model.Transaction{
		newSendTx(txid("1"), token, "", base, model.ValidVerdict("")),
		newSendTx(txid("2"), token, "", base.Add(time.Second), model.ValidVerdict("")),
		newSendTx(txid("3"), token, "", base.Add(2*time.Second), model.InvalidVerdict("bad")),
		newSendTx(txid("4"), txid("o"), "", base.Add(3*time.Second), model.ValidVerdict("")),
	}

	s.expectObserve("insert_transactions", 1)
	s.expectObserve("transactions_by_token", 2)

	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, txs))

	page, err := s.repo.TransactionsByToken(s.testCtx, token, model.VerdictValid, 1, 0)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(txid("2"), page[0].TxID)

	page, err = s.repo.TransactionsByToken(s.testCtx, token, model.VerdictValid, 1, 1)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(txid("1"), page[0].TxID)
}

func (s *RepositorySuite) TestDeleteTransactionsByBlockHash() {
	ts := time.Now().UTC().Truncate(time.Millisecond)
	txs := []model.Transaction{
		newSendTx(txid("1"), txid("t"), txid("b"), ts, model.ValidVerdict("")),
		newSendTx(txid("2"), txid("t"), txid("b"), ts, model.ValidVerdict("")),
		newSendTx(txid("3"), txid("t"), txid("c"), ts, model.ValidVerdict("")),
	}

	s.expectObserve("insert_transactions", 1)
	s.expectObserve("transaction_ids_by_block_hash", 1)
	s.expectObserve("delete_transactions", 1)

	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, txs))

	ids, err := s.repo.TransactionIDsByBlockHash(s.testCtx, txid("b"))
	s.Require().NoError(err)
	s.Equal([]string{txid("1"), txid("2")}, ids)

	s.Require().NoError(s.repo.DeleteTransactions(s.testCtx, ids))
	s.Equal(uint64(1), s.countRows("slp_transactions"))
}
