package model

import "time"

// BlockHeader is what the header store keeps per block.
type BlockHeader struct {
	Hash     string
	PrevHash string
	Height   uint64
	Time     time.Time
}

// Block is a block with its converted transactions.
type Block struct {
	BlockHeader
	Transactions []Transaction
}
