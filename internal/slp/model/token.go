package model

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// TokenType is the SLP token type code carried in the OP_RETURN.
type TokenType uint16

const (
	TokenTypeUnknown        TokenType = 0
	TokenTypePermissionless TokenType = 0x01
	TokenTypeNFT1Child      TokenType = 0x41
	TokenTypeNFT1Genesis    TokenType = 0x81
)

// TokenTypeFromCode maps a raw type code onto a supported TokenType.
func TokenTypeFromCode(code uint16) TokenType {
	switch TokenType(code) {
	case TokenTypePermissionless, TokenTypeNFT1Child, TokenTypeNFT1Genesis:
		return TokenType(code)
	default:
		return TokenTypeUnknown
	}
}

// ParseTokenType is the inverse of TokenType.String.
func ParseTokenType(s string) TokenType {
	switch s {
	case "PERMISSIONLESS":
		return TokenTypePermissionless
	case "NFT1_CHILD":
		return TokenTypeNFT1Child
	case "NFT1_GENESIS":
		return TokenTypeNFT1Genesis
	default:
		return TokenTypeUnknown
	}
}

func (t TokenType) String() string {
	switch t {
	case TokenTypePermissionless:
		return "PERMISSIONLESS"
	case TokenTypeNFT1Child:
		return "NFT1_CHILD"
	case TokenTypeNFT1Genesis:
		return "NFT1_GENESIS"
	default:
		return "UNKNOWN"
	}
}

// Hex returns the type code as it appears on the wire.
func (t TokenType) Hex() string {
	return fmt.Sprintf("%02x", uint16(t))
}

// IsNFT1 reports whether the type belongs to the NFT1 group/child family.
func (t TokenType) IsNFT1() bool {
	return t == TokenTypeNFT1Child || t == TokenTypeNFT1Genesis
}

// OperationKind names the three SLP operations.
type OperationKind string

const (
	OperationGenesis OperationKind = "GENESIS"
	OperationMint    OperationKind = "MINT"
	OperationSend    OperationKind = "SEND"
)

// TokenRef identifies the token an operation acts on.
type TokenRef struct {
	TokenID   string
	TokenType TokenType
}

// Ref returns the token reference.
func (r TokenRef) Ref() TokenRef {
	return r
}

// TokenOperation is a parsed SLP OP_RETURN. Implemented by GenesisOperation,
// MintOperation and SendOperation only.
type TokenOperation interface {
	Kind() OperationKind
	Ref() TokenRef
	isTokenOperation()
}

// GenesisOperation creates a token. The token id is the genesis txid.
type GenesisOperation struct {
	TokenRef
	Ticker       string
	Name         string
	DocumentURI  string
	DocumentHash string
	Decimals     uint8
	BatonVout    *uint32
	MintedAmount uint64
}

// MintOperation issues additional supply by spending the baton.
type MintOperation struct {
	TokenRef
	BatonVout    *uint32
	MintedAmount uint64
}

// SendOperation moves supply; quantity i goes to output i+1.
type SendOperation struct {
	TokenRef
	Quantities []uint64
}

func (GenesisOperation) Kind() OperationKind { return OperationGenesis }
func (MintOperation) Kind() OperationKind    { return OperationMint }
func (SendOperation) Kind() OperationKind    { return OperationSend }

func (GenesisOperation) isTokenOperation() {}
func (MintOperation) isTokenOperation()    {}
func (SendOperation) isTokenOperation()    {}

// SlpUtxo is the token annotation carried by an output.
type SlpUtxo struct {
	TokenID   string
	Amount    decimal.Decimal
	HasBaton  bool
	Ticker    string
	Operation OperationKind
	Name      string
	TokenType TokenType
	// ParentValid is the verdict of the transaction that created the output.
	ParentValid Verdict
}

// IsGenesis reports whether the annotation was produced by a GENESIS.
func (s SlpUtxo) IsGenesis() bool {
	return s.Operation == OperationGenesis
}

// TokenTypeHex returns the wire form of the token type.
func (s SlpUtxo) TokenTypeHex() string {
	return s.TokenType.Hex()
}

// TokenDetails holds per-token metadata needed to annotate MINT and SEND outputs.
type TokenDetails struct {
	TokenID        string
	Ticker         string
	Name           string
	DocumentURI    string
	Decimals       uint8
	TokenType      TokenType
	GenesisHeight  uint64
	LastMintHeight uint64
	LastSendHeight uint64
}

// Scale converts a raw on-chain quantity into a decimal-adjusted amount.
func (d TokenDetails) Scale(raw uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(raw), -int32(d.Decimals))
}
