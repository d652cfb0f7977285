package bitcoin

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

var (
	// ErrNotSlp marks scripts that are not SLP OP_RETURNs at all.
	ErrNotSlp = errors.New("not an slp script")
	// ErrMalformedSlp marks SLP OP_RETURNs that break the message format.
	ErrMalformedSlp = errors.New("malformed slp script")
)

var lokadID = []byte("SLP\x00")

const (
	maxSendQuantities = 19
	maxDecimals       = 9
	tokenIDSize       = 32
	quantitySize      = 8
)

// ParseSlpScript decodes an SLP OP_RETURN. GENESIS takes txID as its token id.
func ParseSlpScript(txID string, script []byte) (model.TokenOperation, error) {
	chunks, err := scriptChunks(script)
	if len(chunks) == 0 || !bytes.Equal(chunks[0], lokadID) {
		return nil, ErrNotSlp
	}
	if err != nil {
		return nil, err
	}
	if len(chunks) < 3 {
		return nil, malformed("%d pushes", len(chunks))
	}

	tokenType, err := parseTokenType(chunks[1])
	if err != nil {
		return nil, err
	}

	switch model.OperationKind(chunks[2]) {
	case model.OperationGenesis:
		return parseGenesis(txID, tokenType, chunks[3:])
	case model.OperationMint:
		return parseMint(tokenType, chunks[3:])
	case model.OperationSend:
		return parseSend(tokenType, chunks[3:])
	default:
		return nil, malformed("unknown transaction type %q", chunks[2])
	}
}

// scriptChunks returns the data pushes following OP_RETURN. On failure the
// pushes read so far are returned with the error.
func scriptChunks(script []byte) ([][]byte, error) {
	if len(script) == 0 || script[0] != txscript.OP_RETURN {
		return nil, ErrNotSlp
	}

	var chunks [][]byte
	tokenizer := txscript.MakeScriptTokenizer(0, script[1:])
	for tokenizer.Next() {
		if tokenizer.Opcode() > txscript.OP_PUSHDATA4 {
			return chunks, malformed("non-push opcode 0x%02x", tokenizer.Opcode())
		}
		chunks = append(chunks, tokenizer.Data())
	}
	if err := tokenizer.Err(); err != nil {
		return chunks, malformed("tokenize: %v", err)
	}
	return chunks, nil
}

func parseTokenType(chunk []byte) (model.TokenType, error) {
	switch len(chunk) {
	case 1:
		return model.TokenTypeFromCode(uint16(chunk[0])), nil
	case 2:
		return model.TokenTypeFromCode(binary.BigEndian.Uint16(chunk)), nil
	default:
		return model.TokenTypeUnknown, malformed("token type of %d bytes", len(chunk))
	}
}

// parseGenesis reads ticker, name, document uri, document hash, decimals,
// baton vout and quantity.
func parseGenesis(txID string, tokenType model.TokenType, chunks [][]byte) (model.TokenOperation, error) {
	if len(chunks) != 7 {
		return nil, malformed("genesis with %d fields", len(chunks))
	}
	docHash := chunks[3]
	if len(docHash) != 0 && len(docHash) != 32 {
		return nil, malformed("document hash of %d bytes", len(docHash))
	}
	if len(chunks[4]) != 1 || chunks[4][0] > maxDecimals {
		return nil, malformed("invalid decimals")
	}
	baton, err := parseBaton(chunks[5])
	if err != nil {
		return nil, err
	}
	qty, err := parseQuantity(chunks[6])
	if err != nil {
		return nil, err
	}

	return model.GenesisOperation{
		TokenRef:     model.TokenRef{TokenID: txID, TokenType: tokenType},
		Ticker:       string(chunks[0]),
		Name:         string(chunks[1]),
		DocumentURI:  string(chunks[2]),
		DocumentHash: hex.EncodeToString(docHash),
		Decimals:     chunks[4][0],
		BatonVout:    baton,
		MintedAmount: qty,
	}, nil
}

// parseMint reads token id, baton vout and quantity.
func parseMint(tokenType model.TokenType, chunks [][]byte) (model.TokenOperation, error) {
	if len(chunks) != 3 {
		return nil, malformed("mint with %d fields", len(chunks))
	}
	tokenID, err := parseTokenID(chunks[0])
	if err != nil {
		return nil, err
	}
	baton, err := parseBaton(chunks[1])
	if err != nil {
		return nil, err
	}
	qty, err := parseQuantity(chunks[2])
	if err != nil {
		return nil, err
	}

	return model.MintOperation{
		TokenRef:     model.TokenRef{TokenID: tokenID, TokenType: tokenType},
		BatonVout:    baton,
		MintedAmount: qty,
	}, nil
}

// parseSend reads token id and one quantity per receiving output.
func parseSend(tokenType model.TokenType, chunks [][]byte) (model.TokenOperation, error) {
	if len(chunks) < 2 {
		return nil, malformed("send without quantities")
	}
	if len(chunks)-1 > maxSendQuantities {
		return nil, malformed("send with %d quantities", len(chunks)-1)
	}
	tokenID, err := parseTokenID(chunks[0])
	if err != nil {
		return nil, err
	}

	quantities := make([]uint64, 0, len(chunks)-1)
	for _, chunk := range chunks[1:] {
		qty, err := parseQuantity(chunk)
		if err != nil {
			return nil, err
		}
		quantities = append(quantities, qty)
	}

	return model.SendOperation{
		TokenRef:   model.TokenRef{TokenID: tokenID, TokenType: tokenType},
		Quantities: quantities,
	}, nil
}

func parseTokenID(chunk []byte) (string, error) {
	if len(chunk) != tokenIDSize {
		return "", malformed("token id of %d bytes", len(chunk))
	}
	return hex.EncodeToString(chunk), nil
}

// parseBaton accepts an empty push (baton destroyed) or a vout from 2 to 255.
func parseBaton(chunk []byte) (*uint32, error) {
	switch len(chunk) {
	case 0:
		return nil, nil
	case 1:
		if chunk[0] < 2 {
			return nil, malformed("baton vout %d", chunk[0])
		}
		vout := uint32(chunk[0])
		return &vout, nil
	default:
		return nil, malformed("baton vout of %d bytes", len(chunk))
	}
}

func parseQuantity(chunk []byte) (uint64, error) {
	if len(chunk) != quantitySize {
		return 0, malformed("quantity of %d bytes", len(chunk))
	}
	return binary.BigEndian.Uint64(chunk), nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedSlp, fmt.Sprintf(format, args...))
}
