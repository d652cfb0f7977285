package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

const (
	opReturnAddressPrefix = "OP_RETURN:"
	unknownAddress        = "unknown"
)

// ScriptDecoder names the owner of an output script.
type ScriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder initializes a decoder using the address params of network.
func NewScriptDecoder(network model.Network) (*ScriptDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &ScriptDecoder{params: params}, nil
}

// Address returns the legacy address paying to pkScript. Null-data outputs
// are named after their transaction and reported with opReturn set.
func (d *ScriptDecoder) Address(txID string, pkScript []byte) (address string, opReturn bool) {
	// SLP messages carry many pushes, which txscript does not classify as
	// null data.
	if len(pkScript) > 0 && pkScript[0] == txscript.OP_RETURN {
		return opReturnAddressPrefix + txID, true
	}

	class, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, d.params)
	if err != nil {
		return unknownAddress, false
	}

	switch class {
	case txscript.PubKeyHashTy, txscript.ScriptHashTy, txscript.PubKeyTy:
		if len(addrs) == 0 {
			return unknownAddress, false
		}
		return addrs[0].EncodeAddress(), false
	default:
		return unknownAddress, false
	}
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
