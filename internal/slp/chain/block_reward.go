package chain

import "github.com/btcsuite/btcd/btcutil"

const (
	subsidyHalvingInterval = 210_000
	initialSubsidy         = 50 * btcutil.SatoshiPerBitcoin
)

// BlockReward returns the block subsidy in satoshis at height.
func BlockReward(height uint64) uint64 {
	halvings := height / subsidyHalvingInterval
	if halvings >= 64 {
		return 0
	}
	return uint64(initialSubsidy) >> halvings
}
