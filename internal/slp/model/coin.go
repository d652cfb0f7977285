package model

type Coin string
type Network string

var (
	BCH Coin = "BCH"
)

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
)
