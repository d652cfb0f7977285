// Package metrics holds the Prometheus collectors of the indexer.
package metrics

import "github.com/goodnatureofminers/slp-indexer/internal/slp/model"

const namespace = "slpindexer"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func chainLabels(coin model.Coin, network model.Network) (string, string) {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return string(coin), string(network)
}
