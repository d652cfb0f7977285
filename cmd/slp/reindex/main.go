package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/logging"
	"github.com/goodnatureofminers/slp-indexer/internal/metrics"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/bitcoin"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/chain"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/repository/clickhouse"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/service/ingester"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/store"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/validator"
	"github.com/goodnatureofminers/slp-indexer/pkg/workerpool"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"SLP_REINDEX_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Coin          model.Coin    `long:"coin" env:"SLP_REINDEX_COIN" description:"coin name" default:"BCH"`
	Network       model.Network `long:"network" env:"SLP_REINDEX_NETWORK" description:"network name" required:"true"`
	BlockHex      string        `long:"block-hex" env:"SLP_REINDEX_BLOCK_HEX" description:"serialized block to reindex"`
	Height        uint64        `long:"height" env:"SLP_REINDEX_HEIGHT" description:"height of the block passed in --block-hex"`
	TxHex         string        `long:"tx-hex" env:"SLP_REINDEX_TX_HEX" description:"serialized transaction to reindex"`
	Workers       int           `long:"workers" env:"SLP_REINDEX_WORKERS" description:"resolve worker count" default:"32"`
	RetryDelay    time.Duration `long:"retry-delay" env:"SLP_REINDEX_RETRY_DELAY" description:"delay before retrying a store call" default:"500ms"`
	LogLevel      string        `long:"log-level" env:"SLP_REINDEX_LOG_LEVEL" description:"log level" default:"info"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Config{Development: true, Level: cfg.LogLevel})
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if (cfg.BlockHex == "") == (cfg.TxHex == "") {
		logger.Fatal("exactly one of --block-hex and --tx-hex is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("slp reindex failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.Coin, cfg.Network, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("close repository", zap.Error(err))
		}
	}()

	decoder, err := bitcoin.NewScriptDecoder(cfg.Network)
	if err != nil {
		return err
	}
	converter := bitcoin.NewConverter(decoder, logger)

	cacheMetrics := metrics.NewCache(cfg.Coin, cfg.Network)
	utxos, err := store.NewUtxoStore(repo, cacheMetrics, store.Config{}, logger)
	if err != nil {
		return err
	}
	txs, err := store.NewTransactionStore(repo, cacheMetrics, store.Config{}, logger)
	if err != nil {
		return err
	}
	details, err := store.NewTokenDetailsStore(repo, cacheMetrics, store.Config{})
	if err != nil {
		return err
	}
	engine, err := validator.NewEngine(txs, utxos, metrics.NewValidator(cfg.Coin, cfg.Network), logger)
	if err != nil {
		return err
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	pipeline, err := ingester.NewPipeline(
		pool,
		chain.NewAnnotator(details, logger.Named("annotator")),
		utxos,
		txs,
		engine,
		metrics.NewPipeline("reindex", cfg.Coin, cfg.Network),
		cfg.RetryDelay,
		logger,
	)
	if err != nil {
		return err
	}
	reindexer, err := ingester.NewReindexer(converter, pipeline, utxos, txs, logger)
	if err != nil {
		return err
	}

	var indexed []model.IndexerTransaction
	if cfg.BlockHex != "" {
		raw, err := decodeHex(cfg.BlockHex)
		if err != nil {
			return fmt.Errorf("decode block hex: %w", err)
		}
		indexed, err = reindexer.ReindexBlock(ctx, raw, cfg.Height)
		if err != nil {
			return err
		}
	} else {
		raw, err := decodeHex(cfg.TxHex)
		if err != nil {
			return fmt.Errorf("decode transaction hex: %w", err)
		}
		indexed, err = reindexer.ReindexTransaction(ctx, raw)
		if err != nil {
			return err
		}
	}

	for _, it := range indexed {
		tx := it.Transaction
		fields := []zap.Field{zap.String("txid", tx.TxID), zap.Bool("token", tx.IsToken())}
		if tx.IsToken() {
			v := tx.Verdict()
			fields = append(fields, zap.String("verdict", string(v.Verdict)), zap.String("reason", v.Reason))
		}
		logger.Info("reindexed", fields...)
	}
	return nil
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimSpace(s))
}
