package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/slp-indexer/internal/logging"
	"github.com/goodnatureofminers/slp-indexer/internal/metrics"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/bitcoin"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/chain"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	headerstore "github.com/goodnatureofminers/slp-indexer/internal/slp/repository/badger"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/repository/clickhouse"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/service/ingester"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/store"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/validator"
	"github.com/goodnatureofminers/slp-indexer/pkg/workerpool"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"SLP_INGESTER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Coin          model.Coin    `long:"coin" env:"SLP_INGESTER_COIN" description:"coin name" default:"BCH"`
	Network       model.Network `long:"network" env:"SLP_INGESTER_NETWORK" description:"network name" required:"true"`
	RPCURL        string        `long:"rpc-url" env:"SLP_INGESTER_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"SLP_INGESTER_RPC_USER" description:"node RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"SLP_INGESTER_RPC_PASSWORD" description:"node RPC password"`
	ZMQAddr       string        `long:"zmq-addr" env:"SLP_INGESTER_ZMQ_ADDR" description:"node ZMQ publisher address (hashblock, rawtx)"`
	HeaderStore   string        `long:"header-store" env:"SLP_INGESTER_HEADER_STORE" description:"block header store directory" default:"data/headers"`
	StartHeight   uint64        `long:"start-height" env:"SLP_INGESTER_START_HEIGHT" description:"first height indexed into an empty store" default:"0"`
	MetricsAddr   string        `long:"metrics-addr" env:"SLP_INGESTER_METRICS_ADDR" description:"address for metrics server" default:":2112"`

	Workers         int           `long:"workers" env:"SLP_INGESTER_WORKERS" description:"resolve worker count" default:"32"`
	RetryDelay      time.Duration `long:"retry-delay" env:"SLP_INGESTER_RETRY_DELAY" description:"delay before retrying a store call" default:"500ms"`
	PollInterval    time.Duration `long:"poll-interval" env:"SLP_INGESTER_POLL_INTERVAL" description:"node tip poll interval" default:"5s"`
	MempoolPoll     time.Duration `long:"mempool-poll" env:"SLP_INGESTER_MEMPOOL_POLL" description:"mempool poll interval, 0 disables polling" default:"10s"`
	UtxoCacheSize   int           `long:"utxo-cache-size" env:"SLP_INGESTER_UTXO_CACHE_SIZE" description:"outputs kept in the utxo cache" default:"100000"`
	UtxoCacheTTL    time.Duration `long:"utxo-cache-ttl" env:"SLP_INGESTER_UTXO_CACHE_TTL" description:"utxo cache expiry" default:"40m"`
	TxCacheTTL      time.Duration `long:"tx-cache-ttl" env:"SLP_INGESTER_TX_CACHE_TTL" description:"transaction cache expiry" default:"1h"`
	CleanupInterval time.Duration `long:"cache-cleanup" env:"SLP_INGESTER_CACHE_CLEANUP" description:"cache cleanup interval" default:"10m"`
	CallTimeout     time.Duration `long:"call-timeout" env:"SLP_INGESTER_CALL_TIMEOUT" description:"store read timeout" default:"5s"`

	LogLevel       string `long:"log-level" env:"SLP_INGESTER_LOG_LEVEL" description:"log level" default:"info"`
	LogDevelopment bool   `long:"log-development" env:"SLP_INGESTER_LOG_DEVELOPMENT" description:"human readable logs"`
	LogFile        string `long:"log-file" env:"SLP_INGESTER_LOG_FILE" description:"also write logs to this rotating file"`
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

	logger, err := logging.New(logging.Config{
		Development: cfg.LogDevelopment,
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
		MaxSizeMB:   100,
		MaxBackups:  5,
		MaxAgeDays:  14,
	})
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("slp ingester failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(zap.String("coin", string(cfg.Coin)), zap.String("network", string(cfg.Network)))
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.Coin, cfg.Network, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("close repository", zap.Error(err))
		}
	}()

	headers, err := headerstore.NewHeaderStore(cfg.HeaderStore, logger)
	if err != nil {
		return fmt.Errorf("open header store: %w", err)
	}
	defer func() {
		if err := headers.Close(); err != nil {
			logger.Error("close header store", zap.Error(err))
		}
	}()

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init node rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc := bitcoin.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network))
	if _, err := rpc.GetBlockCount(); err != nil {
		return fmt.Errorf("reach node: %w", err)
	}

	decoder, err := bitcoin.NewScriptDecoder(cfg.Network)
	if err != nil {
		return err
	}
	converter := bitcoin.NewConverter(decoder, logger)
	source := bitcoin.NewBlockSource(rpc, converter)

	storeCfg := store.Config{
		UtxoCacheSize:   cfg.UtxoCacheSize,
		UtxoCacheTTL:    cfg.UtxoCacheTTL,
		TxCacheTTL:      cfg.TxCacheTTL,
		CleanupInterval: cfg.CleanupInterval,
		CallTimeout:     cfg.CallTimeout,
	}
	cacheMetrics := metrics.NewCache(cfg.Coin, cfg.Network)
	utxos, err := store.NewUtxoStore(repo, cacheMetrics, storeCfg, logger)
	if err != nil {
		return err
	}
	txs, err := store.NewTransactionStore(repo, cacheMetrics, storeCfg, logger)
	if err != nil {
		return err
	}
	details, err := store.NewTokenDetailsStore(repo, cacheMetrics, storeCfg)
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
		metrics.NewPipeline("ingester", cfg.Coin, cfg.Network),
		cfg.RetryDelay,
		logger,
	)
	if err != nil {
		return err
	}
	reorg, err := ingester.NewReorgHandler(pipeline, txs, utxos, headers, logger)
	if err != nil {
		return err
	}

	blockSignal, rawTxs, err := startNodeSignals(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return err
	}

	blocks, err := ingester.NewBlockIngester(
		source,
		pipeline,
		reorg,
		utxos,
		headers,
		metrics.NewBlockIngester(cfg.Coin, cfg.Network),
		cfg.Coin,
		cfg.Network,
		cfg.StartHeight,
		cfg.PollInterval,
		blockSignal,
		logger,
	)
	if err != nil {
		return err
	}
	mempool, err := ingester.NewMempoolListener(
		source,
		converter,
		pipeline,
		utxos,
		txs,
		metrics.NewMempoolListener(cfg.Coin, cfg.Network),
		rawTxs,
		cfg.MempoolPoll,
		logger,
	)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return blocks.Run(gctx)
	})
	g.Go(func() error {
		return mempool.Run(gctx)
	})
	return g.Wait()
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
