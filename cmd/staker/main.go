package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/metrics"
	rpcclient2 "github.com/goodnatureofminers/yody-staker/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/yody-staker/internal/staker/delegation"
	"github.com/goodnatureofminers/yody-staker/internal/staker/gas"
	"github.com/goodnatureofminers/yody-staker/internal/staker/governance"
	"github.com/goodnatureofminers/yody-staker/internal/staker/kernel"
	"github.com/goodnatureofminers/yody-staker/internal/staker/mempool"
	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
	"github.com/goodnatureofminers/yody-staker/internal/staker/node"
	"github.com/goodnatureofminers/yody-staker/internal/staker/repository/clickhouse"
	"github.com/goodnatureofminers/yody-staker/internal/staker/reward"
	"github.com/goodnatureofminers/yody-staker/internal/staker/service"
	"github.com/goodnatureofminers/yody-staker/internal/staker/template"
	"github.com/goodnatureofminers/yody-staker/internal/transport"
)

type config struct {
	Network     model.Network `long:"network" env:"STAKER_NETWORK" description:"network name (mainnet, testnet, regtest)" required:"true"`
	RPCURL      string        `long:"rpc-url" env:"STAKER_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:3889"`
	RPCUser     string        `long:"rpc-user" env:"STAKER_RPC_USER" description:"node RPC username"`
	RPCPassword string        `long:"rpc-password" env:"STAKER_RPC_PASSWORD" description:"node RPC password"`
	RPCWorkers  int           `long:"rpc-workers" env:"STAKER_RPC_WORKERS" description:"concurrent per-item RPC calls" default:"8"`
	ZMQAddr     string        `long:"zmq-addr" env:"STAKER_ZMQ_ADDR" description:"node ZMQ hashblock endpoint"`

	StakerWIF       string           `long:"staker-wif" env:"STAKER_WIF" description:"staker private key in WIF" required:"true"`
	Maturity        uint32           `long:"maturity" env:"STAKER_MATURITY" description:"confirmations before a coin may stake" default:"500"`
	MinUTXOValue    model.CoinAmount `long:"staking-min-utxo-value" env:"STAKER_MIN_UTXO_VALUE" description:"smallest coin offered to the kernel search" default:"100"`
	KernelCacheSize int              `long:"kernel-cache-size" env:"STAKER_KERNEL_CACHE_SIZE" description:"entries in the failed kernel check cache" default:"100000"`

	HardBlockGasLimit uint64           `long:"hard-block-gas-limit" env:"STAKER_HARD_BLOCK_GAS_LIMIT" description:"consensus block gas limit when governance is not read" default:"40000000"`
	SoftBlockGasLimit uint64           `long:"soft-block-gas-limit" env:"STAKER_SOFT_BLOCK_GAS_LIMIT" description:"local block gas budget" default:"40000000"`
	MaxTxGasLimit     uint64           `long:"max-tx-gas-limit" env:"STAKER_MAX_TX_GAS_LIMIT" description:"largest gas demand of one transaction" default:"40000000"`
	MinTxGasPrice     model.CoinAmount `long:"min-tx-gas-price" env:"STAKER_MIN_TX_GAS_PRICE" description:"lowest accepted gas price in coins" default:"0.0000004"`

	GasLimitContract    string   `long:"gas-limit-contract" env:"STAKER_GAS_LIMIT_CONTRACT" description:"governance contract holding the block gas limit"`
	MinGasPriceContract string   `long:"min-gas-price-contract" env:"STAKER_MIN_GAS_PRICE_CONTRACT" description:"governance contract holding the min gas price"`
	DelegationContract  string   `long:"delegation-contract" env:"STAKER_DELEGATION_CONTRACT" description:"delegation contract address"`
	Delegators          []string `long:"delegator" env:"STAKER_DELEGATORS" env-delim:"," description:"delegator address allowed to delegate to this staker"`
	DelegationDir       string   `long:"delegation-dir" env:"STAKER_DELEGATION_DIR" description:"delegation registry directory, in memory when empty"`

	MPoSFirstBlock     uint64 `long:"mpos-first-block" env:"STAKER_MPOS_FIRST_BLOCK" default:"5000"`
	MPoSLastBlock      uint64 `long:"mpos-last-block" env:"STAKER_MPOS_LAST_BLOCK" default:"0"`
	MPoSRecipients     int    `long:"mpos-recipients" env:"STAKER_MPOS_RECIPIENTS" default:"10"`
	MPoSLookbackOffset uint64 `long:"mpos-lookback-offset" env:"STAKER_MPOS_LOOKBACK_OFFSET" default:"500"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"STAKER_CLICKHOUSE_DSN" description:"ClickHouse DSN for the minted block journal"`
	HTTPAddr      string `long:"http-addr" env:"STAKER_HTTP_ADDR" description:"status and metrics address" default:":2112"`
	GRPCAddr      string `long:"grpc-addr" env:"STAKER_GRPC_ADDR" description:"gRPC health address" default:":8000"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("staker failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(zap.String("network", string(cfg.Network)))

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc := rpcclient2.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.Network))
	chain, err := node.New(logger, rpc, cfg.Network, cfg.RPCWorkers)
	if err != nil {
		return fmt.Errorf("init node client: %w", err)
	}

	keyring := template.NewKeyring()
	staker, err := keyring.ImportWIF(cfg.StakerWIF)
	if err != nil {
		return fmt.Errorf("import staker key: %w", err)
	}
	logger = logger.With(zap.Stringer("staker", staker))

	auth := delegation.NewAuthorizer()
	registry, err := delegation.OpenRegistry(logger, delegation.RegistryConfig{Dir: cfg.DelegationDir})
	if err != nil {
		return err
	}
	defer func() {
		if err := registry.Close(); err != nil {
			logger.Error("close delegation registry", zap.Error(err))
		}
	}()

	k, err := kernel.New(logger, kernel.Params{TimestampMask: kernel.DefaultTimestampMask, CacheSize: cfg.KernelCacheSize})
	if err != nil {
		return err
	}
	assembler := template.NewAssembler(
		logger,
		staker,
		template.DefaultParams(),
		k,
		gas.NewController(logger, metrics.NewGasSelection()),
		reward.NewSplitter(logger, auth),
		keyring,
		auth,
	)

	policy := model.GasPolicy{
		HardBlockGasLimit: cfg.HardBlockGasLimit,
		SoftBlockGasLimit: cfg.SoftBlockGasLimit,
		MaxTxGasLimit:     cfg.MaxTxGasLimit,
		MinTxGasPrice:     uint64(cfg.MinTxGasPrice.Satoshi()),
	}

	deps := service.Dependencies{
		Chain:       chain,
		Coins:       chain,
		Mempool:     chain,
		Sink:        chain,
		Delegations: registry,
		Verifier:    auth,
		Producer:    assembler,
		Pool:        mempool.New(logger, policy),
		Metrics:     metrics.NewStaker(cfg.Network),
	}

	if cfg.GasLimitContract != "" || cfg.MinGasPriceContract != "" {
		reader, err := governance.NewReader(logger, chain, governance.Config{
			BlockGasLimitContract: cfg.GasLimitContract,
			MinGasPriceContract:   cfg.MinGasPriceContract,
		})
		if err != nil {
			return err
		}
		deps.Governance = reader
	}

	var minted http.Handler
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		journal, err := service.NewJournalWriter(logger, repo, cfg.Network)
		if err != nil {
			return err
		}
		journal.Start(ctx)
		defer journal.Stop()
		deps.Journal = journal
		minted = transport.NewMintedHandler(logger, repo, cfg.Network)
	}

	if cfg.DelegationContract != "" && len(cfg.Delegators) > 0 {
		if err := startDelegationRefresher(ctx, cfg, logger, chain, registry, auth, staker); err != nil {
			return err
		}
	}

	if deps.TipSignal, err = startTipSignal(ctx, cfg.ZMQAddr, logger); err != nil {
		return err
	}

	svc, err := service.NewStakerService(logger, service.Config{
		Network:      cfg.Network,
		Staker:       staker,
		Maturity:     cfg.Maturity,
		MinUTXOValue: cfg.MinUTXOValue.Satoshi(),
		Policy:       policy,
		MPoS: reward.MPoSParams{
			FirstBlock:     cfg.MPoSFirstBlock,
			LastBlock:      cfg.MPoSLastBlock,
			Recipients:     cfg.MPoSRecipients,
			LookbackOffset: cfg.MPoSLookbackOffset,
		},
		TimestampMask: k.Mask(),
	}, deps)
	if err != nil {
		return err
	}

	if err := startGRPCServer(ctx, cfg.GRPCAddr, logger); err != nil {
		return err
	}
	startHTTPServer(ctx, cfg.HTTPAddr, transport.NewHTTPHandler(transport.NewStatusHandler(logger, svc), minted), logger)

	logger.Info("staking started")
	return svc.Run(ctx)
}

func startDelegationRefresher(
	ctx context.Context,
	cfg config,
	logger *zap.Logger,
	chain *node.Client,
	registry *delegation.Registry,
	auth *delegation.Authorizer,
	staker model.KeyID,
) error {
	reader, err := governance.NewDelegationReader(logger, chain, cfg.DelegationContract)
	if err != nil {
		return err
	}
	delegators := make([]model.KeyID, 0, len(cfg.Delegators))
	for _, addr := range cfg.Delegators {
		id, err := chain.KeyIDOf(addr)
		if err != nil {
			return fmt.Errorf("delegator: %w", err)
		}
		delegators = append(delegators, id)
	}

	refresher := service.NewDelegationRefresher(logger, reader, registry, auth, staker, delegators, 0)
	if err := refresher.Refresh(ctx); err != nil {
		logger.Warn("initial delegation refresh failed", zap.Error(err))
	}
	go func() {
		if err := refresher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("delegation refresher stopped", zap.Error(err))
		}
	}()
	return nil
}

func startGRPCServer(ctx context.Context, addr string, logger *zap.Logger) error {
	server, hs := transport.NewGRPCServer(logger)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	go func() {
		if serveErr := server.Serve(socket); serveErr != nil {
			logger.Error("grpc server failed", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		transport.SetServing(hs, false)
		logger.Info("shutting down gRPC server")
		server.GracefulStop()
	}()
	transport.SetServing(hs, true)
	return nil
}

func startHTTPServer(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting http server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
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
