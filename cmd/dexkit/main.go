// Package main is the entry point for the dexkit pricing and
// transaction-construction engine.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/joho/godotenv"

	pricingapp "github.com/fd1az/dexkit/business/pricing/app"
	pricing "github.com/fd1az/dexkit/business/pricing/domain"
	"github.com/fd1az/dexkit/business/pricing/infra/chainstate"
	txapp "github.com/fd1az/dexkit/business/txbuild/app"
	"github.com/fd1az/dexkit/business/txbuild/domain"
	"github.com/fd1az/dexkit/internal/apm"
	"github.com/fd1az/dexkit/internal/asset"
	"github.com/fd1az/dexkit/internal/config"
	"github.com/fd1az/dexkit/internal/logger"
	"github.com/fd1az/dexkit/internal/metrics"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Path to configuration file")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("dexkit %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(os.Stderr, "received shutdown signal: %v\n", sig)
		cancel()
	}()

	if err := run(ctx, *configPath, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := logger.LevelInfo
	switch cfg.App.LogLevel {
	case "debug":
		logLevel = logger.LevelDebug
	case "warn":
		logLevel = logger.LevelWarn
	case "error":
		logLevel = logger.LevelError
	}
	log := logger.New(os.Stderr, logLevel, cfg.App.Name, nil)

	var traceProvider apm.TraceProvider
	if cfg.Telemetry.Enabled {
		if cfg.Telemetry.ServiceName != "" {
			os.Setenv("OTEL_SERVICE_NAME", cfg.Telemetry.ServiceName)
		}
		if cfg.Telemetry.OTLPEndpoint != "" {
			os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Telemetry.OTLPEndpoint)
		}

		traceProvider = apm.NewTraceProvider(log, apm.WithProvider(apm.ZipkinProvider, log))
		log.Info(ctx, "tracing initialized", "endpoint", cfg.Telemetry.OTLPEndpoint)

		metrics.NewMetricProvider(
			metrics.WithServiceName(cfg.Telemetry.ServiceName),
			metrics.WithProviderConfig(metrics.ProviderCfg{
				Provider: metrics.PrometheusProvider,
			}),
		)

		port := cfg.Telemetry.PrometheusPort
		if port == 0 {
			port = 9090
		}
		go metrics.ServePrometheusMetrics(metrics.WithPort(strconv.Itoa(port)))
		log.Info(ctx, "prometheus metrics server started", "port", port)
	}
	defer func() {
		if traceProvider != nil {
			traceProvider.Stop()
		}
	}()

	if len(args) == 0 {
		return fmt.Errorf("usage: dexkit [flags] quote|build ...")
	}

	switch args[0] {
	case "quote":
		return runQuote(ctx, cfg, log, args[1:])
	case "build":
		return runBuild(ctx, cfg, log, args[1:])
	default:
		return fmt.Errorf("unknown command %q (want quote or build)", args[0])
	}
}

// dialProvider connects to the configured node and wraps it in the
// chain-state provider. Returns nil when no node is configured, which
// build mode tolerates.
func dialProvider(cfg *config.Config, log *logger.Logger) (*chainstate.Provider, error) {
	if cfg.Ethereum.HTTPURL == "" {
		return nil, nil
	}
	client, err := ethclient.Dial(cfg.Ethereum.HTTPURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to node: %w", err)
	}
	return chainstate.NewProvider(client, cfg, log)
}

func runQuote(ctx context.Context, cfg *config.Config, log *logger.Logger, args []string) error {
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	dex := fs.String("dex", "v3", "Protocol version: v2, v3, or v4")
	pool := fs.String("pool", "", "Pair or pool contract address (v2/v3)")
	poolID := fs.String("pool-id", "", "Canonical pool identifier (v4)")
	tokenIn := fs.String("token-in", "", "Input token address")
	tokenOut := fs.String("token-out", "", "Output token address")
	amount := fs.String("amount", "", "Input amount in human units (e.g. 1.5)")
	feePpm := fs.Uint("fee-ppm", 3000, "Pool fee in parts per million (v3/v4)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ver, err := pricing.ParseVersion(*dex)
	if err != nil {
		return err
	}

	provider, err := dialProvider(cfg, log)
	if err != nil {
		return err
	}
	if provider == nil {
		return fmt.Errorf("quote requires ethereum.http_url to be configured")
	}

	inAddr := common.HexToAddress(*tokenIn)
	outAddr := common.HexToAddress(*tokenOut)

	inAsset, err := resolveAsset(ctx, provider, cfg.Ethereum.ChainID, inAddr)
	if err != nil {
		return err
	}
	outAsset, err := resolveAsset(ctx, provider, cfg.Ethereum.ChainID, outAddr)
	if err != nil {
		return err
	}
	amountIn, err := parseHumanAmount(inAsset, *amount)
	if err != nil {
		return err
	}

	v2Fee := pricing.V2Fee{
		Numerator:   cfg.Engine.V2FeeNumerator,
		Denominator: cfg.Engine.V2FeeDenominator,
	}
	svc := pricingapp.NewQuoteService(provider, v2Fee, log)

	quote, err := svc.Quote(ctx, pricingapp.QuoteRequest{
		Version:  ver,
		Pool:     common.HexToAddress(*pool),
		PoolID:   common.HexToHash(*poolID),
		TokenIn:  inAddr,
		TokenOut: outAddr,
		AmountIn: amountIn,
		FeePpm:   uint32(*feePpm),
	})
	if err != nil {
		return err
	}

	return printJSON(map[string]any{
		"amount_in":            asset.NewAmount(inAsset, quote.AmountIn).String(),
		"amount_out":           asset.NewAmount(outAsset, quote.AmountOut).String(),
		"amount_in_raw":        quote.AmountIn.String(),
		"amount_out_raw":       quote.AmountOut.String(),
		"execution_price":      quote.ExecutionPrice.String(),
		"price_impact_percent": quote.PriceImpactPercent.String(),
		"zero_for_one":         quote.ZeroForOne,
	})
}

// resolveAsset maps a quote token to its metadata. The zero address is
// the native-currency sentinel and never hits the chain.
func resolveAsset(ctx context.Context, provider *chainstate.Provider, chainID uint64, token common.Address) (*asset.Asset, error) {
	if token == pricing.NativeCurrency {
		if native, ok := asset.DefaultRegistry().GetNative(chainID); ok {
			return native, nil
		}
		return asset.ETH, nil
	}
	return provider.TokenMetadata(ctx, token)
}

// parseHumanAmount converts a human-unit amount string into raw base
// units using the token's decimals.
func parseHumanAmount(a *asset.Asset, s string) (*big.Int, error) {
	amt, err := asset.Parse(a, s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amt.Raw(), nil
}

func runBuild(ctx context.Context, cfg *config.Config, log *logger.Logger, args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	intentPath := fs.String("intent", "", "Path to intent JSON (\"-\" for stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *intentPath == "" {
		return fmt.Errorf("-intent is required")
	}

	req, err := readBuildRequest(*intentPath)
	if err != nil {
		return err
	}

	provider, err := dialProvider(cfg, log)
	if err != nil {
		return err
	}
	var reader pricingapp.AllowanceReader
	if provider != nil {
		reader = provider
	}

	builder := txapp.NewBuilder(cfg, reader, log)

	steps, err := req.build(ctx, builder)
	if err != nil {
		return err
	}
	return printJSON(steps)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// buildRequest is the flattened JSON envelope build mode accepts. The
// operation field selects which subset of fields is read.
type buildRequest struct {
	Operation string `json:"operation"` // create_pool, increase, decrease, collect, swap
	Version   string `json:"version"`

	TokenA       common.Address `json:"token_a"`
	TokenB       common.Address `json:"token_b"`
	AmountA      *big.Int       `json:"amount_a"`
	AmountB      *big.Int       `json:"amount_b"`
	Fee          uint32         `json:"fee"`
	TickSpacing  int32          `json:"tick_spacing"`
	Hooks        common.Address `json:"hooks"`
	SqrtPriceX96 *big.Int       `json:"sqrt_price_x96"`
	TickLower    int32          `json:"tick_lower"`
	TickUpper    int32          `json:"tick_upper"`

	Position   string   `json:"position"`
	PercentBps int64    `json:"percent_bps"`
	Burn       bool     `json:"burn"`
	Liquidity  *big.Int `json:"liquidity"`

	TokenIn   common.Address `json:"token_in"`
	TokenOut  common.Address `json:"token_out"`
	AmountIn  *big.Int       `json:"amount_in"`
	QuotedOut *big.Int       `json:"quoted_out"`

	Payer       common.Address `json:"payer"`
	Recipient   common.Address `json:"recipient"`
	SlippageBps int64          `json:"slippage_bps"`

	Allowances map[common.Address]*big.Int `json:"allowances"`
}

func readBuildRequest(path string) (*buildRequest, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read intent: %w", err)
	}

	var req buildRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("failed to parse intent: %w", err)
	}
	return &req, nil
}

func (r *buildRequest) positionState() (domain.PositionState, error) {
	pool := pricing.NewPoolKey(r.TokenA, r.TokenB, r.Fee, r.TickSpacing, r.Hooks)
	return domain.PositionState{
		Pool:         pool,
		Liquidity:    r.Liquidity,
		SqrtPriceX96: r.SqrtPriceX96,
		Ticks:        pricing.TickRange{Lower: r.TickLower, Upper: r.TickUpper},
	}, nil
}

func (r *buildRequest) build(ctx context.Context, builder *txapp.Builder) ([]domain.TransactionStep, error) {
	declared := domain.Allowances(r.Allowances)

	switch r.Operation {
	case "create_pool":
		ver, err := pricing.ParseVersion(r.Version)
		if err != nil {
			return nil, err
		}
		return builder.BuildCreatePoolWithLiquidity(ctx, domain.CreatePoolIntent{
			Version:      ver,
			TokenA:       r.TokenA,
			TokenB:       r.TokenB,
			AmountA:      r.AmountA,
			AmountB:      r.AmountB,
			Fee:          r.Fee,
			TickSpacing:  r.TickSpacing,
			Hooks:        r.Hooks,
			SqrtPriceX96: r.SqrtPriceX96,
			Ticks:        pricing.TickRange{Lower: r.TickLower, Upper: r.TickUpper},
			Payer:        r.Payer,
			Recipient:    r.Recipient,
			SlippageBps:  r.SlippageBps,
		}, declared)

	case "increase":
		id, err := domain.ParsePositionIdentifier(r.Position)
		if err != nil {
			return nil, err
		}
		state, err := r.positionState()
		if err != nil {
			return nil, err
		}
		return builder.BuildIncreaseLiquidity(ctx, domain.IncreaseLiquidityIntent{
			Position:    id,
			State:       state,
			Amount0:     r.AmountA,
			Amount1:     r.AmountB,
			Payer:       r.Payer,
			SlippageBps: r.SlippageBps,
		}, declared)

	case "decrease":
		id, err := domain.ParsePositionIdentifier(r.Position)
		if err != nil {
			return nil, err
		}
		state, err := r.positionState()
		if err != nil {
			return nil, err
		}
		return builder.BuildDecreaseLiquidity(ctx, domain.DecreaseLiquidityIntent{
			Position:    id,
			State:       state,
			PercentBps:  r.PercentBps,
			Recipient:   r.Recipient,
			SlippageBps: r.SlippageBps,
			Burn:        r.Burn,
		})

	case "collect":
		id, err := domain.ParsePositionIdentifier(r.Position)
		if err != nil {
			return nil, err
		}
		state, err := r.positionState()
		if err != nil {
			return nil, err
		}
		return builder.BuildCollectFees(ctx, domain.CollectFeesIntent{
			Position:  id,
			State:     state,
			Recipient: r.Recipient,
		})

	case "swap":
		ver, err := pricing.ParseVersion(r.Version)
		if err != nil {
			return nil, err
		}
		return builder.BuildSwap(ctx, domain.SwapIntent{
			Version:     ver,
			TokenIn:     r.TokenIn,
			TokenOut:    r.TokenOut,
			AmountIn:    r.AmountIn,
			Fee:         r.Fee,
			TickSpacing: r.TickSpacing,
			Hooks:       r.Hooks,
			QuotedOut:   r.QuotedOut,
			SlippageBps: r.SlippageBps,
			Payer:       r.Payer,
			Recipient:   r.Recipient,
		}, declared)

	default:
		return nil, fmt.Errorf("unknown operation %q", r.Operation)
	}
}
