// Package chainstate implements the SnapshotProvider and AllowanceReader
// ports against live contracts over JSON-RPC. All calls go through a
// rate limiter and a circuit breaker; failures surface as structured
// errors so quoting can degrade per pool instead of crashing.
package chainstate

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/fd1az/dexkit/business/pricing/app"
	"github.com/fd1az/dexkit/business/pricing/domain"
	"github.com/fd1az/dexkit/internal/apm"
	"github.com/fd1az/dexkit/internal/apperror"
	"github.com/fd1az/dexkit/internal/asset"
	"github.com/fd1az/dexkit/internal/circuitbreaker"
	"github.com/fd1az/dexkit/internal/config"
	"github.com/fd1az/dexkit/internal/logger"
	"github.com/fd1az/dexkit/internal/ratelimit"
)

const (
	tracerName = "chainstate"
	meterName  = "chainstate"
)

// Ensure Provider implements both ports.
var (
	_ app.SnapshotProvider = (*Provider)(nil)
	_ app.AllowanceReader  = (*Provider)(nil)
)

// providerMetrics holds OTEL metric instruments.
type providerMetrics struct {
	callsTotal  metric.Int64Counter
	callLatency metric.Float64Histogram
	callErrors  metric.Int64Counter
}

// Provider reads pool and token state from an Ethereum node.
type Provider struct {
	client    *ethclient.Client
	stateView common.Address
	chainID   uint64

	erc20ABI     abi.ABI
	pairABI      abi.ABI
	poolABI      abi.ABI
	stateViewABI abi.ABI

	registry *asset.Registry
	tokens   sync.Map // common.Address -> *asset.Asset

	limiter *ratelimit.Limiter
	cb      *circuitbreaker.CircuitBreaker[[]byte]
	logger  logger.LoggerInterface

	tracer  apm.Tracer
	metrics *providerMetrics
}

// NewProvider creates a chain-state provider. Pool snapshots for v4 are
// read from the state-view contract in cfg; v2 and v3 read the pool
// contracts directly.
func NewProvider(client *ethclient.Client, cfg *config.Config, log logger.LoggerInterface) (*Provider, error) {
	p := &Provider{
		client:    client,
		stateView: cfg.Contracts.V4StateViewAddress(),
		chainID:   cfg.Ethereum.ChainID,
		registry:  asset.DefaultRegistry(),
		limiter:   ratelimit.New(cfg.Ethereum.RequestsPerMinute),
		logger:    log,
		tracer:    apm.NewTracer(tracerName),
	}

	for _, c := range []struct {
		name string
		json string
		dst  *abi.ABI
	}{
		{"erc20", ERC20ABI, &p.erc20ABI},
		{"v2 pair", V2PairABI, &p.pairABI},
		{"v3 pool", V3PoolABI, &p.poolABI},
		{"v4 state view", V4StateViewABI, &p.stateViewABI},
	} {
		parsed, err := abi.JSON(strings.NewReader(c.json))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s ABI: %w", c.name, err)
		}
		*c.dst = parsed
	}

	cbCfg := circuitbreaker.DefaultConfig("chainstate")
	p.cb = circuitbreaker.New[[]byte](cbCfg)

	if err := p.initMetrics(); err != nil {
		return nil, fmt.Errorf("failed to init metrics: %w", err)
	}

	return p, nil
}

func (p *Provider) initMetrics() error {
	meter := otel.Meter(meterName)
	var err error

	p.metrics = &providerMetrics{}

	p.metrics.callsTotal, err = meter.Int64Counter(
		"chainstate_calls_total",
		metric.WithDescription("Total contract read calls"),
	)
	if err != nil {
		return err
	}

	p.metrics.callLatency, err = meter.Float64Histogram(
		"chainstate_call_latency_ms",
		metric.WithDescription("Contract read latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	p.metrics.callErrors, err = meter.Int64Counter(
		"chainstate_call_errors_total",
		metric.WithDescription("Total contract read errors"),
	)
	if err != nil {
		return err
	}

	return nil
}

// FetchV2State reads reserves and token0 from a pair contract.
func (p *Provider) FetchV2State(ctx context.Context, pair common.Address) (domain.V2PoolState, error) {
	ctx, span := p.tracer.StartSpanFromContext(ctx, "chainstate.fetch_v2_state",
		trace.WithAttributes(attribute.String("pair", pair.Hex())),
	)
	defer span.End()

	reservesOut, err := p.call(ctx, p.pairABI, pair, "getReserves")
	if err != nil {
		span.NoticeError(err)
		return domain.V2PoolState{}, err
	}
	token0Out, err := p.call(ctx, p.pairABI, pair, "token0")
	if err != nil {
		span.NoticeError(err)
		return domain.V2PoolState{}, err
	}

	state := domain.V2PoolState{
		Reserve0: reservesOut[0].(*big.Int),
		Reserve1: reservesOut[1].(*big.Int),
		Token0:   token0Out[0].(common.Address),
	}
	span.SetStatus(codes.Ok, "snapshot read")
	return state, nil
}

// FetchV3State reads slot0 and in-range liquidity from a pool contract.
func (p *Provider) FetchV3State(ctx context.Context, pool common.Address) (domain.ConcentratedPoolState, error) {
	ctx, span := p.tracer.StartSpanFromContext(ctx, "chainstate.fetch_v3_state",
		trace.WithAttributes(attribute.String("pool", pool.Hex())),
	)
	defer span.End()

	slot0Out, err := p.call(ctx, p.poolABI, pool, "slot0")
	if err != nil {
		span.NoticeError(err)
		return domain.ConcentratedPoolState{}, err
	}
	liqOut, err := p.call(ctx, p.poolABI, pool, "liquidity")
	if err != nil {
		span.NoticeError(err)
		return domain.ConcentratedPoolState{}, err
	}

	state := domain.ConcentratedPoolState{
		SqrtPriceX96: slot0Out[0].(*big.Int),
		Tick:         int32(slot0Out[1].(*big.Int).Int64()),
		Liquidity:    liqOut[0].(*big.Int),
	}
	span.SetStatus(codes.Ok, "snapshot read")
	return state, nil
}

// FetchV4State reads sqrt price and liquidity for a pool id from the
// state-view contract.
func (p *Provider) FetchV4State(ctx context.Context, poolID common.Hash) (domain.ConcentratedPoolState, error) {
	ctx, span := p.tracer.StartSpanFromContext(ctx, "chainstate.fetch_v4_state",
		trace.WithAttributes(attribute.String("pool_id", poolID.Hex())),
	)
	defer span.End()

	var id [32]byte
	copy(id[:], poolID.Bytes())

	slot0Out, err := p.call(ctx, p.stateViewABI, p.stateView, "getSlot0", id)
	if err != nil {
		span.NoticeError(err)
		return domain.ConcentratedPoolState{}, err
	}
	liqOut, err := p.call(ctx, p.stateViewABI, p.stateView, "getLiquidity", id)
	if err != nil {
		span.NoticeError(err)
		return domain.ConcentratedPoolState{}, err
	}

	state := domain.ConcentratedPoolState{
		SqrtPriceX96: slot0Out[0].(*big.Int),
		Tick:         int32(slot0Out[1].(*big.Int).Int64()),
		Liquidity:    liqOut[0].(*big.Int),
	}
	span.SetStatus(codes.Ok, "snapshot read")
	return state, nil
}

// TokenMetadata resolves a token's decimals and symbol, preferring the
// static registry and caching contract reads.
func (p *Provider) TokenMetadata(ctx context.Context, token common.Address) (*asset.Asset, error) {
	if a, ok := p.registry.GetToken(p.chainID, token); ok {
		return a, nil
	}
	if cached, ok := p.tokens.Load(token); ok {
		return cached.(*asset.Asset), nil
	}

	ctx, span := p.tracer.StartSpanFromContext(ctx, "chainstate.token_metadata",
		trace.WithAttributes(attribute.String("token", token.Hex())),
	)
	defer span.End()

	decOut, err := p.call(ctx, p.erc20ABI, token, "decimals")
	if err != nil {
		span.NoticeError(err)
		return nil, err
	}
	symOut, err := p.call(ctx, p.erc20ABI, token, "symbol")
	if err != nil {
		span.NoticeError(err)
		return nil, err
	}

	a := asset.NewAsset(
		asset.NewTokenAssetID(p.chainID, token),
		symOut[0].(string),
		decOut[0].(uint8),
	)
	p.tokens.Store(token, a)

	span.SetStatus(codes.Ok, "metadata read")
	return a, nil
}

// Allowance reads the on-record ERC20 allowance owner granted spender.
func (p *Provider) Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error) {
	out, err := p.call(ctx, p.erc20ABI, token, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

// call packs, rate-limits, executes through the circuit breaker, and
// unpacks a read-only contract call.
func (p *Provider) call(ctx context.Context, contractABI abi.ABI, to common.Address, method string, args ...any) ([]any, error) {
	callData, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeEncodingFailed,
			fmt.Sprintf("pack %s", method), err)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, apperror.External(apperror.CodeRateLimitExceeded, "rate limiter wait", err)
	}

	start := time.Now()
	p.metrics.callsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("method", method)))

	raw, err := p.cb.Execute(func() ([]byte, error) {
		return p.client.CallContract(ctx, ethereum.CallMsg{
			To:   &to,
			Data: callData,
		}, nil)
	})

	p.metrics.callLatency.Record(ctx, float64(time.Since(start).Milliseconds()),
		metric.WithAttributes(attribute.String("method", method)))

	if err != nil {
		p.metrics.callErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("method", method)))
		p.logger.Warn(ctx, "contract read failed",
			"method", method,
			"contract", to.Hex(),
			"error", err.Error(),
		)
		return nil, apperror.External(apperror.CodeContractCallFailed,
			fmt.Sprintf("%s on %s", method, to.Hex()), err)
	}

	outputs, err := contractABI.Unpack(method, raw)
	if err != nil {
		return nil, apperror.External(apperror.CodeContractCallFailed,
			fmt.Sprintf("decode %s result", method), err)
	}
	return outputs, nil
}
