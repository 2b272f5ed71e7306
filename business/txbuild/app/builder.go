// Package app turns validated intents into ordered transaction-step
// sequences. The builder never signs or submits; it encodes exactly the
// calls a wallet must send, in the order it must send them.
package app

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	pricingapp "github.com/fd1az/dexkit/business/pricing/app"
	pricing "github.com/fd1az/dexkit/business/pricing/domain"
	"github.com/fd1az/dexkit/business/txbuild/domain"
	"github.com/fd1az/dexkit/business/txbuild/infra/ethabi"
	"github.com/fd1az/dexkit/internal/apperror"
	"github.com/fd1az/dexkit/internal/config"
	"github.com/fd1az/dexkit/internal/logger"
)

// maxUint128 is the collect-all sentinel for v3 collect amounts.
var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Builder constructs unsigned transaction sequences for pool creation,
// position management, and swaps across protocol versions.
type Builder struct {
	contracts config.ContractsConfig
	spacings  pricing.TickSpacingTable

	defaultSlippageBps int64
	deadlineWindow     time.Duration

	// allowances is optional; when set, declared allowances absent from
	// an intent are read live before deciding on an approval step.
	allowances pricingapp.AllowanceReader
	log        logger.LoggerInterface
	now        func() time.Time
}

// NewBuilder creates a Builder from deployment configuration. reader
// may be nil, in which case only caller-declared allowances are
// consulted.
func NewBuilder(cfg *config.Config, reader pricingapp.AllowanceReader, log logger.LoggerInterface) *Builder {
	return &Builder{
		contracts:          cfg.Contracts,
		spacings:           pricing.NewTickSpacingTable(cfg.Engine.TickSpacings(), int32(cfg.Engine.DynamicFeeSpacing)),
		defaultSlippageBps: int64(cfg.Engine.DefaultSlippageBps),
		deadlineWindow:     cfg.Engine.DeadlineWindow,
		allowances:         reader,
		log:                log,
		now:                time.Now,
	}
}

// BuildCreatePoolWithLiquidity returns the steps that create a pool (if
// absent) and seed it with the intent's amounts. Token order in the
// intent is the caller's; canonical ordering happens here and amounts
// follow their tokens through the reorder.
func (b *Builder) BuildCreatePoolWithLiquidity(ctx context.Context, in domain.CreatePoolIntent, declared domain.Allowances) ([]domain.TransactionStep, error) {
	bps, err := b.slippage(in.SlippageBps)
	if err != nil {
		return nil, err
	}
	if err := positiveAmount("amountA", in.AmountA); err != nil {
		return nil, err
	}
	if err := positiveAmount("amountB", in.AmountB); err != nil {
		return nil, err
	}

	// Canonicalize: amounts travel with their tokens.
	token0, token1 := pricing.SortCurrencies(in.TokenA, in.TokenB)
	amount0, amount1 := in.AmountA, in.AmountB
	if token0 != in.TokenA {
		amount0, amount1 = in.AmountB, in.AmountA
	}

	deadline := domain.DeadlineFrom(b.now(), b.deadlineWindow)

	switch in.Version {
	case pricing.V2:
		return b.createV2(ctx, in, token0, token1, amount0, amount1, bps, deadline, declared)
	case pricing.V3:
		return b.createV3(ctx, in, token0, token1, amount0, amount1, bps, deadline, declared)
	case pricing.V4:
		return b.createV4(ctx, in, token0, token1, amount0, amount1, bps, deadline, declared)
	default:
		return nil, apperror.Unsupported(apperror.CodeUnsupportedVersion, in.Version.String())
	}
}

func (b *Builder) createV2(ctx context.Context, in domain.CreatePoolIntent, token0, token1 common.Address, amount0, amount1 *big.Int, bps int64, deadline *big.Int, declared domain.Allowances) ([]domain.TransactionStep, error) {
	router := b.contracts.V2RouterAddress()

	steps, err := b.approvalSteps(ctx, in.Payer, router, declared,
		funding{token0, amount0}, funding{token1, amount1})
	if err != nil {
		return nil, err
	}

	data, err := ethabi.PackV2AddLiquidity(ethabi.V2AddLiquidityParams{
		TokenA:         token0,
		TokenB:         token1,
		AmountADesired: amount0,
		AmountBDesired: amount1,
		AmountAMin:     domain.MinAmountAfterSlippage(amount0, bps),
		AmountBMin:     domain.MinAmountAfterSlippage(amount1, bps),
		To:             in.Recipient,
		Deadline:       deadline,
	})
	if err != nil {
		return nil, err
	}

	steps = append(steps, domain.NewStep(domain.StepCreatePair, router, data, nil))
	b.logBuild(ctx, "create_pool", in.Version, steps)
	return steps, nil
}

func (b *Builder) createV3(ctx context.Context, in domain.CreatePoolIntent, token0, token1 common.Address, amount0, amount1 *big.Int, bps int64, deadline *big.Int, declared domain.Allowances) ([]domain.TransactionStep, error) {
	manager := b.contracts.V3PositionManagerAddress()

	if err := positiveAmount("sqrtPriceX96", in.SqrtPriceX96); err != nil {
		return nil, err
	}
	ticks, err := b.resolveTicks(in.Fee, in.TickSpacing, in.Ticks)
	if err != nil {
		return nil, err
	}

	steps, err := b.approvalSteps(ctx, in.Payer, manager, declared,
		funding{token0, amount0}, funding{token1, amount1})
	if err != nil {
		return nil, err
	}

	initData, err := ethabi.PackV3CreatePool(token0, token1, in.Fee, in.SqrtPriceX96)
	if err != nil {
		return nil, err
	}
	steps = append(steps, domain.NewStep(domain.StepInitialize, manager, initData, nil))

	mintData, err := ethabi.PackV3Mint(ethabi.V3MintParams{
		Token0:         token0,
		Token1:         token1,
		Fee:            big.NewInt(int64(in.Fee)),
		TickLower:      big.NewInt(int64(ticks.Lower)),
		TickUpper:      big.NewInt(int64(ticks.Upper)),
		Amount0Desired: amount0,
		Amount1Desired: amount1,
		Amount0Min:     domain.MinAmountAfterSlippage(amount0, bps),
		Amount1Min:     domain.MinAmountAfterSlippage(amount1, bps),
		Recipient:      in.Recipient,
		Deadline:       deadline,
	})
	if err != nil {
		return nil, err
	}
	steps = append(steps, domain.NewStep(domain.StepMint, manager, mintData, nil))

	b.logBuild(ctx, "create_pool", in.Version, steps)
	return steps, nil
}

func (b *Builder) createV4(ctx context.Context, in domain.CreatePoolIntent, token0, token1 common.Address, amount0, amount1 *big.Int, bps int64, deadline *big.Int, declared domain.Allowances) ([]domain.TransactionStep, error) {
	manager := b.contracts.V4PositionManagerAddress()

	if err := positiveAmount("sqrtPriceX96", in.SqrtPriceX96); err != nil {
		return nil, err
	}
	ticks, err := b.resolveTicks(in.Fee, in.TickSpacing, in.Ticks)
	if err != nil {
		return nil, err
	}

	spacing := in.TickSpacing
	if spacing == 0 {
		spacing = b.spacings.SpacingForFee(in.Fee)
	}
	key := pricing.NewPoolKey(token0, token1, in.Fee, spacing, in.Hooks)

	// v4 pulls funds through Permit2.
	steps, err := b.approvalSteps(ctx, in.Payer, b.contracts.Permit2Address(), declared,
		funding{token0, amount0}, funding{token1, amount1})
	if err != nil {
		return nil, err
	}

	initData, err := ethabi.PackV4InitializePool(key, in.SqrtPriceX96)
	if err != nil {
		return nil, err
	}
	steps = append(steps, domain.NewStep(domain.StepInitialize, manager, initData, nil))

	liquidity := pricing.LiquidityForAmounts(in.SqrtPriceX96,
		pricing.TickToSqrtPrice(ticks.Lower), pricing.TickToSqrtPrice(ticks.Upper),
		amount0, amount1)
	if liquidity.Sign() <= 0 {
		return nil, apperror.Validation(apperror.CodeInvalidAmount, "amounts produce zero liquidity")
	}

	plan := &ethabi.Plan{}
	if err := plan.MintPosition(key, ticks, liquidity,
		domain.MaxAmountAfterSlippage(amount0, bps),
		domain.MaxAmountAfterSlippage(amount1, bps),
		in.Recipient, nil); err != nil {
		return nil, err
	}
	if err := plan.SettlePair(key.Currency0, key.Currency1); err != nil {
		return nil, err
	}

	mintData, err := ethabi.PackV4ModifyLiquidities(plan, deadline)
	if err != nil {
		return nil, err
	}
	steps = append(steps, domain.NewStep(domain.StepMint, manager, mintData, nil))

	b.logBuild(ctx, "create_pool", in.Version, steps)
	return steps, nil
}

// BuildIncreaseLiquidity returns the steps that add funds to an
// existing position.
func (b *Builder) BuildIncreaseLiquidity(ctx context.Context, in domain.IncreaseLiquidityIntent, declared domain.Allowances) ([]domain.TransactionStep, error) {
	bps, err := b.slippage(in.SlippageBps)
	if err != nil {
		return nil, err
	}
	if err := positiveAmount("amount0", in.Amount0); err != nil {
		return nil, err
	}
	if err := positiveAmount("amount1", in.Amount1); err != nil {
		return nil, err
	}

	deadline := domain.DeadlineFrom(b.now(), b.deadlineWindow)

	switch in.Position.Version {
	case pricing.V3:
		manager := b.contracts.V3PositionManagerAddress()
		steps, err := b.approvalSteps(ctx, in.Payer, manager, declared,
			funding{in.State.Pool.Currency0, in.Amount0},
			funding{in.State.Pool.Currency1, in.Amount1})
		if err != nil {
			return nil, err
		}

		data, err := ethabi.PackV3IncreaseLiquidity(ethabi.V3IncreaseParams{
			TokenId:        in.Position.TokenID,
			Amount0Desired: in.Amount0,
			Amount1Desired: in.Amount1,
			Amount0Min:     domain.MinAmountAfterSlippage(in.Amount0, bps),
			Amount1Min:     domain.MinAmountAfterSlippage(in.Amount1, bps),
			Deadline:       deadline,
		})
		if err != nil {
			return nil, err
		}
		steps = append(steps, domain.NewStep(domain.StepIncrease, manager, data, nil))
		b.logBuild(ctx, "increase_liquidity", in.Position.Version, steps)
		return steps, nil

	case pricing.V4:
		manager := b.contracts.V4PositionManagerAddress()
		steps, err := b.approvalSteps(ctx, in.Payer, b.contracts.Permit2Address(), declared,
			funding{in.State.Pool.Currency0, in.Amount0},
			funding{in.State.Pool.Currency1, in.Amount1})
		if err != nil {
			return nil, err
		}

		liquidity := pricing.LiquidityForAmounts(in.State.SqrtPriceX96,
			pricing.TickToSqrtPrice(in.State.Ticks.Lower), pricing.TickToSqrtPrice(in.State.Ticks.Upper),
			in.Amount0, in.Amount1)
		if liquidity.Sign() <= 0 {
			return nil, apperror.Validation(apperror.CodeInvalidAmount, "amounts produce zero liquidity")
		}

		plan := &ethabi.Plan{}
		if err := plan.IncreaseLiquidity(in.Position.TokenID, liquidity,
			domain.MaxAmountAfterSlippage(in.Amount0, bps),
			domain.MaxAmountAfterSlippage(in.Amount1, bps), nil); err != nil {
			return nil, err
		}
		if err := plan.SettlePair(in.State.Pool.Currency0, in.State.Pool.Currency1); err != nil {
			return nil, err
		}

		data, err := ethabi.PackV4ModifyLiquidities(plan, deadline)
		if err != nil {
			return nil, err
		}
		steps = append(steps, domain.NewStep(domain.StepIncrease, manager, data, nil))
		b.logBuild(ctx, "increase_liquidity", in.Position.Version, steps)
		return steps, nil

	default:
		return nil, apperror.Unsupported(apperror.CodeUnsupportedVersion, in.Position.Version.String())
	}
}

// BuildDecreaseLiquidity returns the steps that remove a fraction of a
// position and pay out the withdrawn principal. Minimum-amount bounds
// are computed from the position snapshot, so partial withdrawals carry
// real slippage protection instead of zero minimums.
func (b *Builder) BuildDecreaseLiquidity(ctx context.Context, in domain.DecreaseLiquidityIntent) ([]domain.TransactionStep, error) {
	bps, err := b.slippage(in.SlippageBps)
	if err != nil {
		return nil, err
	}
	if in.PercentBps <= 0 || in.PercentBps > domain.BpsDenominator {
		return nil, apperror.Validation(apperror.CodeInvalidPercentage,
			fmt.Sprintf("percent bps out of range: %d", in.PercentBps))
	}
	if err := positiveAmount("position liquidity", in.State.Liquidity); err != nil {
		return nil, err
	}
	if in.Burn && in.PercentBps != domain.BpsDenominator {
		return nil, apperror.Validation(apperror.CodeInvalidPercentage, "burn requires a full withdrawal")
	}

	liquidityDelta := new(big.Int).Mul(in.State.Liquidity, big.NewInt(in.PercentBps))
	liquidityDelta.Quo(liquidityDelta, big.NewInt(domain.BpsDenominator))
	if liquidityDelta.Sign() <= 0 {
		return nil, apperror.Validation(apperror.CodeInvalidAmount, "withdrawal rounds to zero liquidity")
	}

	expected0, expected1 := pricing.AmountsForLiquidity(in.State.SqrtPriceX96,
		pricing.TickToSqrtPrice(in.State.Ticks.Lower), pricing.TickToSqrtPrice(in.State.Ticks.Upper),
		liquidityDelta)
	min0 := domain.MinAmountAfterSlippage(expected0, bps)
	min1 := domain.MinAmountAfterSlippage(expected1, bps)

	deadline := domain.DeadlineFrom(b.now(), b.deadlineWindow)

	switch in.Position.Version {
	case pricing.V3:
		manager := b.contracts.V3PositionManagerAddress()

		decData, err := ethabi.PackV3DecreaseLiquidity(ethabi.V3DecreaseParams{
			TokenId:    in.Position.TokenID,
			Liquidity:  liquidityDelta,
			Amount0Min: min0,
			Amount1Min: min1,
			Deadline:   deadline,
		})
		if err != nil {
			return nil, err
		}
		steps := []domain.TransactionStep{domain.NewStep(domain.StepDecrease, manager, decData, nil)}

		// Withdrawn principal lands in tokensOwed; collect moves it out.
		collectData, err := ethabi.PackV3Collect(ethabi.V3CollectParams{
			TokenId:    in.Position.TokenID,
			Recipient:  in.Recipient,
			Amount0Max: maxUint128,
			Amount1Max: maxUint128,
		})
		if err != nil {
			return nil, err
		}
		steps = append(steps, domain.NewStep(domain.StepCollect, manager, collectData, nil))

		if in.Burn {
			burnData, err := ethabi.PackV3Burn(in.Position.TokenID)
			if err != nil {
				return nil, err
			}
			steps = append(steps, domain.NewStep(domain.StepBurn, manager, burnData, nil))
		}
		b.logBuild(ctx, "decrease_liquidity", in.Position.Version, steps)
		return steps, nil

	case pricing.V4:
		manager := b.contracts.V4PositionManagerAddress()
		plan := &ethabi.Plan{}

		if in.Burn {
			if err := plan.BurnPosition(in.Position.TokenID, min0, min1, nil); err != nil {
				return nil, err
			}
		} else {
			if err := plan.DecreaseLiquidity(in.Position.TokenID, liquidityDelta, min0, min1, nil); err != nil {
				return nil, err
			}
		}
		if err := plan.TakePair(in.State.Pool.Currency0, in.State.Pool.Currency1, in.Recipient); err != nil {
			return nil, err
		}

		data, err := ethabi.PackV4ModifyLiquidities(plan, deadline)
		if err != nil {
			return nil, err
		}
		kind := domain.StepDecrease
		if in.Burn {
			kind = domain.StepBurn
		}
		steps := []domain.TransactionStep{domain.NewStep(kind, manager, data, nil)}
		b.logBuild(ctx, "decrease_liquidity", in.Position.Version, steps)
		return steps, nil

	default:
		return nil, apperror.Unsupported(apperror.CodeUnsupportedVersion, in.Position.Version.String())
	}
}

// BuildCollectFees returns the steps that claim accrued fees without
// touching principal. The sequence is valid even when nothing has
// accrued; it simply transfers zero.
func (b *Builder) BuildCollectFees(ctx context.Context, in domain.CollectFeesIntent) ([]domain.TransactionStep, error) {
	deadline := domain.DeadlineFrom(b.now(), b.deadlineWindow)

	switch in.Position.Version {
	case pricing.V3:
		manager := b.contracts.V3PositionManagerAddress()
		data, err := ethabi.PackV3Collect(ethabi.V3CollectParams{
			TokenId:    in.Position.TokenID,
			Recipient:  in.Recipient,
			Amount0Max: maxUint128,
			Amount1Max: maxUint128,
		})
		if err != nil {
			return nil, err
		}
		steps := []domain.TransactionStep{domain.NewStep(domain.StepCollect, manager, data, nil)}
		b.logBuild(ctx, "collect_fees", in.Position.Version, steps)
		return steps, nil

	case pricing.V4:
		// v4 has no dedicated collect: decreasing by zero liquidity
		// credits accrued fees, and the take pays them out.
		manager := b.contracts.V4PositionManagerAddress()
		plan := &ethabi.Plan{}
		zero := new(big.Int)
		if err := plan.DecreaseLiquidity(in.Position.TokenID, zero, zero, zero, nil); err != nil {
			return nil, err
		}
		if err := plan.TakePair(in.State.Pool.Currency0, in.State.Pool.Currency1, in.Recipient); err != nil {
			return nil, err
		}

		data, err := ethabi.PackV4ModifyLiquidities(plan, deadline)
		if err != nil {
			return nil, err
		}
		steps := []domain.TransactionStep{domain.NewStep(domain.StepCollect, manager, data, nil)}
		b.logBuild(ctx, "collect_fees", in.Position.Version, steps)
		return steps, nil

	default:
		return nil, apperror.Unsupported(apperror.CodeUnsupportedVersion, in.Position.Version.String())
	}
}

// BuildSwap returns the steps for an exact-input swap. The minimum
// acceptable output is derived from the quoted amount and the slippage
// tolerance.
func (b *Builder) BuildSwap(ctx context.Context, in domain.SwapIntent, declared domain.Allowances) ([]domain.TransactionStep, error) {
	bps, err := b.slippage(in.SlippageBps)
	if err != nil {
		return nil, err
	}
	if err := positiveAmount("amountIn", in.AmountIn); err != nil {
		return nil, err
	}

	minOut := domain.MinAmountAfterSlippage(in.QuotedOut, bps)
	deadline := domain.DeadlineFrom(b.now(), b.deadlineWindow)

	switch in.Version {
	case pricing.V2:
		router := b.contracts.V2RouterAddress()
		steps, err := b.approvalSteps(ctx, in.Payer, router, declared, funding{in.TokenIn, in.AmountIn})
		if err != nil {
			return nil, err
		}

		data, err := ethabi.PackV2SwapExactTokensForTokens(in.AmountIn, minOut,
			[]common.Address{in.TokenIn, in.TokenOut}, in.Recipient, deadline)
		if err != nil {
			return nil, err
		}
		steps = append(steps, domain.NewStep(domain.StepSwap, router, data, nil))
		b.logBuild(ctx, "swap", in.Version, steps)
		return steps, nil

	case pricing.V3:
		router := b.contracts.V3SwapRouterAddress()
		steps, err := b.approvalSteps(ctx, in.Payer, router, declared, funding{in.TokenIn, in.AmountIn})
		if err != nil {
			return nil, err
		}

		data, err := ethabi.PackV3ExactInputSingle(ethabi.V3SwapParams{
			TokenIn:           in.TokenIn,
			TokenOut:          in.TokenOut,
			Fee:               big.NewInt(int64(in.Fee)),
			Recipient:         in.Recipient,
			Deadline:          deadline,
			AmountIn:          in.AmountIn,
			AmountOutMinimum:  minOut,
			SqrtPriceLimitX96: new(big.Int),
		})
		if err != nil {
			return nil, err
		}
		steps = append(steps, domain.NewStep(domain.StepSwap, router, data, nil))
		b.logBuild(ctx, "swap", in.Version, steps)
		return steps, nil

	case pricing.V4:
		router := b.contracts.UniversalRouterAddress()
		steps, err := b.approvalSteps(ctx, in.Payer, b.contracts.Permit2Address(), declared, funding{in.TokenIn, in.AmountIn})
		if err != nil {
			return nil, err
		}

		spacing := in.TickSpacing
		if spacing == 0 {
			spacing = b.spacings.SpacingForFee(in.Fee)
		}
		key := pricing.NewPoolKey(in.TokenIn, in.TokenOut, in.Fee, spacing, in.Hooks)
		zeroForOne := in.TokenIn == key.Currency0

		plan := &ethabi.Plan{}
		if err := plan.SwapExactInSingle(key, zeroForOne, in.AmountIn, minOut, nil); err != nil {
			return nil, err
		}
		if err := plan.SettleAll(in.TokenIn, in.AmountIn); err != nil {
			return nil, err
		}
		if err := plan.TakeAll(in.TokenOut, minOut); err != nil {
			return nil, err
		}

		data, err := ethabi.PackUniversalRouterV4Swap(plan, deadline)
		if err != nil {
			return nil, err
		}
		steps = append(steps, domain.NewStep(domain.StepSwap, router, data, nil))
		b.logBuild(ctx, "swap", in.Version, steps)
		return steps, nil

	default:
		return nil, apperror.Unsupported(apperror.CodeUnsupportedVersion, in.Version.String())
	}
}

type funding struct {
	token  common.Address
	amount *big.Int
}

// approvalSteps prepends one approval per token whose allowance toward
// spender falls short of the required amount. Native currency needs no
// approval.
func (b *Builder) approvalSteps(ctx context.Context, payer common.Address, spender common.Address, declared domain.Allowances, needs ...funding) ([]domain.TransactionStep, error) {
	var steps []domain.TransactionStep
	for _, n := range needs {
		if n.token == pricing.NativeCurrency {
			continue
		}

		covered, known := b.allowanceCovers(ctx, payer, spender, declared, n)
		if !known || covered {
			continue
		}

		data, err := ethabi.PackApprove(spender, n.amount)
		if err != nil {
			return nil, err
		}
		steps = append(steps, domain.NewStep(domain.StepApprove, n.token, data, nil))
	}
	return steps, nil
}

// allowanceCovers resolves the effective allowance for one funding leg.
// The declared map wins; a live reader fills gaps; with neither, the
// allowance is unknown and no approval is emitted.
func (b *Builder) allowanceCovers(ctx context.Context, payer, spender common.Address, declared domain.Allowances, n funding) (covered, known bool) {
	if declared != nil {
		return declared.Covers(n.token, n.amount), true
	}
	if b.allowances == nil || payer == (common.Address{}) {
		return false, false
	}
	have, err := b.allowances.Allowance(ctx, n.token, payer, spender)
	if err != nil {
		b.logWarn(ctx, "allowance read failed", n.token, err)
		return false, false
	}
	return have.Cmp(n.amount) >= 0, true
}

func (b *Builder) slippage(bps int64) (int64, error) {
	if bps == 0 {
		bps = b.defaultSlippageBps
	}
	if err := domain.ValidateBps(bps); err != nil {
		return 0, err
	}
	return bps, nil
}

// resolveTicks fills in full range when the intent leaves ticks zero,
// then validates ordering and spacing alignment.
func (b *Builder) resolveTicks(fee uint32, spacingOverride int32, ticks pricing.TickRange) (pricing.TickRange, error) {
	spacing := spacingOverride
	if spacing == 0 {
		spacing = b.spacings.SpacingForFee(fee)
	}

	if ticks == (pricing.TickRange{}) {
		return pricing.FullRangeTicks(spacing), nil
	}
	if ticks.Lower >= ticks.Upper {
		return pricing.TickRange{}, apperror.Validation(apperror.CodeInvalidTickRange,
			fmt.Sprintf("lower %d not below upper %d", ticks.Lower, ticks.Upper))
	}
	if ticks.Lower < pricing.MinTick || ticks.Upper > pricing.MaxTick {
		return pricing.TickRange{}, apperror.Validation(apperror.CodeInvalidTickRange,
			fmt.Sprintf("[%d, %d] outside usable range", ticks.Lower, ticks.Upper))
	}
	if spacing > 0 && (ticks.Lower%spacing != 0 || ticks.Upper%spacing != 0) {
		return pricing.TickRange{}, apperror.Validation(apperror.CodeInvalidTickRange,
			fmt.Sprintf("[%d, %d] not aligned to spacing %d", ticks.Lower, ticks.Upper, spacing))
	}
	return ticks, nil
}

func positiveAmount(field string, v *big.Int) error {
	if v == nil || v.Sign() <= 0 {
		return apperror.Validation(apperror.CodeInvalidAmount, field+" must be positive")
	}
	return nil
}

func (b *Builder) logBuild(ctx context.Context, op string, version pricing.Version, steps []domain.TransactionStep) {
	if b.log == nil {
		return
	}
	b.log.Debug(ctx, "transaction sequence built",
		"operation", op,
		"version", version.String(),
		"steps", len(steps),
	)
}

func (b *Builder) logWarn(ctx context.Context, msg string, token common.Address, err error) {
	if b.log == nil {
		return
	}
	b.log.Warn(ctx, msg, "token", token.Hex(), "error", err.Error())
}
