package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-network/meridian/x/amm/types"
)

// Swap exchanges amountIn of tokenIn for tokenOut against the pool of the
// pair, at the constant-product price with the fee deducted from the input.
// The full input amount enters the reserve, so the fee rests in the pool for
// liquidity providers. The input transfer must settle before the output
// transfer, and both before any reserve mutation; a failure at any point
// aborts with reserves unchanged.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, tokenIn, tokenOut string, amountIn math.Int) (types.SwapResult, error) {
	if tokenIn == tokenOut {
		return types.SwapResult{}, types.ErrSameToken.Wrap("cannot swap identical tokens")
	}
	if err := types.ValidateAmount("amount_in", amountIn); err != nil {
		return types.SwapResult{}, err
	}

	pool, err := k.GetPoolByTokens(ctx, tokenIn, tokenOut)
	if err != nil {
		return types.SwapResult{}, err
	}

	reserveIn, reserveOut, err := pool.OrientedReserves(tokenIn, tokenOut)
	if err != nil {
		return types.SwapResult{}, err
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return types.SwapResult{}, types.ErrInvalidPoolState.Wrapf("pool %d has no reserves", pool.Id)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.SwapResult{}, err
	}

	amountOut, amountInAfterFee, err := computeSwapOutput(amountIn, reserveIn, reserveOut, params.FeeBps)
	if err != nil {
		return types.SwapResult{}, err
	}

	oldProduct := pool.Product()

	newReserveIn, err := SafeAdd(reserveIn, amountIn)
	if err != nil {
		return types.SwapResult{}, types.ErrOverflow.Wrapf("adding to input reserve: %v", err)
	}
	if newReserveIn.GTE(types.MaxReserveAmount) {
		return types.SwapResult{}, types.ErrInvalidAmount.Wrap("resulting reserve exceeds maximum bound")
	}
	newReserveOut, err := SafeSub(reserveOut, amountOut)
	if err != nil {
		return types.SwapResult{}, types.ErrOverflow.Wrapf("subtracting output reserve: %v", err)
	}

	// Custody choreography: pull the input, then pay the output, then write
	// state. If paying out fails, return the input before aborting.
	coinIn := sdk.NewCoins(sdk.NewCoin(tokenIn, amountIn))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName, coinIn); err != nil {
		return types.SwapResult{}, types.ErrTransferFailed.Wrapf("failed to transfer input tokens: %v", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	coinOut := sdk.NewCoins(sdk.NewCoin(tokenOut, amountOut))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, trader, coinOut); err != nil {
		if revertErr := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, trader, coinIn); revertErr != nil {
			sdkCtx.Logger().Error("failed to revert input transfer after output transfer failure",
				"original_error", err,
				"revert_error", revertErr,
				"trader", trader.String(),
			)
		}
		return types.SwapResult{}, types.ErrTransferFailed.Wrapf("failed to transfer output tokens: %v", err)
	}

	if tokenIn == pool.TokenA {
		pool.ReserveA, pool.ReserveB = newReserveIn, newReserveOut
	} else {
		pool.ReserveA, pool.ReserveB = newReserveOut, newReserveIn
	}

	// Fee revenue accrues to reserves, so the product never decreases.
	if pool.Product().LT(oldProduct) {
		return types.SwapResult{}, types.ErrInvalidPoolState.Wrapf(
			"constant product decreased: %s -> %s", oldProduct, pool.Product())
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return types.SwapResult{}, err
	}

	fee := amountIn.Sub(amountInAfterFee)

	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			sdk.NewAttribute(types.AttributeKeyReserveA, pool.ReserveA.String()),
			sdk.NewAttribute(types.AttributeKeyReserveB, pool.ReserveB.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(sdk.AttributeKeySender, trader.String()),
		),
	})

	if k.metrics != nil {
		poolIDStr := fmt.Sprintf("%d", pool.Id)
		k.metrics.SwapsTotal.WithLabelValues(poolIDStr, tokenIn).Inc()
		k.metrics.SwapVolume.WithLabelValues(poolIDStr, tokenIn).Add(metricValue(amountIn))
		k.metrics.SwapFeesRetained.WithLabelValues(poolIDStr, tokenIn).Add(metricValue(fee))
	}

	return types.SwapResult{
		AmountIn:  amountIn,
		AmountOut: amountOut,
		Fee:       fee,
	}, nil
}

// SimulateSwap prices a swap against current reserves without executing it.
func (k Keeper) SimulateSwap(ctx context.Context, tokenIn, tokenOut string, amountIn math.Int) (math.Int, error) {
	if tokenIn == tokenOut {
		return math.ZeroInt(), types.ErrSameToken.Wrap("cannot swap identical tokens")
	}
	if err := types.ValidateAmount("amount_in", amountIn); err != nil {
		return math.ZeroInt(), err
	}

	pool, err := k.GetPoolByTokens(ctx, tokenIn, tokenOut)
	if err != nil {
		return math.ZeroInt(), err
	}

	reserveIn, reserveOut, err := pool.OrientedReserves(tokenIn, tokenOut)
	if err != nil {
		return math.ZeroInt(), err
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.ZeroInt(), types.ErrInvalidPoolState.Wrapf("pool %d has no reserves", pool.Id)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	amountOut, _, err := computeSwapOutput(amountIn, reserveIn, reserveOut, params.FeeBps)
	return amountOut, err
}

// GetSpotPrice returns reserveOut/reserveIn for the pair, oriented to the
// caller's token order.
func (k Keeper) GetSpotPrice(ctx context.Context, tokenIn, tokenOut string) (math.LegacyDec, error) {
	pool, err := k.GetPoolByTokens(ctx, tokenIn, tokenOut)
	if err != nil {
		return math.LegacyZeroDec(), err
	}

	reserveIn, reserveOut, err := pool.OrientedReserves(tokenIn, tokenOut)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	if reserveIn.IsZero() {
		return math.LegacyZeroDec(), types.ErrInvalidPoolState.Wrap("input reserve is zero")
	}

	return math.LegacyNewDecFromInt(reserveOut).Quo(math.LegacyNewDecFromInt(reserveIn)), nil
}

// computeSwapOutput applies the constant-product formula with the fee taken
// from the input side:
//
//	afterFee = floor(amountIn * (denom - feeBps) / denom)
//	out      = floor(reserveOut * afterFee / (reserveIn + afterFee))
//
// All divisions floor, so rounding always favors the pool. The output must be
// positive and must leave the output reserve positive.
func computeSwapOutput(amountIn, reserveIn, reserveOut, feeBps math.Int) (amountOut, amountInAfterFee math.Int, err error) {
	feeDenom := math.NewInt(types.FeeDenominator)
	if feeBps.IsNil() || feeBps.IsNegative() || feeBps.GTE(feeDenom) {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrapf("fee bps out of range: %s", feeBps)
	}

	amountInAfterFee, err = SafeMulDiv(amountIn, feeDenom.Sub(feeBps), feeDenom)
	if err != nil {
		return math.Int{}, math.Int{}, types.ErrOverflow.Wrapf("applying fee: %v", err)
	}
	if amountInAfterFee.IsZero() {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("input amount too small after fee")
	}

	denominator, err := SafeAdd(reserveIn, amountInAfterFee)
	if err != nil {
		return math.Int{}, math.Int{}, types.ErrOverflow.Wrapf("computing denominator: %v", err)
	}

	amountOut, err = SafeMulDiv(reserveOut, amountInAfterFee, denominator)
	if err != nil {
		return math.Int{}, math.Int{}, types.ErrOverflow.Wrapf("computing output: %v", err)
	}

	if amountOut.IsZero() {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("output amount rounds to zero")
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrapf(
			"output %s would drain reserve %s", amountOut, reserveOut)
	}

	return amountOut, amountInAfterFee, nil
}
