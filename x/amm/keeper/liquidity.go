package keeper

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-network/meridian/x/amm/types"
)

// GetLiquidity retrieves a provider's share balance in a pool. A missing
// record reads as zero.
func (k Keeper) GetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress) (math.Int, error) {
	store := k.getStore(ctx)
	bz := store.Get(LiquidityKey(poolID, provider))
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		return math.ZeroInt(), err
	}
	return shares, nil
}

// SetLiquidity sets a provider's share balance in a pool. A zero balance
// deletes the record.
func (k Keeper) SetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress, shares math.Int) error {
	store := k.getStore(ctx)
	if shares.IsZero() {
		store.Delete(LiquidityKey(poolID, provider))
		return nil
	}

	bz, err := shares.Marshal()
	if err != nil {
		return err
	}
	store.Set(LiquidityKey(poolID, provider), bz)
	return nil
}

// creditShares increases a provider's balance. Only pool operations may call
// it, so share mutation always travels with the matching reserve mutation.
func (k Keeper) creditShares(ctx context.Context, poolID uint64, provider sdk.AccAddress, amount math.Int) error {
	current, err := k.GetLiquidity(ctx, poolID, provider)
	if err != nil {
		return err
	}
	total, err := SafeAdd(current, amount)
	if err != nil {
		return types.ErrOverflow.Wrapf("crediting shares: %v", err)
	}
	return k.SetLiquidity(ctx, poolID, provider, total)
}

// debitShares decreases a provider's balance, failing if the balance is
// insufficient.
func (k Keeper) debitShares(ctx context.Context, poolID uint64, provider sdk.AccAddress, amount math.Int) error {
	current, err := k.GetLiquidity(ctx, poolID, provider)
	if err != nil {
		return err
	}
	if amount.GT(current) {
		return types.ErrInsufficientShares.Wrapf("have %s, need %s", current, amount)
	}
	remaining, err := SafeSub(current, amount)
	if err != nil {
		return types.ErrOverflow.Wrapf("debiting shares: %v", err)
	}
	return k.SetLiquidity(ctx, poolID, provider, remaining)
}

// AddLiquidity adds liquidity to an existing pool, oriented to the caller's
// token order. The second amount may not exceed the reserve-proportional
// optimum for the first; under-supplying it is allowed and the supplied
// amounts are what enter the reserves. The share grant equals the first
// token's amount.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, tokenA, tokenB string, amountA, amountB math.Int) (math.Int, error) {
	if err := types.ValidateAmount("amount_a", amountA); err != nil {
		return math.ZeroInt(), err
	}
	if err := types.ValidateAmount("amount_b", amountB); err != nil {
		return math.ZeroInt(), err
	}

	pool, err := k.GetPoolByTokens(ctx, tokenA, tokenB)
	if err != nil {
		return math.ZeroInt(), err
	}

	reserveA, reserveB, err := pool.OrientedReserves(tokenA, tokenB)
	if err != nil {
		return math.ZeroInt(), err
	}

	// A pool drained to zero reserves is inert; it stays addressable but
	// cannot price a proportional contribution.
	if reserveA.IsZero() || reserveB.IsZero() {
		if !pool.TotalShares.IsZero() {
			return math.ZeroInt(), types.ErrInvalidPoolState.Wrap("pool has shares but zero reserves")
		}
		return math.ZeroInt(), types.ErrInvalidPoolState.Wrapf("pool %d has no reserves", pool.Id)
	}

	optimalB, err := SafeMulDiv(amountA, reserveB, reserveA)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("computing optimal second amount: %v", err)
	}
	if amountB.GT(optimalB) {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrapf(
			"amount_b %s exceeds reserve-proportional optimum %s", amountB, optimalB)
	}

	newReserveA, err := SafeAdd(reserveA, amountA)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("adding to first reserve: %v", err)
	}
	newReserveB, err := SafeAdd(reserveB, amountB)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("adding to second reserve: %v", err)
	}
	if newReserveA.GTE(types.MaxReserveAmount) || newReserveB.GTE(types.MaxReserveAmount) {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("resulting reserves exceed maximum bound")
	}

	newShares := amountA
	newTotalShares, err := SafeAdd(pool.TotalShares, newShares)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("adding to total shares: %v", err)
	}

	// Custody first: a failed deposit leaves the pool untouched.
	deposit := sdk.NewCoins(sdk.NewCoin(tokenA, amountA), sdk.NewCoin(tokenB, amountB))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, deposit); err != nil {
		return math.ZeroInt(), types.ErrTransferFailed.Wrapf("failed to deposit liquidity: %v", err)
	}

	if tokenA == pool.TokenA {
		pool.ReserveA, pool.ReserveB = newReserveA, newReserveB
	} else {
		pool.ReserveA, pool.ReserveB = newReserveB, newReserveA
	}
	pool.TotalShares = newTotalShares

	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), err
	}
	if err := k.creditShares(ctx, pool.Id, provider, newShares); err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityAdded,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyTokenA, tokenA),
			sdk.NewAttribute(types.AttributeKeyTokenB, tokenB),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, newShares.String()),
		),
	)

	if k.metrics != nil {
		poolIDStr := fmt.Sprintf("%d", pool.Id)
		k.metrics.LiquidityAdded.WithLabelValues(poolIDStr, tokenA).Add(metricValue(amountA))
		k.metrics.LiquidityAdded.WithLabelValues(poolIDStr, tokenB).Add(metricValue(amountB))
	}

	return newShares, nil
}

// RemoveLiquidity redeems shares for a pro-rata slice of both reserves,
// oriented to the caller's token order. Withdrawal amounts are floored, so
// rounding loss stays in the pool. Tokens leave custody before any state is
// written.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, tokenA, tokenB string, shares math.Int) (math.Int, math.Int, error) {
	if shares.IsNil() || !shares.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientShares.Wrap("shares must be positive")
	}

	pool, err := k.GetPoolByTokens(ctx, tokenA, tokenB)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	reserveA, reserveB, err := pool.OrientedReserves(tokenA, tokenB)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	held, err := k.GetLiquidity(ctx, pool.Id, provider)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if held.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrUnauthorized.Wrapf(
			"%s holds no position in pool %d", provider, pool.Id)
	}
	if shares.GT(held) {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientShares.Wrapf("have %s, need %s", held, shares)
	}

	if pool.TotalShares.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidPoolState.Wrap("pool has zero total shares")
	}

	amountA, err := SafeMulDiv(shares, reserveA, pool.TotalShares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrapf("computing first withdrawal: %v", err)
	}
	amountB, err := SafeMulDiv(shares, reserveB, pool.TotalShares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrapf("computing second withdrawal: %v", err)
	}

	newReserveA, err := SafeSub(reserveA, amountA)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrapf("subtracting first reserve: %v", err)
	}
	newReserveB, err := SafeSub(reserveB, amountB)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrapf("subtracting second reserve: %v", err)
	}
	newTotalShares, err := SafeSub(pool.TotalShares, shares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrapf("subtracting total shares: %v", err)
	}

	withdrawal := sdk.NewCoins(sdk.NewCoin(tokenA, amountA), sdk.NewCoin(tokenB, amountB))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, withdrawal); err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrTransferFailed.Wrapf("failed to return liquidity: %v", err)
	}

	if tokenA == pool.TokenA {
		pool.ReserveA, pool.ReserveB = newReserveA, newReserveB
	} else {
		pool.ReserveA, pool.ReserveB = newReserveB, newReserveA
	}
	pool.TotalShares = newTotalShares

	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if err := k.debitShares(ctx, pool.Id, provider, shares); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityRemoved,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyTokenA, tokenA),
			sdk.NewAttribute(types.AttributeKeyTokenB, tokenB),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	if k.metrics != nil {
		poolIDStr := fmt.Sprintf("%d", pool.Id)
		k.metrics.LiquidityRemoved.WithLabelValues(poolIDStr, tokenA).Add(metricValue(amountA))
		k.metrics.LiquidityRemoved.WithLabelValues(poolIDStr, tokenB).Add(metricValue(amountB))
	}

	return amountA, amountB, nil
}

// IterateLiquidityByPool iterates over all liquidity positions in a pool
func (k Keeper) IterateLiquidityByPool(ctx context.Context, poolID uint64, cb func(provider sdk.AccAddress, shares math.Int) (stop bool)) error {
	store := k.getStore(ctx)
	prefix := LiquidityKeyByPoolPrefix(poolID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			return err
		}

		provider := sdk.AccAddress(iterator.Key()[len(prefix):])
		if cb(provider, shares) {
			break
		}
	}
	return nil
}

// IterateAllLiquidity iterates over every position in every pool.
func (k Keeper) IterateAllLiquidity(ctx context.Context, cb func(poolID uint64, provider sdk.AccAddress, shares math.Int) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, LiquidityKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			return err
		}

		key := iterator.Key()
		poolID := binary.BigEndian.Uint64(key[len(LiquidityKeyPrefix) : len(LiquidityKeyPrefix)+8])
		provider := sdk.AccAddress(key[len(LiquidityKeyPrefix)+8:])
		if cb(poolID, provider, shares) {
			break
		}
	}
	return nil
}

// metricValue converts an amount for metric recording. Amounts beyond the
// int64 range keep their magnitude and lose only precision.
func metricValue(amount math.Int) float64 {
	if amount.IsInt64() {
		return float64(amount.Int64())
	}
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}
