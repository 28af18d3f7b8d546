package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-network/meridian/x/amm/types"
)

// GetPendingReward retrieves a holder's pending reward in a denom. A missing
// record reads as zero.
func (k Keeper) GetPendingReward(ctx context.Context, holder sdk.AccAddress, denom string) (math.Int, error) {
	store := k.getStore(ctx)
	bz := store.Get(RewardKey(holder, denom))
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		return math.ZeroInt(), err
	}
	return amount, nil
}

// SetPendingReward sets a holder's pending reward in a denom, replacing any
// prior amount.
func (k Keeper) SetPendingReward(ctx context.Context, holder sdk.AccAddress, denom string, amount math.Int) error {
	store := k.getStore(ctx)
	if amount.IsZero() {
		store.Delete(RewardKey(holder, denom))
		return nil
	}

	bz, err := amount.Marshal()
	if err != nil {
		return err
	}
	store.Set(RewardKey(holder, denom), bz)
	return nil
}

// ClaimRewards computes flat yield for the caller's position in the pair's
// pool and records it as the pending reward for the pool's canonical first
// token. The computed amount replaces any previously pending reward; no
// tokens move here, payout is handled by the withdrawal surface.
func (k Keeper) ClaimRewards(ctx context.Context, provider sdk.AccAddress, tokenA, tokenB string) (string, math.Int, error) {
	pool, err := k.GetPoolByTokens(ctx, tokenA, tokenB)
	if err != nil {
		return "", math.ZeroInt(), err
	}

	shares, err := k.GetLiquidity(ctx, pool.Id, provider)
	if err != nil {
		return "", math.ZeroInt(), err
	}
	if shares.IsZero() {
		return "", math.ZeroInt(), types.ErrUnauthorized.Wrapf(
			"%s holds no position in pool %d", provider, pool.Id)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return "", math.ZeroInt(), err
	}
	if shares.LT(params.MinRewardShares) {
		return "", math.ZeroInt(), types.ErrInsufficientFunds.Wrapf(
			"position %s below reward minimum %s", shares, params.MinRewardShares)
	}

	reward, err := SafeMul(shares, params.RewardRatePerShare)
	if err != nil {
		return "", math.ZeroInt(), types.ErrOverflow.Wrapf("computing reward: %v", err)
	}

	denom := pool.TokenA
	if err := k.SetPendingReward(ctx, provider, denom, reward); err != nil {
		return "", math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardsClaimed,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyToken, denom),
			sdk.NewAttribute(types.AttributeKeyReward, reward.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.RewardsClaimed.WithLabelValues(denom).Add(metricValue(reward))
	}

	return denom, reward, nil
}

// IterateRewards iterates over every pending reward record.
func (k Keeper) IterateRewards(ctx context.Context, cb func(holder sdk.AccAddress, denom string, amount math.Int) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, RewardKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			return err
		}

		// Key layout: prefix | addrLen | addr | denom
		key := iterator.Key()[len(RewardKeyPrefix):]
		addrLen := int(key[0])
		holder := sdk.AccAddress(key[1 : 1+addrLen])
		denom := string(key[1+addrLen:])

		if cb(holder, denom, amount) {
			break
		}
	}
	return nil
}
