package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-network/meridian/x/amm/types"
)

// InitGenesis initializes the amm module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("InitGenesis: set params: %w", err)
	}

	k.SetNextPoolID(ctx, genState.NextPoolId)

	for _, token := range genState.AllowedTokens {
		k.setAllowedToken(ctx, token)
	}

	for i := range genState.Pools {
		pool := genState.Pools[i]
		if err := k.SetPool(ctx, &pool); err != nil {
			return fmt.Errorf("InitGenesis: save pool %d: %w", pool.Id, err)
		}
		k.SetPoolByTokens(ctx, pool.TokenA, pool.TokenB, pool.Id)
	}

	for _, pos := range genState.Positions {
		provider, err := sdk.AccAddressFromBech32(pos.Provider)
		if err != nil {
			return fmt.Errorf("InitGenesis: invalid provider %s: %w", pos.Provider, err)
		}
		if err := k.SetLiquidity(ctx, pos.PoolId, provider, pos.Shares); err != nil {
			return fmt.Errorf("InitGenesis: set position for %s: %w", pos.Provider, err)
		}
	}

	for _, reward := range genState.Rewards {
		holder, err := sdk.AccAddressFromBech32(reward.Holder)
		if err != nil {
			return fmt.Errorf("InitGenesis: invalid reward holder %s: %w", reward.Holder, err)
		}
		if err := k.SetPendingReward(ctx, holder, reward.Denom, reward.Amount); err != nil {
			return fmt.Errorf("InitGenesis: set reward for %s: %w", reward.Holder, err)
		}
	}

	return nil
}

// ExportGenesis returns the amm module's full state for export.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: params: %w", err)
	}

	genState := &types.GenesisState{
		Params:        params,
		NextPoolId:    k.PeekNextPoolID(ctx),
		Pools:         []types.Pool{},
		Positions:     []types.LiquidityPositionRecord{},
		Rewards:       []types.PendingRewardRecord{},
		AllowedTokens: k.GetAllowedTokens(ctx),
	}

	if err := k.IteratePools(ctx, func(pool types.Pool) bool {
		genState.Pools = append(genState.Pools, pool)
		return false
	}); err != nil {
		return nil, fmt.Errorf("ExportGenesis: pools: %w", err)
	}

	if err := k.IterateAllLiquidity(ctx, func(poolID uint64, provider sdk.AccAddress, shares math.Int) bool {
		genState.Positions = append(genState.Positions, types.LiquidityPositionRecord{
			PoolId:   poolID,
			Provider: provider.String(),
			Shares:   shares,
		})
		return false
	}); err != nil {
		return nil, fmt.Errorf("ExportGenesis: positions: %w", err)
	}

	if err := k.IterateRewards(ctx, func(holder sdk.AccAddress, denom string, amount math.Int) bool {
		genState.Rewards = append(genState.Rewards, types.PendingRewardRecord{
			Holder: holder.String(),
			Denom:  denom,
			Amount: amount,
		})
		return false
	}); err != nil {
		return nil, fmt.Errorf("ExportGenesis: rewards: %w", err)
	}

	return genState, nil
}
