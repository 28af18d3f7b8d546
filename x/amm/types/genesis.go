package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState is the full persisted state of the amm module: the pool table,
// the per-provider position table, the pending reward table, the allowlist,
// and the governed parameters.
type GenesisState struct {
	Params        Params                    `json:"params"`
	NextPoolId    uint64                    `json:"next_pool_id"`
	Pools         []Pool                    `json:"pools"`
	Positions     []LiquidityPositionRecord `json:"positions"`
	Rewards       []PendingRewardRecord     `json:"rewards"`
	AllowedTokens []string                  `json:"allowed_tokens"`
}

// DefaultGenesis returns the default genesis state for the amm module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		NextPoolId:    1,
		Pools:         []Pool{},
		Positions:     []LiquidityPositionRecord{},
		Rewards:       []PendingRewardRecord{},
		AllowedTokens: []string{},
	}
}

// Validate ensures the genesis state is well-formed: unique canonical pairs,
// structurally valid pools, and per-pool share conservation between the pool
// table and the position table.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seenPairs := make(map[[2]string]bool, len(gs.Pools))
	seenIDs := make(map[uint64]bool, len(gs.Pools))
	poolShares := make(map[uint64]sdkmath.Int, len(gs.Pools))

	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return err
		}
		if pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool %d not below next pool id %d", pool.Id, gs.NextPoolId)
		}
		if seenIDs[pool.Id] {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		seenIDs[pool.Id] = true

		pair := [2]string{pool.TokenA, pool.TokenB}
		if seenPairs[pair] {
			return fmt.Errorf("duplicate pool for pair %s/%s", pool.TokenA, pool.TokenB)
		}
		seenPairs[pair] = true

		poolShares[pool.Id] = sdkmath.ZeroInt()
	}

	seenPositions := make(map[string]bool, len(gs.Positions))
	for _, pos := range gs.Positions {
		if _, err := sdk.AccAddressFromBech32(pos.Provider); err != nil {
			return fmt.Errorf("invalid position provider %s: %w", pos.Provider, err)
		}
		if pos.Shares.IsNil() || !pos.Shares.IsPositive() {
			return fmt.Errorf("position of %s in pool %d must hold positive shares", pos.Provider, pos.PoolId)
		}
		total, ok := poolShares[pos.PoolId]
		if !ok {
			return fmt.Errorf("position references unknown pool %d", pos.PoolId)
		}
		key := fmt.Sprintf("%d/%s", pos.PoolId, pos.Provider)
		if seenPositions[key] {
			return fmt.Errorf("duplicate position %s", key)
		}
		seenPositions[key] = true
		poolShares[pos.PoolId] = total.Add(pos.Shares)
	}

	for _, pool := range gs.Pools {
		if !poolShares[pool.Id].Equal(pool.TotalShares) {
			return fmt.Errorf("pool %d total shares %s do not match position sum %s",
				pool.Id, pool.TotalShares, poolShares[pool.Id])
		}
	}

	for _, reward := range gs.Rewards {
		if _, err := sdk.AccAddressFromBech32(reward.Holder); err != nil {
			return fmt.Errorf("invalid reward holder %s: %w", reward.Holder, err)
		}
		if err := sdk.ValidateDenom(reward.Denom); err != nil {
			return fmt.Errorf("invalid reward denom %s: %w", reward.Denom, err)
		}
		if reward.Amount.IsNil() || reward.Amount.IsNegative() {
			return fmt.Errorf("reward for %s must be non-negative", reward.Holder)
		}
	}

	seenTokens := make(map[string]bool, len(gs.AllowedTokens))
	for _, token := range gs.AllowedTokens {
		if err := sdk.ValidateDenom(token); err != nil {
			return fmt.Errorf("invalid allowed token %s: %w", token, err)
		}
		if seenTokens[token] {
			return fmt.Errorf("duplicate allowed token %s", token)
		}
		seenTokens[token] = true
	}

	return nil
}
