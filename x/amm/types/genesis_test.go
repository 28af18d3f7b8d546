package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/meridian-network/meridian/x/amm/types"
)

func validGenesis() *types.GenesisState {
	return &types.GenesisState{
		Params:     types.DefaultParams(),
		NextPoolId: 2,
		Pools: []types.Pool{
			{
				Id:          1,
				TokenA:      "uatom",
				TokenB:      "uusdc",
				ReserveA:    sdkmath.NewInt(1_000),
				ReserveB:    sdkmath.NewInt(2_000),
				TotalShares: sdkmath.NewInt(1_000),
				Creator:     testAddr(1),
			},
		},
		Positions: []types.LiquidityPositionRecord{
			{PoolId: 1, Provider: testAddr(1), Shares: sdkmath.NewInt(600)},
			{PoolId: 1, Provider: testAddr(2), Shares: sdkmath.NewInt(400)},
		},
		Rewards: []types.PendingRewardRecord{
			{Holder: testAddr(1), Denom: "uatom", Amount: sdkmath.NewInt(50)},
		},
		AllowedTokens: []string{"uatom", "uusdc"},
	}
}

func TestGenesisState_ValidateDefault(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
}

func TestGenesisState_ValidateValid(t *testing.T) {
	require.NoError(t, validGenesis().Validate())
}

// TestGenesisState_ValidateSlashDenomPairs tests that two pools whose
// slash-bearing denoms concatenate to the same bytes still count as distinct
// pairs.
func TestGenesisState_ValidateSlashDenomPairs(t *testing.T) {
	gs := validGenesis()
	gs.NextPoolId = 3
	gs.Pools = []types.Pool{
		{
			Id:          1,
			TokenA:      "tokena/tokenb",
			TokenB:      "tokenc",
			ReserveA:    sdkmath.NewInt(1_000),
			ReserveB:    sdkmath.NewInt(1_000),
			TotalShares: sdkmath.NewInt(1_000),
			Creator:     testAddr(1),
		},
		{
			Id:          2,
			TokenA:      "tokena",
			TokenB:      "tokenb/tokenc",
			ReserveA:    sdkmath.NewInt(2_000),
			ReserveB:    sdkmath.NewInt(2_000),
			TotalShares: sdkmath.NewInt(2_000),
			Creator:     testAddr(1),
		},
	}
	gs.Positions = []types.LiquidityPositionRecord{
		{PoolId: 1, Provider: testAddr(1), Shares: sdkmath.NewInt(1_000)},
		{PoolId: 2, Provider: testAddr(1), Shares: sdkmath.NewInt(2_000)},
	}
	require.NoError(t, gs.Validate())
}

func TestGenesisState_ValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.GenesisState)
	}{
		{"pool id at counter", func(gs *types.GenesisState) { gs.NextPoolId = 1 }},
		{"duplicate pool id", func(gs *types.GenesisState) {
			dup := gs.Pools[0]
			dup.TokenA, dup.TokenB = "uosmo", "uusdc"
			gs.Pools = append(gs.Pools, dup)
			gs.NextPoolId = 3
		}},
		{"duplicate pair", func(gs *types.GenesisState) {
			dup := gs.Pools[0]
			dup.Id = 2
			gs.Pools = append(gs.Pools, dup)
			gs.NextPoolId = 3
		}},
		{"share mismatch", func(gs *types.GenesisState) {
			gs.Positions[0].Shares = sdkmath.NewInt(700)
		}},
		{"position for unknown pool", func(gs *types.GenesisState) {
			gs.Positions[0].PoolId = 9
		}},
		{"duplicate position", func(gs *types.GenesisState) {
			gs.Positions[1].Provider = gs.Positions[0].Provider
		}},
		{"non-positive position", func(gs *types.GenesisState) {
			gs.Positions[0].Shares = sdkmath.ZeroInt()
		}},
		{"bad reward holder", func(gs *types.GenesisState) {
			gs.Rewards[0].Holder = "garbage"
		}},
		{"negative reward", func(gs *types.GenesisState) {
			gs.Rewards[0].Amount = sdkmath.NewInt(-1)
		}},
		{"duplicate allowed token", func(gs *types.GenesisState) {
			gs.AllowedTokens = append(gs.AllowedTokens, "uatom")
		}},
		{"invalid allowed token", func(gs *types.GenesisState) {
			gs.AllowedTokens = append(gs.AllowedTokens, "!!")
		}},
		{"invalid params", func(gs *types.GenesisState) {
			gs.Params.FeeBps = sdkmath.NewInt(-1)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := validGenesis()
			tc.mutate(gs)
			require.Error(t, gs.Validate())
		})
	}
}
