package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-network/meridian/testutil/keeper"
	"github.com/meridian-network/meridian/x/amm/types"
)

// TestClaimRewards_FlatYield tests that a claim records shares * rate in the
// pool's canonical first token.
func TestClaimRewards_FlatYield(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddr(1)

	keepertest.CreateTestPool(t, k, bank, ctx, creator, "uusdc", "uatom", math.NewInt(5_000), math.NewInt(5_000))

	denom, reward, err := k.ClaimRewards(ctx, creator, "uusdc", "uatom")
	require.NoError(t, err)

	// Denom is the canonical first token regardless of caller order.
	require.Equal(t, "uatom", denom)

	// Default rate is 1 per share.
	require.Equal(t, math.NewInt(5_000), reward)

	pending, err := k.GetPendingReward(ctx, creator, "uatom")
	require.NoError(t, err)
	require.Equal(t, reward, pending)
}

// TestClaimRewards_RateApplied tests that a governed rate change scales the
// claimed amount.
func TestClaimRewards_RateApplied(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddr(1)

	keepertest.CreateTestPool(t, k, bank, ctx, creator, "uatom", "uusdc", math.NewInt(2_000), math.NewInt(2_000))

	require.NoError(t, k.SetRewardRate(ctx, keepertest.Authority, math.NewInt(7)))

	_, reward, err := k.ClaimRewards(ctx, creator, "uatom", "uusdc")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(14_000), reward)
}

// TestClaimRewards_OverwritesPrior tests that a second claim replaces the
// pending amount rather than accumulating.
func TestClaimRewards_OverwritesPrior(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddr(1)

	keepertest.CreateTestPool(t, k, bank, ctx, creator, "uatom", "uusdc", math.NewInt(3_000), math.NewInt(3_000))

	_, first, err := k.ClaimRewards(ctx, creator, "uatom", "uusdc")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3_000), first)

	require.NoError(t, k.SetRewardRate(ctx, keepertest.Authority, math.NewInt(2)))

	_, second, err := k.ClaimRewards(ctx, creator, "uatom", "uusdc")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(6_000), second)

	pending, err := k.GetPendingReward(ctx, creator, "uatom")
	require.NoError(t, err)
	require.Equal(t, second, pending)
}

// TestClaimRewards_NoPosition tests rejection for a caller with no position
func TestClaimRewards_NoPosition(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddr(1)
	stranger := keepertest.TestAddr(9)

	keepertest.CreateTestPool(t, k, bank, ctx, creator, "uatom", "uusdc", math.NewInt(5_000), math.NewInt(5_000))

	_, _, err := k.ClaimRewards(ctx, stranger, "uatom", "uusdc")
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

// TestClaimRewards_BelowMinimumShares tests rejection of positions under the
// reward minimum.
func TestClaimRewards_BelowMinimumShares(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddr(1)

	// Default minimum is 1,000 shares; this position holds 999.
	keepertest.CreateTestPool(t, k, bank, ctx, creator, "uatom", "uusdc", math.NewInt(999), math.NewInt(999))

	_, _, err := k.ClaimRewards(ctx, creator, "uatom", "uusdc")
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInsufficientFunds)
}

// TestClaimRewards_PoolNotFound tests a claim against a non-existent pair
func TestClaimRewards_PoolNotFound(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	provider := keepertest.TestAddr(1)

	_, _, err := k.ClaimRewards(ctx, provider, "uatom", "uusdc")
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

// TestSetRewardRate tests authority gating and the maximum-rate bound
func TestSetRewardRate(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	err := k.SetRewardRate(ctx, keepertest.TestAddr(9).String(), math.NewInt(5))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	err = k.SetRewardRate(ctx, keepertest.Authority, math.NewInt(101))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrMaxRateExceeded)

	err = k.SetRewardRate(ctx, keepertest.Authority, math.NewInt(-1))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	require.NoError(t, k.SetRewardRate(ctx, keepertest.Authority, math.NewInt(50)))
	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50), params.RewardRatePerShare)
}
