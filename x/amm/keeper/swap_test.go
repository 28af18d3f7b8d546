package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-network/meridian/testutil/keeper"
	"github.com/meridian-network/meridian/x/amm/types"
)

// TestSwap_ConstantProductWithFee tests the exact swap arithmetic: reserves
// (1,000,000; 1,000,000), fee 30 bps, input 10,000. The input after fee is
// floor(10000*9970/10000) = 9970 and the output is
// floor(1000000*9970/1009970) = 9871. The full input enters the reserve.
func TestSwap_ConstantProductWithFee(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddr(1)
	trader := keepertest.TestAddr(2)

	poolID := keepertest.CreateTestPool(t, k, bank, ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))

	amountIn := math.NewInt(10_000)
	bank.Fund(trader, sdk.NewCoins(sdk.NewCoin("uatom", amountIn)))

	result, err := k.Swap(ctx, trader, "uatom", "uusdc", amountIn)
	require.NoError(t, err)
	require.Equal(t, amountIn, result.AmountIn)
	require.Equal(t, math.NewInt(9_871), result.AmountOut)
	require.Equal(t, math.NewInt(30), result.Fee)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_010_000), pool.ReserveA)
	require.Equal(t, math.NewInt(990_129), pool.ReserveB)

	require.True(t, bank.Balance(trader).AmountOf("uatom").IsZero())
	require.Equal(t, math.NewInt(9_871), bank.Balance(trader).AmountOf("uusdc"))
}

// TestSwap_ProductNeverDecreases tests that the reserve product grows across
// a sequence of swaps in both directions.
func TestSwap_ProductNeverDecreases(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddr(1)
	trader := keepertest.TestAddr(2)

	poolID := keepertest.CreateTestPool(t, k, bank, ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))

	bank.Fund(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(50_000)), sdk.NewCoin("uusdc", math.NewInt(50_000))))

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	product := pool.Product()

	swaps := []struct {
		tokenIn  string
		tokenOut string
		amount   int64
	}{
		{"uatom", "uusdc", 10_000},
		{"uusdc", "uatom", 25_000},
		{"uatom", "uusdc", 5_000},
		{"uusdc", "uatom", 1_000},
	}

	for _, s := range swaps {
		_, err := k.Swap(ctx, trader, s.tokenIn, s.tokenOut, math.NewInt(s.amount))
		require.NoError(t, err)

		pool, err = k.GetPool(ctx, poolID)
		require.NoError(t, err)
		require.True(t, pool.Product().GTE(product),
			"product decreased: %s -> %s", product, pool.Product())
		product = pool.Product()
	}
}

// TestSwap_ReversedPairOrder tests swapping against a pool whose canonical
// order differs from the trade direction.
func TestSwap_ReversedPairOrder(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddr(1)
	trader := keepertest.TestAddr(2)

	poolID := keepertest.CreateTestPool(t, k, bank, ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))

	amountIn := math.NewInt(10_000)
	bank.Fund(trader, sdk.NewCoins(sdk.NewCoin("uusdc", amountIn)))

	result, err := k.Swap(ctx, trader, "uusdc", "uatom", amountIn)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_871), result.AmountOut)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(990_129), pool.ReserveA)
	require.Equal(t, math.NewInt(1_010_000), pool.ReserveB)
}

// TestSwap_PoolNotFound tests that a swap against a non-existent pair fails
// and moves no funds.
func TestSwap_PoolNotFound(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	trader := keepertest.TestAddr(2)

	funds := sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000)))
	bank.Fund(trader, funds)

	_, err := k.Swap(ctx, trader, "uatom", "uusdc", math.NewInt(10_000))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrPoolNotFound)

	require.Equal(t, funds, bank.Balance(trader))
}

// TestSwap_SameToken tests rejection of identical input and output tokens
func TestSwap_SameToken(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	trader := keepertest.TestAddr(2)

	_, err := k.Swap(ctx, trader, "uatom", "uatom", math.NewInt(10_000))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrSameToken)
}

// TestSwap_NonPositiveInput tests rejection of zero and negative inputs
func TestSwap_NonPositiveInput(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddr(1)
	trader := keepertest.TestAddr(2)

	keepertest.CreateTestPool(t, k, bank, ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))

	_, err := k.Swap(ctx, trader, "uatom", "uusdc", math.NewInt(0))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = k.Swap(ctx, trader, "uatom", "uusdc", math.NewInt(-10))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

// TestSwap_OutputRoundsToZero tests rejection of dust swaps whose output
// floors to zero.
func TestSwap_OutputRoundsToZero(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddr(1)
	trader := keepertest.TestAddr(2)

	keepertest.CreateTestPool(t, k, bank, ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000))

	bank.Fund(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(100))))

	// 100 uatom after fee prices at floor(1000*99/1000099) = 0 uusdc.
	_, err := k.Swap(ctx, trader, "uatom", "uusdc", math.NewInt(100))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

// TestSwap_OutputTransferFailureReverts tests that a failed output transfer
// returns the input and leaves reserves unchanged.
func TestSwap_OutputTransferFailureReverts(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddr(1)
	trader := keepertest.TestAddr(2)

	poolID := keepertest.CreateTestPool(t, k, bank, ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))

	amountIn := math.NewInt(10_000)
	bank.Fund(trader, sdk.NewCoins(sdk.NewCoin("uatom", amountIn)))

	bank.FailTransfersTo["uusdc"] = true
	_, err := k.Swap(ctx, trader, "uatom", "uusdc", amountIn)
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrTransferFailed)

	// Input was returned and reserves are untouched.
	require.Equal(t, amountIn, bank.Balance(trader).AmountOf("uatom"))
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveA)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveB)
}

// TestSimulateSwap_MatchesExecution tests that simulation prices identically
// to execution without mutating state.
func TestSimulateSwap_MatchesExecution(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddr(1)
	trader := keepertest.TestAddr(2)

	poolID := keepertest.CreateTestPool(t, k, bank, ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))

	amountIn := math.NewInt(10_000)
	quoted, err := k.SimulateSwap(ctx, "uatom", "uusdc", amountIn)
	require.NoError(t, err)

	// Simulation left reserves alone.
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveA)

	bank.Fund(trader, sdk.NewCoins(sdk.NewCoin("uatom", amountIn)))
	result, err := k.Swap(ctx, trader, "uatom", "uusdc", amountIn)
	require.NoError(t, err)
	require.Equal(t, quoted, result.AmountOut)
}

// TestGetSpotPrice tests spot price orientation for both directions of a pair
func TestGetSpotPrice(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddr(1)

	keepertest.CreateTestPool(t, k, bank, ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(2_000_000))

	price, err := k.GetSpotPrice(ctx, "uatom", "uusdc")
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(2), price)

	price, err = k.GetSpotPrice(ctx, "uusdc", "uatom")
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDecWithPrec(5, 1), price)
}
