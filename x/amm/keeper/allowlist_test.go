package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-network/meridian/testutil/keeper"
	"github.com/meridian-network/meridian/x/amm/types"
)

// TestAddAllowedToken tests authority gating and idempotence of the allowlist
func TestAddAllowedToken(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	require.False(t, k.IsTokenAllowed(ctx, "uatom"))

	err := k.AddAllowedToken(ctx, keepertest.TestAddr(9).String(), "uatom")
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.False(t, k.IsTokenAllowed(ctx, "uatom"))

	require.NoError(t, k.AddAllowedToken(ctx, keepertest.Authority, "uatom"))
	require.True(t, k.IsTokenAllowed(ctx, "uatom"))

	// Re-adding is a no-op.
	require.NoError(t, k.AddAllowedToken(ctx, keepertest.Authority, "uatom"))
	require.Equal(t, []string{"uatom"}, k.GetAllowedTokens(ctx))
}

// TestAddAllowedToken_InvalidDenom tests rejection of malformed denoms
func TestAddAllowedToken_InvalidDenom(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	err := k.AddAllowedToken(ctx, keepertest.Authority, "")
	require.Error(t, err)

	err = k.AddAllowedToken(ctx, keepertest.Authority, "!!bad")
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)
}

// TestGetAllowedTokens tests enumeration of the allowlist
func TestGetAllowedTokens(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	require.Empty(t, k.GetAllowedTokens(ctx))

	require.NoError(t, k.AddAllowedToken(ctx, keepertest.Authority, "uusdc"))
	require.NoError(t, k.AddAllowedToken(ctx, keepertest.Authority, "uatom"))

	// Iteration order follows the key encoding (lexicographic).
	require.Equal(t, []string{"uatom", "uusdc"}, k.GetAllowedTokens(ctx))
}
