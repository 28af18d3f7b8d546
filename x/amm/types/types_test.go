package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/meridian-network/meridian/x/amm/types"
)

func validPool() types.Pool {
	return types.Pool{
		Id:          1,
		TokenA:      "uatom",
		TokenB:      "uusdc",
		ReserveA:    sdkmath.NewInt(1_000),
		ReserveB:    sdkmath.NewInt(2_000),
		TotalShares: sdkmath.NewInt(1_000),
		Creator:     "creator",
	}
}

func TestSortTokens(t *testing.T) {
	a, b := types.SortTokens("uatom", "uusdc")
	require.Equal(t, "uatom", a)
	require.Equal(t, "uusdc", b)

	a, b = types.SortTokens("uusdc", "uatom")
	require.Equal(t, "uatom", a)
	require.Equal(t, "uusdc", b)
}

func TestPoolValidate(t *testing.T) {
	require.NoError(t, validPool().Validate())

	tests := []struct {
		name   string
		mutate func(*types.Pool)
	}{
		{"zero id", func(p *types.Pool) { p.Id = 0 }},
		{"same token", func(p *types.Pool) { p.TokenB = p.TokenA }},
		{"non-canonical order", func(p *types.Pool) { p.TokenA, p.TokenB = p.TokenB, p.TokenA }},
		{"nil reserve", func(p *types.Pool) { p.ReserveA = sdkmath.Int{} }},
		{"negative reserve", func(p *types.Pool) { p.ReserveB = sdkmath.NewInt(-1) }},
		{"negative shares", func(p *types.Pool) { p.TotalShares = sdkmath.NewInt(-1) }},
		{"shares without reserves", func(p *types.Pool) { p.ReserveA = sdkmath.ZeroInt() }},
		{"reserve at bound", func(p *types.Pool) { p.ReserveA = types.MaxReserveAmount }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pool := validPool()
			tc.mutate(&pool)
			require.Error(t, pool.Validate())
		})
	}
}

func TestPoolOrientedReserves(t *testing.T) {
	pool := validPool()

	in, out, err := pool.OrientedReserves("uatom", "uusdc")
	require.NoError(t, err)
	require.Equal(t, pool.ReserveA, in)
	require.Equal(t, pool.ReserveB, out)

	in, out, err = pool.OrientedReserves("uusdc", "uatom")
	require.NoError(t, err)
	require.Equal(t, pool.ReserveB, in)
	require.Equal(t, pool.ReserveA, out)

	_, _, err = pool.OrientedReserves("uatom", "uosmo")
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)

	_, _, err = pool.OrientedReserves("uatom", "uatom")
	require.Error(t, err)
}

func TestValidateAmount(t *testing.T) {
	require.NoError(t, types.ValidateAmount("amount", sdkmath.NewInt(1)))
	require.NoError(t, types.ValidateAmount("amount", types.MaxReserveAmount.SubRaw(1)))

	require.Error(t, types.ValidateAmount("amount", sdkmath.Int{}))
	require.Error(t, types.ValidateAmount("amount", sdkmath.ZeroInt()))
	require.Error(t, types.ValidateAmount("amount", sdkmath.NewInt(-1)))
	require.Error(t, types.ValidateAmount("amount", types.MaxReserveAmount))
}

func TestPoolProduct(t *testing.T) {
	pool := validPool()
	require.Equal(t, sdkmath.NewInt(2_000_000), pool.Product())
}
