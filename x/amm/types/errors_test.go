package types_test

import (
	"testing"

	sdkerrors "cosmossdk.io/errors"
	"github.com/stretchr/testify/require"

	"github.com/meridian-network/meridian/x/amm/types"
)

// TestErrorCodesUnique tests that every registered error carries a distinct
// code in the module codespace.
func TestErrorCodesUnique(t *testing.T) {
	errs := []*sdkerrors.Error{
		types.ErrInvalidAmount,
		types.ErrInvalidTokenPair,
		types.ErrSameToken,
		types.ErrTokenNotAllowed,
		types.ErrPoolNotFound,
		types.ErrPoolAlreadyExists,
		types.ErrUnauthorized,
		types.ErrInsufficientShares,
		types.ErrInsufficientFunds,
		types.ErrTransferFailed,
		types.ErrMaxRateExceeded,
		types.ErrOverflow,
		types.ErrInvalidPoolState,
		types.ErrInvalidAddress,
	}

	seen := make(map[uint32]bool, len(errs))
	for _, err := range errs {
		require.Equal(t, types.ModuleName, err.Codespace())
		require.False(t, seen[err.ABCICode()], "duplicate code %d", err.ABCICode())
		seen[err.ABCICode()] = true
	}
}

// TestErrorWrapPreservesIdentity tests errors.Is through Wrapf chains
func TestErrorWrapPreservesIdentity(t *testing.T) {
	wrapped := types.ErrPoolNotFound.Wrapf("pool not found for token pair %s/%s", "uatom", "uusdc")
	require.ErrorIs(t, wrapped, types.ErrPoolNotFound)
	require.NotErrorIs(t, wrapped, types.ErrPoolAlreadyExists)
}
