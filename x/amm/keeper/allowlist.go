package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-network/meridian/x/amm/types"
)

// IsTokenAllowed reports whether a denom is eligible for pooling.
func (k Keeper) IsTokenAllowed(ctx context.Context, denom string) bool {
	store := k.getStore(ctx)
	return store.Has(AllowedTokenKey(denom))
}

// setAllowedToken marks a denom as poolable without an authority check; used
// by genesis import.
func (k Keeper) setAllowedToken(ctx context.Context, denom string) {
	store := k.getStore(ctx)
	store.Set(AllowedTokenKey(denom), []byte{1})
}

// AddAllowedToken adds a denom to the pooling allowlist. Only the owner
// identity may call it. Adding an already-allowed token is a no-op.
func (k Keeper) AddAllowedToken(ctx context.Context, authority, denom string) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("invalid authority; expected %s, got %s", k.authority, authority)
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return types.ErrInvalidTokenPair.Wrapf("invalid denom %s: %v", denom, err)
	}

	k.setAllowedToken(ctx, denom)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTokenAllowed,
			sdk.NewAttribute(types.AttributeKeyToken, denom),
		),
	)

	return nil
}

// GetAllowedTokens returns every allowlisted denom.
func (k Keeper) GetAllowedTokens(ctx context.Context) []string {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, AllowedTokenKeyPrefix)
	defer iterator.Close()

	var tokens []string
	for ; iterator.Valid(); iterator.Next() {
		tokens = append(tokens, string(iterator.Key()[len(AllowedTokenKeyPrefix):]))
	}
	return tokens
}
