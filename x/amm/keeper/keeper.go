package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/meridian-network/meridian/x/amm/types"
)

// Keeper of the amm store. It owns the pool registry, the per-provider share
// ledger, the pending reward ledger, and the governance state. All asset
// movement goes through the bank keeper; a failed transfer aborts the
// enclosing operation before any state is written.
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        *codec.LegacyAmino
	bankKeeper types.BankKeeper

	// authority is the owner identity allowed to mutate governance state.
	// It is fixed at construction.
	authority string

	// moduleAddressCache avoids recomputing the module account address in
	// hot paths.
	moduleAddressCache sdk.AccAddress

	metrics *Metrics
}

// NewKeeper creates a new amm Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
) Keeper {
	return Keeper{
		storeKey:           key,
		cdc:                cdc,
		bankKeeper:         bankKeeper,
		authority:          authority,
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
		metrics:            GetMetrics(),
	}
}

// GetAuthority returns the module's owner identity.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the cached module account address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
