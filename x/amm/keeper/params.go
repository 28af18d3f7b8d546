package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-network/meridian/x/amm/types"
)

// GetParams returns the current parameters from the store
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := k.cdc.UnmarshalJSON(bz, &params); err != nil {
		return types.Params{}, fmt.Errorf("GetParams: unmarshal: %w", err)
	}
	return params, nil
}

// SetParams sets the parameters in the store
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	bz, err := k.cdc.MarshalJSON(&params)
	if err != nil {
		return fmt.Errorf("SetParams: marshal: %w", err)
	}
	store.Set(ParamsKey, bz)
	return nil
}

// SetRewardRate updates the flat yield rate. Only the owner identity may call
// it, and the rate is bounded by the configured maximum.
func (k Keeper) SetRewardRate(ctx context.Context, authority string, rate math.Int) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("invalid authority; expected %s, got %s", k.authority, authority)
	}
	if rate.IsNil() || rate.IsNegative() {
		return types.ErrInvalidAmount.Wrap("rate must be non-negative")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if rate.GT(params.MaxRewardRate) {
		return types.ErrMaxRateExceeded.Wrapf("rate %s exceeds maximum %s", rate, params.MaxRewardRate)
	}

	params.RewardRatePerShare = rate
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardRateUpdated,
			sdk.NewAttribute(types.AttributeKeyRate, rate.String()),
		),
	)

	return nil
}
