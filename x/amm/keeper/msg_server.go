package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-network/meridian/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the amm MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePool handles the creation of a new liquidity pool
func (ms msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePool: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("CreatePool: creator: %v", err)
	}

	pool, shares, err := ms.Keeper.CreatePool(goCtx, creator, msg.TokenA, msg.TokenB, msg.AmountA, msg.AmountB)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: %w", err)
	}

	return &types.MsgCreatePoolResponse{
		PoolId: pool.Id,
		Shares: shares,
	}, nil
}

// AddLiquidity handles adding liquidity to an existing pool
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("AddLiquidity: provider: %v", err)
	}

	shares, err := ms.Keeper.AddLiquidity(goCtx, provider, msg.TokenA, msg.TokenB, msg.AmountA, msg.AmountB)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	return &types.MsgAddLiquidityResponse{
		Shares: shares,
	}, nil
}

// RemoveLiquidity handles removing liquidity from a pool
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("RemoveLiquidity: provider: %v", err)
	}

	amountA, amountB, err := ms.Keeper.RemoveLiquidity(goCtx, provider, msg.TokenA, msg.TokenB, msg.Shares)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}

// Swap handles token swaps
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("Swap: trader: %v", err)
	}

	result, err := ms.Keeper.Swap(goCtx, trader, msg.TokenIn, msg.TokenOut, msg.AmountIn)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}

	return &types.MsgSwapResponse{
		AmountOut: result.AmountOut,
	}, nil
}

// ClaimRewards handles recording flat yield for a liquidity position
func (ms msgServer) ClaimRewards(goCtx context.Context, msg *types.MsgClaimRewards) (*types.MsgClaimRewardsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ClaimRewards: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("ClaimRewards: provider: %v", err)
	}

	denom, amount, err := ms.Keeper.ClaimRewards(goCtx, provider, msg.TokenA, msg.TokenB)
	if err != nil {
		return nil, fmt.Errorf("ClaimRewards: %w", err)
	}

	return &types.MsgClaimRewardsResponse{
		Denom:  denom,
		Amount: amount,
	}, nil
}

// AddAllowedToken handles adding a token denom to the pooling allowlist
func (ms msgServer) AddAllowedToken(goCtx context.Context, msg *types.MsgAddAllowedToken) (*types.MsgAddAllowedTokenResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddAllowedToken: validate: %w", err)
	}

	if err := ms.Keeper.AddAllowedToken(goCtx, msg.Authority, msg.Token); err != nil {
		return nil, fmt.Errorf("AddAllowedToken: %w", err)
	}

	return &types.MsgAddAllowedTokenResponse{}, nil
}

// SetRewardRate handles updating the per-share reward rate
func (ms msgServer) SetRewardRate(goCtx context.Context, msg *types.MsgSetRewardRate) (*types.MsgSetRewardRateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetRewardRate: validate: %w", err)
	}

	if err := ms.Keeper.SetRewardRate(goCtx, msg.Authority, msg.Rate); err != nil {
		return nil, fmt.Errorf("SetRewardRate: %w", err)
	}

	return &types.MsgSetRewardRateResponse{}, nil
}
