package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	ClaimRewards(context.Context, *MsgClaimRewards) (*MsgClaimRewardsResponse, error)
	AddAllowedToken(context.Context, *MsgAddAllowedToken) (*MsgAddAllowedTokenResponse, error)
	SetRewardRate(context.Context, *MsgSetRewardRate) (*MsgSetRewardRateResponse, error)
}

// Response types

// MsgCreatePoolResponse defines the response for CreatePool
type MsgCreatePoolResponse struct {
	PoolId uint64      `json:"pool_id"`
	Shares sdkmath.Int `json:"shares"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	Shares sdkmath.Int `json:"shares"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	AmountA sdkmath.Int `json:"amount_a"`
	AmountB sdkmath.Int `json:"amount_b"`
}

// MsgSwapResponse defines the response for Swap
type MsgSwapResponse struct {
	AmountOut sdkmath.Int `json:"amount_out"`
}

// MsgClaimRewardsResponse defines the response for ClaimRewards
type MsgClaimRewardsResponse struct {
	Denom  string      `json:"denom"`
	Amount sdkmath.Int `json:"amount"`
}

// MsgAddAllowedTokenResponse defines the response for AddAllowedToken
type MsgAddAllowedTokenResponse struct{}

// MsgSetRewardRateResponse defines the response for SetRewardRate
type MsgSetRewardRateResponse struct{}
