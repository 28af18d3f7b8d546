package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgClaimRewards{}

// MsgClaimRewards defines a message to record pending yield for a liquidity
// position. It does not move tokens; payout happens through the withdrawal
// surface.
type MsgClaimRewards struct {
	Provider string `json:"provider"`
	TokenA   string `json:"token_a"`
	TokenB   string `json:"token_b"`
}

// NewMsgClaimRewards creates a new MsgClaimRewards instance
func NewMsgClaimRewards(provider, tokenA, tokenB string) *MsgClaimRewards {
	return &MsgClaimRewards{
		Provider: provider,
		TokenA:   tokenA,
		TokenB:   tokenB,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgClaimRewards) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgClaimRewards) Type() string {
	return "claim_rewards"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgClaimRewards) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgClaimRewards) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgClaimRewards) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	return validateTokenPair(msg.TokenA, msg.TokenB)
}
