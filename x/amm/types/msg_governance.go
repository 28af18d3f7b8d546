package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgAddAllowedToken{}
	_ sdk.Msg = &MsgSetRewardRate{}
)

// MsgAddAllowedToken defines an owner-gated message to make a token eligible
// for pooling.
type MsgAddAllowedToken struct {
	Authority string `json:"authority"`
	Token     string `json:"token"`
}

// NewMsgAddAllowedToken creates a new MsgAddAllowedToken instance
func NewMsgAddAllowedToken(authority, token string) *MsgAddAllowedToken {
	return &MsgAddAllowedToken{
		Authority: authority,
		Token:     token,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddAllowedToken) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgAddAllowedToken) Type() string {
	return "add_allowed_token"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgAddAllowedToken) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddAllowedToken) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddAllowedToken) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}

	if err := sdk.ValidateDenom(msg.Token); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenPair, "invalid denom %s: %s", msg.Token, err)
	}

	return nil
}

// MsgSetRewardRate defines an owner-gated message to update the yield rate.
type MsgSetRewardRate struct {
	Authority string      `json:"authority"`
	Rate      sdkmath.Int `json:"rate"`
}

// NewMsgSetRewardRate creates a new MsgSetRewardRate instance
func NewMsgSetRewardRate(authority string, rate sdkmath.Int) *MsgSetRewardRate {
	return &MsgSetRewardRate{
		Authority: authority,
		Rate:      rate,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSetRewardRate) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSetRewardRate) Type() string {
	return "set_reward_rate"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSetRewardRate) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetRewardRate) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetRewardRate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}

	if msg.Rate.IsNil() || msg.Rate.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "rate must be non-negative")
	}

	return nil
}
