package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwap{}

// MsgSwap defines a message to swap an input token for an output token
// against the pool of the pair.
type MsgSwap struct {
	Trader   string      `json:"trader"`
	TokenIn  string      `json:"token_in"`
	TokenOut string      `json:"token_out"`
	AmountIn sdkmath.Int `json:"amount_in"`
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(trader, tokenIn, tokenOut string, amountIn sdkmath.Int) *MsgSwap {
	return &MsgSwap{
		Trader:   trader,
		TokenIn:  tokenIn,
		TokenOut: tokenOut,
		AmountIn: amountIn,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwap) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwap) Type() string {
	return "swap"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwap) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if err := validateTokenPair(msg.TokenIn, msg.TokenOut); err != nil {
		return err
	}

	if err := ValidateAmount("amount_in", msg.AmountIn); err != nil {
		return err
	}

	return nil
}
