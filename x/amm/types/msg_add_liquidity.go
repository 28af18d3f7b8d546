package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAddLiquidity{}

// MsgAddLiquidity defines a message to add liquidity to an existing pool
type MsgAddLiquidity struct {
	Provider string      `json:"provider"`
	TokenA   string      `json:"token_a"`
	TokenB   string      `json:"token_b"`
	AmountA  sdkmath.Int `json:"amount_a"`
	AmountB  sdkmath.Int `json:"amount_b"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider, tokenA, tokenB string, amountA, amountB sdkmath.Int) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider: provider,
		TokenA:   tokenA,
		TokenB:   tokenB,
		AmountA:  amountA,
		AmountB:  amountB,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidity) Type() string {
	return "add_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if err := validateTokenPair(msg.TokenA, msg.TokenB); err != nil {
		return err
	}

	if err := ValidateAmount("amount_a", msg.AmountA); err != nil {
		return err
	}
	if err := ValidateAmount("amount_b", msg.AmountB); err != nil {
		return err
	}

	return nil
}
