package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePool{}

// MsgCreatePool defines a message to create a new liquidity pool
type MsgCreatePool struct {
	Creator string      `json:"creator"`
	TokenA  string      `json:"token_a"`
	TokenB  string      `json:"token_b"`
	AmountA sdkmath.Int `json:"amount_a"`
	AmountB sdkmath.Int `json:"amount_b"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance
func NewMsgCreatePool(creator, tokenA, tokenB string, amountA, amountB sdkmath.Int) *MsgCreatePool {
	return &MsgCreatePool{
		Creator: creator,
		TokenA:  tokenA,
		TokenB:  tokenB,
		AmountA: amountA,
		AmountB: amountB,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreatePool) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCreatePool) Type() string {
	return "create_pool"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
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

// validateTokenPair checks both denoms are well-formed and distinct.
func validateTokenPair(tokenA, tokenB string) error {
	if tokenA == "" || tokenB == "" {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denominations cannot be empty")
	}
	if err := sdk.ValidateDenom(tokenA); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenPair, "invalid denom %s: %s", tokenA, err)
	}
	if err := sdk.ValidateDenom(tokenB); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenPair, "invalid denom %s: %s", tokenB, err)
	}
	if tokenA == tokenB {
		return sdkerrors.Wrap(ErrSameToken, "token denominations must be different")
	}
	return nil
}
