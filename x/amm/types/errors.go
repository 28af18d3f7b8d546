package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrInvalidAmount      = errors.Register(ModuleName, 1, "invalid amount")
	ErrInvalidTokenPair   = errors.Register(ModuleName, 2, "invalid token pair")
	ErrSameToken          = errors.Register(ModuleName, 3, "cannot pair identical tokens")
	ErrTokenNotAllowed    = errors.Register(ModuleName, 4, "token not allowed for pooling")
	ErrPoolNotFound       = errors.Register(ModuleName, 5, "pool not found")
	ErrPoolAlreadyExists  = errors.Register(ModuleName, 6, "pool already exists")
	ErrUnauthorized       = errors.Register(ModuleName, 7, "unauthorized")
	ErrInsufficientShares = errors.Register(ModuleName, 8, "insufficient liquidity shares")
	ErrInsufficientFunds  = errors.Register(ModuleName, 9, "insufficient funds")
	ErrTransferFailed     = errors.Register(ModuleName, 10, "token transfer failed")
	ErrMaxRateExceeded    = errors.Register(ModuleName, 11, "reward rate exceeds maximum")
	ErrOverflow           = errors.Register(ModuleName, 12, "arithmetic overflow")
	ErrInvalidPoolState   = errors.Register(ModuleName, 13, "invalid pool state")
	ErrInvalidAddress     = errors.Register(ModuleName, 14, "invalid address")
)
