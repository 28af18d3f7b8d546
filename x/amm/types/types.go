package types

import (
	"fmt"
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// FeeDenominator is the basis-point denominator for the swap fee.
const FeeDenominator = 10_000

// MaxReserveAmount bounds every reserve and externally supplied amount.
// Keeping all quantities strictly below 2^128 guarantees that intermediate
// products in the pricing math stay below 2^256.
var MaxReserveAmount = sdkmath.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 128))

// Pool is a token-pair liquidity pool. TokenA and TokenB are always stored in
// canonical (lexicographic) order.
type Pool struct {
	Id          uint64      `json:"id"`
	TokenA      string      `json:"token_a"`
	TokenB      string      `json:"token_b"`
	ReserveA    sdkmath.Int `json:"reserve_a"`
	ReserveB    sdkmath.Int `json:"reserve_b"`
	TotalShares sdkmath.Int `json:"total_shares"`
	Creator     string      `json:"creator"`
}

// Validate checks structural pool invariants: canonical token order, and
// positive reserves whenever shares are outstanding.
func (p Pool) Validate() error {
	if p.Id == 0 {
		return ErrInvalidPoolState.Wrap("pool id cannot be zero")
	}
	if p.TokenA == p.TokenB {
		return ErrSameToken.Wrapf("pool %d pairs %s with itself", p.Id, p.TokenA)
	}
	if p.TokenA > p.TokenB {
		return ErrInvalidPoolState.Wrapf("pool %d tokens not in canonical order: %s/%s", p.Id, p.TokenA, p.TokenB)
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidPoolState.Wrapf("pool %d has nil amounts", p.Id)
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() || p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrapf("pool %d has negative amounts", p.Id)
	}
	if p.TotalShares.IsPositive() && (p.ReserveA.IsZero() || p.ReserveB.IsZero()) {
		return ErrInvalidPoolState.Wrapf("pool %d has outstanding shares but a zero reserve", p.Id)
	}
	if p.ReserveA.GTE(MaxReserveAmount) || p.ReserveB.GTE(MaxReserveAmount) {
		return ErrInvalidPoolState.Wrapf("pool %d reserves exceed maximum bound", p.Id)
	}
	return nil
}

// Product returns the constant-product value reserveA * reserveB.
func (p Pool) Product() sdkmath.Int {
	return p.ReserveA.Mul(p.ReserveB)
}

// OrientedReserves returns the pool reserves oriented to the given token
// order, so callers may address the pair in either direction.
func (p Pool) OrientedReserves(tokenIn, tokenOut string) (reserveIn, reserveOut sdkmath.Int, err error) {
	switch {
	case tokenIn == p.TokenA && tokenOut == p.TokenB:
		return p.ReserveA, p.ReserveB, nil
	case tokenIn == p.TokenB && tokenOut == p.TokenA:
		return p.ReserveB, p.ReserveA, nil
	default:
		return sdkmath.Int{}, sdkmath.Int{}, ErrInvalidTokenPair.Wrapf(
			"pool %d holds %s/%s, got %s/%s", p.Id, p.TokenA, p.TokenB, tokenIn, tokenOut)
	}
}

// LiquidityPositionRecord is the genesis representation of a provider's share
// balance in a pool.
type LiquidityPositionRecord struct {
	PoolId   uint64      `json:"pool_id"`
	Provider string      `json:"provider"`
	Shares   sdkmath.Int `json:"shares"`
}

// PendingRewardRecord is the genesis representation of yield owed to a holder
// and not yet withdrawn.
type PendingRewardRecord struct {
	Holder string      `json:"holder"`
	Denom  string      `json:"denom"`
	Amount sdkmath.Int `json:"amount"`
}

// SwapResult reports the outcome of an executed swap.
type SwapResult struct {
	AmountIn  sdkmath.Int
	AmountOut sdkmath.Int
	Fee       sdkmath.Int
}

// ValidateAmount rejects nil, non-positive, and out-of-bound quantities.
func ValidateAmount(name string, amount sdkmath.Int) error {
	if amount.IsNil() {
		return ErrInvalidAmount.Wrap(fmt.Sprintf("%s is nil", name))
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount.Wrapf("%s must be positive, got %s", name, amount)
	}
	if amount.GTE(MaxReserveAmount) {
		return ErrInvalidAmount.Wrapf("%s exceeds maximum bound: %s", name, amount)
	}
	return nil
}
