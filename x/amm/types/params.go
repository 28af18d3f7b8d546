package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// Params holds the governed module parameters.
type Params struct {
	// FeeBps is the swap fee in basis points of FeeDenominator, retained in
	// the pool for liquidity providers.
	FeeBps sdkmath.Int `json:"fee_bps"`
	// RewardRatePerShare is the flat yield granted per liquidity share on a
	// reward claim.
	RewardRatePerShare sdkmath.Int `json:"reward_rate_per_share"`
	// MaxRewardRate bounds RewardRatePerShare.
	MaxRewardRate sdkmath.Int `json:"max_reward_rate"`
	// MinRewardShares is the minimum position size eligible for a reward
	// claim.
	MinRewardShares sdkmath.Int `json:"min_reward_shares"`
}

// DefaultParams returns default parameters for the amm module
func DefaultParams() Params {
	return Params{
		FeeBps:             sdkmath.NewInt(30), // 0.3%
		RewardRatePerShare: sdkmath.NewInt(1),
		MaxRewardRate:      sdkmath.NewInt(100),
		MinRewardShares:    sdkmath.NewInt(1_000),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validateFeeBps(p.FeeBps); err != nil {
		return err
	}
	if err := validateRewardRate(p.RewardRatePerShare); err != nil {
		return err
	}
	if err := validateRewardRate(p.MaxRewardRate); err != nil {
		return err
	}
	if p.RewardRatePerShare.GT(p.MaxRewardRate) {
		return fmt.Errorf("reward rate %s exceeds maximum %s", p.RewardRatePerShare, p.MaxRewardRate)
	}
	if p.MinRewardShares.IsNil() || p.MinRewardShares.IsNegative() {
		return fmt.Errorf("min reward shares must be non-negative")
	}
	return nil
}

func validateFeeBps(fee sdkmath.Int) error {
	if fee.IsNil() || fee.IsNegative() {
		return fmt.Errorf("fee bps must be non-negative")
	}
	if fee.GTE(sdkmath.NewInt(FeeDenominator)) {
		return fmt.Errorf("fee bps %s must be below %d", fee, FeeDenominator)
	}
	return nil
}

func validateRewardRate(rate sdkmath.Int) error {
	if rate.IsNil() || rate.IsNegative() {
		return fmt.Errorf("reward rate must be non-negative")
	}
	return nil
}
