package types

// Event types for the amm module
const (
	EventTypePoolCreated       = "amm_pool_created"
	EventTypeLiquidityAdded    = "amm_liquidity_added"
	EventTypeLiquidityRemoved  = "amm_liquidity_removed"
	EventTypeSwap              = "amm_swap"
	EventTypeRewardsClaimed    = "amm_rewards_claimed"
	EventTypeTokenAllowed      = "amm_token_allowed"
	EventTypeRewardRateUpdated = "amm_reward_rate_updated"
)

// Event attribute keys
const (
	AttributeKeyPoolID    = "pool_id"
	AttributeKeyCreator   = "creator"
	AttributeKeyProvider  = "provider"
	AttributeKeyTrader    = "trader"
	AttributeKeyTokenA    = "token_a"
	AttributeKeyTokenB    = "token_b"
	AttributeKeyTokenIn   = "token_in"
	AttributeKeyTokenOut  = "token_out"
	AttributeKeyAmountA   = "amount_a"
	AttributeKeyAmountB   = "amount_b"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyShares    = "shares"
	AttributeKeyFee       = "fee"
	AttributeKeyReserveA  = "reserve_a"
	AttributeKeyReserveB  = "reserve_b"
	AttributeKeyToken     = "token"
	AttributeKeyRate      = "rate"
	AttributeKeyReward    = "reward"
)
