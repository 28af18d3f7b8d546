package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	"github.com/meridian-network/meridian/x/amm/types"
)

var (
	// PoolKeyPrefix is the prefix for pool store keys
	PoolKeyPrefix = []byte{0x01}

	// PoolCountKey is the key for the next pool ID counter
	PoolCountKey = []byte{0x02}

	// PoolByTokensKeyPrefix is the prefix for indexing pools by token pair
	PoolByTokensKeyPrefix = []byte{0x03}

	// LiquidityKeyPrefix is the prefix for liquidity position store keys
	LiquidityKeyPrefix = []byte{0x04}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x05}

	// RewardKeyPrefix is the prefix for pending reward store keys
	RewardKeyPrefix = []byte{0x06}

	// AllowedTokenKeyPrefix is the prefix for the pooling allowlist
	AllowedTokenKeyPrefix = []byte{0x07}
)

// PoolKey returns the store key for a pool by ID
func PoolKey(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(PoolKeyPrefix, poolIDBytes...)
}

// PoolByTokensKey returns the index key for a pool by its canonical pair.
// The first denom is length-prefixed: denoms may themselves contain '/'
// (IBC-style), so a bare separator would let distinct pairs share a key.
func PoolByTokensKey(tokenA, tokenB string) []byte {
	tokenA, tokenB = types.SortTokens(tokenA, tokenB)
	key := append(PoolByTokensKeyPrefix, byte(len(tokenA)))
	key = append(key, []byte(tokenA)...)
	return append(key, []byte(tokenB)...)
}

// LiquidityKeyByPoolPrefix returns the prefix covering every position in a
// pool.
func LiquidityKeyByPoolPrefix(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(LiquidityKeyPrefix, poolIDBytes...)
}

// LiquidityKey returns the store key for a provider's shares in a pool
func LiquidityKey(poolID uint64, provider sdk.AccAddress) []byte {
	return append(LiquidityKeyByPoolPrefix(poolID), provider.Bytes()...)
}

// RewardKey returns the store key for a holder's pending reward in a denom.
// The address is length-prefixed so the denom can be recovered on iteration.
func RewardKey(holder sdk.AccAddress, denom string) []byte {
	key := append(RewardKeyPrefix, address.MustLengthPrefix(holder)...)
	return append(key, []byte(denom)...)
}

// RewardKeyByHolderPrefix returns the prefix covering every pending reward of
// a holder.
func RewardKeyByHolderPrefix(holder sdk.AccAddress) []byte {
	return append(RewardKeyPrefix, address.MustLengthPrefix(holder)...)
}

// AllowedTokenKey returns the store key marking a denom as poolable
func AllowedTokenKey(denom string) []byte {
	return append(AllowedTokenKeyPrefix, []byte(denom)...)
}
