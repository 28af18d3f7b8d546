package keeper

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-network/meridian/x/amm/types"
)

// GetNextPoolID returns the next pool ID and increments the counter
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(PoolCountKey)

	var poolID uint64 = 1
	if bz != nil {
		poolID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, poolID+1)
	store.Set(PoolCountKey, nextBz)

	return poolID
}

// SetNextPoolID sets the next pool ID counter
func (k Keeper) SetNextPoolID(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(PoolCountKey, bz)
}

// PeekNextPoolID reads the counter without incrementing it.
func (k Keeper) PeekNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(PoolCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// CreatePool creates a new liquidity pool for a token pair. Both tokens must
// be allowlisted and both amounts positive and in bounds; the pair must not
// already have a pool. The initial share grant equals the amount of the
// caller's first token. Funds move into module custody before any state is
// written, so a failed transfer leaves no trace.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, tokenA, tokenB string, amountA, amountB math.Int) (*types.Pool, math.Int, error) {
	if tokenA == tokenB {
		return nil, math.ZeroInt(), types.ErrSameToken.Wrap("cannot create pool with identical tokens")
	}
	if tokenA == "" || tokenB == "" {
		return nil, math.ZeroInt(), types.ErrInvalidTokenPair.Wrap("token denoms cannot be empty")
	}

	if err := types.ValidateAmount("amount_a", amountA); err != nil {
		return nil, math.ZeroInt(), err
	}
	if err := types.ValidateAmount("amount_b", amountB); err != nil {
		return nil, math.ZeroInt(), err
	}

	// Allowlist gate precedes any transfer attempt.
	if !k.IsTokenAllowed(ctx, tokenA) {
		return nil, math.ZeroInt(), types.ErrTokenNotAllowed.Wrapf("token %s is not allowlisted", tokenA)
	}
	if !k.IsTokenAllowed(ctx, tokenB) {
		return nil, math.ZeroInt(), types.ErrTokenNotAllowed.Wrapf("token %s is not allowlisted", tokenB)
	}

	_, err := k.GetPoolByTokens(ctx, tokenA, tokenB)
	if err == nil {
		return nil, math.ZeroInt(), types.ErrPoolAlreadyExists.Wrapf("pool already exists for token pair %s/%s", tokenA, tokenB)
	}
	if !errors.Is(err, types.ErrPoolNotFound) {
		return nil, math.ZeroInt(), err
	}

	// The share grant follows the caller's first token, independent of the
	// canonical storage order.
	initialShares := amountA

	canonicalA, canonicalB := tokenA, tokenB
	reserveA, reserveB := amountA, amountB
	if canonicalA > canonicalB {
		canonicalA, canonicalB = canonicalB, canonicalA
		reserveA, reserveB = reserveB, reserveA
	}

	// Move both amounts into custody first; either transfer failing aborts
	// with no state change.
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	deposit := sdk.NewCoins(sdk.NewCoin(tokenA, amountA), sdk.NewCoin(tokenB, amountB))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creator, types.ModuleName, deposit); err != nil {
		return nil, math.ZeroInt(), types.ErrTransferFailed.Wrapf("failed to fund pool: %v", err)
	}

	poolID := k.GetNextPoolID(ctx)

	pool := &types.Pool{
		Id:          poolID,
		TokenA:      canonicalA,
		TokenB:      canonicalB,
		ReserveA:    reserveA,
		ReserveB:    reserveB,
		TotalShares: initialShares,
		Creator:     creator.String(),
	}

	if err := pool.Validate(); err != nil {
		return nil, math.ZeroInt(), fmt.Errorf("CreatePool: validate pool state: %w", err)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return nil, math.ZeroInt(), fmt.Errorf("CreatePool: save pool: %w", err)
	}
	k.SetPoolByTokens(ctx, canonicalA, canonicalB, poolID)

	if err := k.SetLiquidity(ctx, poolID, creator, initialShares); err != nil {
		return nil, math.ZeroInt(), fmt.Errorf("CreatePool: set creator liquidity: %w", err)
	}

	if k.metrics != nil {
		k.metrics.PoolsTotal.Inc()
	}

	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyTokenA, canonicalA),
			sdk.NewAttribute(types.AttributeKeyTokenB, canonicalB),
			sdk.NewAttribute(types.AttributeKeyAmountA, reserveA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, reserveB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, initialShares.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(sdk.AttributeKeySender, creator.String()),
		),
	})

	return pool, initialShares, nil
}

// GetPool retrieves a pool by its unique numeric ID.
// Returns ErrPoolNotFound if the pool does not exist.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(poolID))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	if err := k.cdc.UnmarshalJSON(bz, &pool); err != nil {
		return nil, fmt.Errorf("GetPool: unmarshal pool %d: %w", poolID, err)
	}
	return &pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool *types.Pool) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.MarshalJSON(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool %d: %w", pool.Id, err)
	}
	store.Set(PoolKey(pool.Id), bz)
	return nil
}

// GetPoolByTokens retrieves a pool by its token pair (order-independent).
// Returns ErrPoolNotFound if no pool exists for the canonical pair.
func (k Keeper) GetPoolByTokens(ctx context.Context, tokenA, tokenB string) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolByTokensKey(tokenA, tokenB))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool not found for token pair %s/%s", tokenA, tokenB)
	}

	poolID := binary.BigEndian.Uint64(bz)
	return k.GetPool(ctx, poolID)
}

// SetPoolByTokens indexes a pool by its canonical token pair
func (k Keeper) SetPoolByTokens(ctx context.Context, tokenA, tokenB string, poolID uint64) {
	store := k.getStore(ctx)
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	store.Set(PoolByTokensKey(tokenA, tokenB), poolIDBytes)
}

// MaxIterationLimit caps unbounded pool queries.
const MaxIterationLimit = 100

// IteratePools iterates over all pools
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := k.cdc.UnmarshalJSON(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal pool: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns all pools, capped at MaxIterationLimit
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	pools := make([]types.Pool, 0, MaxIterationLimit)
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		if len(pools) >= MaxIterationLimit {
			return true
		}
		pools = append(pools, pool)
		return false
	})
	return pools, err
}
