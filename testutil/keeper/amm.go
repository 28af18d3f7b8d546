package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/meridian-network/meridian/x/amm/keeper"
	"github.com/meridian-network/meridian/x/amm/types"
)

// Authority is the governance address used by test keepers.
var Authority = authtypes.NewModuleAddress("gov").String()

// TestAddr returns a deterministic 20-byte test address.
func TestAddr(index byte) sdk.AccAddress {
	addr := make([]byte, 20)
	copy(addr, "test_address________")
	addr[19] = index
	return sdk.AccAddress(addr)
}

// AmmKeeper creates a test keeper for the amm module backed by an in-memory
// store and bank.
func AmmKeeper(t testing.TB) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	k, bank, ctx, _ := AmmKeeperWithStoreKey(t)
	return k, bank, ctx
}

// AmmKeeperWithStoreKey is AmmKeeper but also returns the module store key,
// for tests that write raw store records.
func AmmKeeperWithStoreKey(t testing.TB) (keeper.Keeper, *MockBankKeeper, sdk.Context, *storetypes.KVStoreKey) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewMockBankKeeper()

	k := keeper.NewKeeper(
		types.ModuleCdc,
		storeKey,
		bank,
		Authority,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, bank, ctx, storeKey
}

// FundAccount credits an account balance in the mock bank.
func FundAccount(bank *MockBankKeeper, addr sdk.AccAddress, coins sdk.Coins) {
	bank.Fund(addr, coins)
}

// CreateTestPool allowlists both tokens, funds the creator, and creates a
// pool, returning its ID.
func CreateTestPool(t testing.TB, k keeper.Keeper, bank *MockBankKeeper, ctx sdk.Context, creator sdk.AccAddress, tokenA, tokenB string, amountA, amountB math.Int) uint64 {
	require.NoError(t, k.AddAllowedToken(ctx, Authority, tokenA))
	require.NoError(t, k.AddAllowedToken(ctx, Authority, tokenB))

	bank.Fund(creator, sdk.NewCoins(sdk.NewCoin(tokenA, amountA), sdk.NewCoin(tokenB, amountB)))

	pool, _, err := k.CreatePool(ctx, creator, tokenA, tokenB, amountA, amountB)
	require.NoError(t, err)
	require.NotNil(t, pool)
	return pool.Id
}
