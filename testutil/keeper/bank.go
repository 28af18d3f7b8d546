package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/meridian-network/meridian/x/amm/types"
)

var _ types.BankKeeper = (*MockBankKeeper)(nil)

// MockBankKeeper is an in-memory bank for keeper tests. Transfers fail when
// the sender balance is insufficient, mirroring the real bank keeper.
type MockBankKeeper struct {
	balances map[string]sdk.Coins

	// FailTransfersTo forces SendCoinsFromModuleToAccount to fail for the
	// named denoms, for exercising transfer-failure paths.
	FailTransfersTo map[string]bool
}

// NewMockBankKeeper creates an empty mock bank.
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		balances:        make(map[string]sdk.Coins),
		FailTransfersTo: make(map[string]bool),
	}
}

// Fund credits an address with coins.
func (m *MockBankKeeper) Fund(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(coins...)
}

// Balance returns an address's full balance.
func (m *MockBankKeeper) Balance(addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

// ModuleBalance returns a module account's full balance.
func (m *MockBankKeeper) ModuleBalance(moduleName string) sdk.Coins {
	return m.balances[authtypes.NewModuleAddress(moduleName).String()]
}

func (m *MockBankKeeper) send(from, to string, amt sdk.Coins) error {
	have := m.balances[from]
	if !have.IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds: %s has %s, need %s", from, have, amt)
	}
	m.balances[from] = have.Sub(amt...)
	m.balances[to] = m.balances[to].Add(amt...)
	return nil
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.send(senderAddr.String(), authtypes.NewModuleAddress(recipientModule).String(), amt)
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	for _, coin := range amt {
		if m.FailTransfersTo[coin.Denom] {
			return fmt.Errorf("transfer of %s rejected", coin.Denom)
		}
	}
	return m.send(authtypes.NewModuleAddress(senderModule).String(), recipientAddr.String(), amt)
}

func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

func (m *MockBankKeeper) GetSupply(_ context.Context, denom string) sdk.Coin {
	total := sdk.NewCoin(denom, sdkmath.ZeroInt())
	for _, coins := range m.balances {
		total = total.Add(sdk.NewCoin(denom, coins.AmountOf(denom)))
	}
	return total
}

func (m *MockBankKeeper) GetDenomMetaData(_ context.Context, denom string) (banktypes.Metadata, bool) {
	return banktypes.Metadata{}, false
}
