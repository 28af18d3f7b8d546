package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-network/meridian/x/amm/types"
)

// RegisterInvariants registers all amm invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "share-conservation", ShareConservationInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-state", PoolStateInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-account-balance", ModuleAccountBalanceInvariant(k))
}

// AllInvariants runs all invariants of the amm module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ShareConservationInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = PoolStateInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return ModuleAccountBalanceInvariant(k)(ctx)
	}
}

// ShareConservationInvariant checks that each pool's total shares equal the
// sum of its provider positions.
func ShareConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			sum := math.ZeroInt()
			iterErr := k.IterateLiquidityByPool(ctx, pool.Id, func(_ sdk.AccAddress, shares math.Int) bool {
				sum = sum.Add(shares)
				return false
			})
			if iterErr != nil {
				count++
				msg += fmt.Sprintf("pool %d: iterating positions: %v\n", pool.Id, iterErr)
				return false
			}

			if !sum.Equal(pool.TotalShares) {
				count++
				msg += fmt.Sprintf("pool %d: total shares (%s) != position sum (%s)\n",
					pool.Id, pool.TotalShares.String(), sum.String())
			}
			return false
		})
		if err != nil {
			count++
			msg += fmt.Sprintf("iterating pools: %v\n", err)
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "share-conservation",
			fmt.Sprintf("found %d pools with unconserved shares\n%s", count, msg),
		), broken
	}
}

// PoolStateInvariant checks that every pool is structurally sound: canonical
// token order, bounded reserves, and reserves present whenever shares are
// outstanding.
func PoolStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			if pool.Id == 0 {
				count++
				msg += "pool has zero ID\n"
			}

			if pool.TokenA >= pool.TokenB {
				count++
				msg += fmt.Sprintf("pool %d: token pair %s/%s not in canonical order\n",
					pool.Id, pool.TokenA, pool.TokenB)
			}

			if pool.ReserveA.IsNil() || pool.ReserveA.IsNegative() ||
				pool.ReserveB.IsNil() || pool.ReserveB.IsNegative() {
				count++
				msg += fmt.Sprintf("pool %d: nil or negative reserve\n", pool.Id)
				return false
			}

			if pool.ReserveA.GTE(types.MaxReserveAmount) || pool.ReserveB.GTE(types.MaxReserveAmount) {
				count++
				msg += fmt.Sprintf("pool %d: reserve exceeds maximum bound\n", pool.Id)
			}

			if pool.TotalShares.IsNil() || pool.TotalShares.IsNegative() {
				count++
				msg += fmt.Sprintf("pool %d: total shares is nil or negative (%s)\n",
					pool.Id, pool.TotalShares.String())
				return false
			}

			// Outstanding shares without backing reserves means someone holds
			// a claim on nothing.
			if pool.TotalShares.IsPositive() && (pool.ReserveA.IsZero() || pool.ReserveB.IsZero()) {
				count++
				msg += fmt.Sprintf("pool %d: shares outstanding (%s) with a zero reserve\n",
					pool.Id, pool.TotalShares.String())
			}

			return false
		})
		if err != nil {
			count++
			msg += fmt.Sprintf("iterating pools: %v\n", err)
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-state",
			fmt.Sprintf("found %d pools with invalid state\n%s", count, msg),
		), broken
	}
}

// ModuleAccountBalanceInvariant checks that the module account holds at least
// the sum of reserves across all pools for every token.
func ModuleAccountBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		totalReserves := make(map[string]math.Int)
		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			if existing, ok := totalReserves[pool.TokenA]; ok {
				totalReserves[pool.TokenA] = existing.Add(pool.ReserveA)
			} else {
				totalReserves[pool.TokenA] = pool.ReserveA
			}

			if existing, ok := totalReserves[pool.TokenB]; ok {
				totalReserves[pool.TokenB] = existing.Add(pool.ReserveB)
			} else {
				totalReserves[pool.TokenB] = pool.ReserveB
			}
			return false
		})
		if err != nil {
			count++
			msg += fmt.Sprintf("iterating pools: %v\n", err)
		}

		moduleAddr := k.GetModuleAddress()
		for denom, requiredAmount := range totalReserves {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.LT(requiredAmount) {
				count++
				msg += fmt.Sprintf("token %s: module balance (%s) < total reserves (%s)\n",
					denom, balance.Amount.String(), requiredAmount.String())
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "module-account-balance",
			fmt.Sprintf("found %d tokens with insufficient module balance\n%s", count, msg),
		), broken
	}
}
