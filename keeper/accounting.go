// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2025, NASD Inc. All rights reserved.
// Use of this software is governed by the Business Source License included
// in the LICENSE file of this repository and at www.mariadb.com/bsl11.
//
// ANY USE OF THE LICENSED WORK IN VIOLATION OF THIS LICENSE WILL AUTOMATICALLY
// TERMINATE YOUR RIGHTS UNDER THIS LICENSE FOR THE CURRENT AND ALL OTHER
// VERSIONS OF THE LICENSED WORK.
//
// THIS LICENSE DOES NOT GRANT YOU ANY RIGHT IN ANY TRADEMARK OR LOGO OF
// LICENSOR OR ITS AFFILIATES (PROVIDED THAT YOU MAY USE A TRADEMARK OR LOGO OF
// LICENSOR AS EXPRESSLY REQUIRED BY THIS LICENSE).
//
// TO THE EXTENT PERMITTED BY APPLICABLE LAW, THE LICENSED WORK IS PROVIDED ON
// AN "AS IS" BASIS. LICENSOR HEREBY DISCLAIMS ALL WARRANTIES AND CONDITIONS,
// EXPRESS OR IMPLIED, INCLUDING (WITHOUT LIMITATION) WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, NON-INFRINGEMENT, AND
// TITLE.

package keeper

import (
	"context"

	"cosmossdk.io/math"

	"basevault.dev/types"
)

// TotalAssets returns the asset value backing a vault. For the flexible vault
// this includes yield already earned by the current block but not yet swept
// from the rewards account, so that conversions price identically before and
// after the sweep.
func (k *Keeper) TotalAssets(ctx context.Context, vault types.VaultType) (math.Int, error) {
	balance := k.bank.GetBalance(ctx, vault.Account(), k.denom)

	if vault == types.VaultFlexible {
		accrued, err := k.AccruedSinceLast(ctx)
		if err != nil {
			return math.ZeroInt(), err
		}
		return balance.Amount.SafeAdd(accrued)
	}

	return balance.Amount, nil
}

// ConvertToShares returns the number of shares a deposit of the given assets
// is worth, rounding down.
func (k *Keeper) ConvertToShares(ctx context.Context, vault types.VaultType, assets math.Int) (math.Int, error) {
	totalShares, totalAssets, offset, err := k.conversionState(ctx, vault)
	if err != nil {
		return math.ZeroInt(), err
	}

	// shares = assets * (totalShares + 10^offset) / (totalAssets + 1)
	return assets.Mul(totalShares.Add(offset)).Quo(totalAssets.AddRaw(1)), nil
}

// ConvertToAssets returns the asset value of the given shares, rounding down.
func (k *Keeper) ConvertToAssets(ctx context.Context, vault types.VaultType, shares math.Int) (math.Int, error) {
	totalShares, totalAssets, offset, err := k.conversionState(ctx, vault)
	if err != nil {
		return math.ZeroInt(), err
	}

	return shares.Mul(totalAssets.AddRaw(1)).Quo(totalShares.Add(offset)), nil
}

// assetsForMint returns the assets an account must supply to mint exactly the
// given shares, rounding up so the pool never undercharges.
func (k *Keeper) assetsForMint(ctx context.Context, vault types.VaultType, shares math.Int) (math.Int, error) {
	totalShares, totalAssets, offset, err := k.conversionState(ctx, vault)
	if err != nil {
		return math.ZeroInt(), err
	}

	return ceilDiv(shares.Mul(totalAssets.AddRaw(1)), totalShares.Add(offset)), nil
}

// sharesForWithdraw returns the shares that must be burned to withdraw exactly
// the given assets, rounding up so the pool never overpays.
func (k *Keeper) sharesForWithdraw(ctx context.Context, vault types.VaultType, assets math.Int) (math.Int, error) {
	totalShares, totalAssets, offset, err := k.conversionState(ctx, vault)
	if err != nil {
		return math.ZeroInt(), err
	}

	return ceilDiv(assets.Mul(totalShares.Add(offset)), totalAssets.AddRaw(1)), nil
}

// conversionState gathers the inputs of the share price: total issued shares,
// total backing assets and the virtual share offset 10^DecimalsOffset.
func (k *Keeper) conversionState(ctx context.Context, vault types.VaultType) (totalShares, totalAssets, offset math.Int, err error) {
	totalShares, err = k.GetTotalShares(ctx, vault)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), math.ZeroInt(), err
	}

	totalAssets, err = k.TotalAssets(ctx, vault)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), math.ZeroInt(), err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), math.ZeroInt(), err
	}

	return totalShares, totalAssets, math.NewIntWithDecimal(1, int(params.DecimalsOffset)), nil
}

// ceilDiv divides a by b rounding toward positive infinity. b must be
// positive, which conversionState guarantees since the offset term is at
// least one.
func ceilDiv(a, b math.Int) math.Int {
	return a.Add(b).SubRaw(1).Quo(b)
}
