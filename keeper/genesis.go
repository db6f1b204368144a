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
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"basevault.dev/types"
)

// InitGenesis writes the provided genesis state, rebuilding the per vault
// share totals from the individual balances.
func (k *Keeper) InitGenesis(ctx context.Context, genesis *types.GenesisState) error {
	if err := genesis.Validate(); err != nil {
		return err
	}

	if err := k.SetParams(ctx, genesis.Params); err != nil {
		return err
	}
	if err := k.SetPaused(ctx, genesis.Paused); err != nil {
		return err
	}
	if err := k.SetSchedule(ctx, genesis.Schedule); err != nil {
		return err
	}
	if err := k.SetStats(ctx, genesis.Stats); err != nil {
		return err
	}
	if err := k.SchemaVersion.Set(ctx, CurrentSchemaVersion); err != nil {
		return err
	}

	totals := map[types.VaultType]math.Int{
		types.VaultFlexible: math.ZeroInt(),
		types.VaultStaked:   math.ZeroInt(),
	}
	for _, balance := range genesis.Shares {
		address := sdk.MustAccAddressFromBech32(balance.Address)
		if err := k.SetUserShares(ctx, address, balance.Vault, balance.Shares); err != nil {
			return err
		}
		total, err := totals[balance.Vault].SafeAdd(balance.Shares)
		if err != nil {
			return err
		}
		totals[balance.Vault] = total
	}
	for vault, total := range totals {
		if err := k.SetTotalShares(ctx, vault, total); err != nil {
			return err
		}
	}

	for _, entry := range genesis.Vesting {
		address := sdk.MustAccAddressFromBech32(entry.Address)
		if err := k.SetVestingRecord(ctx, address, entry.Record); err != nil {
			return fmt.Errorf("unable to set vesting record for %s: %w", entry.Address, err)
		}
	}

	return nil
}

// ExportGenesis reads the complete module state.
func (k *Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	schedule, err := k.GetSchedule(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := k.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	var shares []types.ShareBalance
	err = k.IterateUserShares(ctx, func(address sdk.AccAddress, vault types.VaultType, balance math.Int) (bool, error) {
		shares = append(shares, types.ShareBalance{
			Address: address.String(),
			Vault:   vault,
			Shares:  balance,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	var vesting []types.VestingEntry
	err = k.IterateVestingRecords(ctx, func(address sdk.AccAddress, record types.VestingRecord) (bool, error) {
		vesting = append(vesting, types.VestingEntry{
			Address: address.String(),
			Record:  record,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Params:   params,
		Paused:   k.GetPaused(ctx),
		Schedule: schedule,
		Shares:   shares,
		Vesting:  vesting,
		Stats:    stats,
	}, nil
}
