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
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"basevault.dev/types"
)

// GetParams returns the currently configured parameters. When no parameters
// have been stored yet the defaults are returned without error.
func (k *Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}

	return params, nil
}

// SetParams persists the supplied params to state.
func (k *Keeper) SetParams(ctx context.Context, params types.Params) error {
	return k.Params.Set(ctx, params)
}

// GetPaused reports whether mutating entries are currently gated.
func (k *Keeper) GetPaused(ctx context.Context) bool {
	paused, err := k.Paused.Get(ctx)
	if err != nil {
		return false
	}
	return paused
}

// SetPaused stores the pause switch.
func (k *Keeper) SetPaused(ctx context.Context, paused bool) error {
	return k.Paused.Set(ctx, paused)
}

// GetStats returns the aggregate statistics, zero-valued when unset.
func (k *Keeper) GetStats(ctx context.Context) (types.Stats, error) {
	stats, err := k.Stats.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultStats(), nil
		}
		return types.Stats{}, err
	}

	return stats, nil
}

// SetStats persists the aggregate statistics.
func (k *Keeper) SetStats(ctx context.Context, stats types.Stats) error {
	return k.Stats.Set(ctx, stats)
}

// GetSchedule returns the reward schedule. Before StartRewards has run the
// zero-value schedule (not started) is returned.
func (k *Keeper) GetSchedule(ctx context.Context) (types.RewardSchedule, error) {
	schedule, err := k.Schedule.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.RewardSchedule{}, nil
		}
		return types.RewardSchedule{}, err
	}

	return schedule, nil
}

// SetSchedule persists the reward schedule.
func (k *Keeper) SetSchedule(ctx context.Context, schedule types.RewardSchedule) error {
	return k.Schedule.Set(ctx, schedule)
}

// GetTotalShares returns the total issued shares of a vault, zero when the
// vault has never minted.
func (k *Keeper) GetTotalShares(ctx context.Context, vault types.VaultType) (math.Int, error) {
	total, err := k.TotalShares.Get(ctx, int32(vault))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.ZeroInt(), err
	}

	return total, nil
}

// SetTotalShares persists a vault's total issued shares.
func (k *Keeper) SetTotalShares(ctx context.Context, vault types.VaultType, total math.Int) error {
	return k.TotalShares.Set(ctx, int32(vault), total)
}

// GetUserShares returns an account's share balance in a vault, zero when the
// account holds nothing.
func (k *Keeper) GetUserShares(ctx context.Context, address sdk.AccAddress, vault types.VaultType) (math.Int, error) {
	shares, err := k.UserShares.Get(ctx, collections.Join([]byte(address), int32(vault)))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.ZeroInt(), err
	}

	return shares, nil
}

// SetUserShares writes an account's share balance, removing the entry when
// the balance reaches zero so iteration only sees holders.
func (k *Keeper) SetUserShares(ctx context.Context, address sdk.AccAddress, vault types.VaultType, shares math.Int) error {
	key := collections.Join([]byte(address), int32(vault))
	if shares.IsZero() {
		err := k.UserShares.Remove(ctx, key)
		if err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}
	return k.UserShares.Set(ctx, key, shares)
}

// IterateUserShares walks every share position across both vaults.
func (k *Keeper) IterateUserShares(ctx context.Context, fn func(address sdk.AccAddress, vault types.VaultType, shares math.Int) (bool, error)) error {
	return k.UserShares.Walk(ctx, nil, func(key collections.Pair[[]byte, int32], shares math.Int) (bool, error) {
		return fn(sdk.AccAddress(key.K1()), types.VaultType(key.K2()), shares)
	})
}

// GetVestingRecord returns an account's vesting record. The boolean flag
// indicates whether the record existed in state.
func (k *Keeper) GetVestingRecord(ctx context.Context, address sdk.AccAddress) (types.VestingRecord, bool, error) {
	record, err := k.Vesting.Get(ctx, address)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.VestingRecord{LockedAmount: math.ZeroInt()}, false, nil
		}
		return types.VestingRecord{}, false, err
	}

	return record, true, nil
}

// SetVestingRecord writes the provided vesting record to state.
func (k *Keeper) SetVestingRecord(ctx context.Context, address sdk.AccAddress, record types.VestingRecord) error {
	return k.Vesting.Set(ctx, address, record)
}

// DeleteVestingRecord removes an account's vesting record.
func (k *Keeper) DeleteVestingRecord(ctx context.Context, address sdk.AccAddress) error {
	err := k.Vesting.Remove(ctx, address)
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return err
	}
	return nil
}

// IterateVestingRecords walks every staked pool vesting record.
func (k *Keeper) IterateVestingRecords(ctx context.Context, fn func(address sdk.AccAddress, record types.VestingRecord) (bool, error)) error {
	return k.Vesting.Walk(ctx, nil, func(key []byte, record types.VestingRecord) (bool, error) {
		return fn(sdk.AccAddress(key), record)
	})
}
