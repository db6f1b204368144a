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
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"basevault.dev/types"
)

// StartRewards opens a fresh release horizon over the current rewards account
// balance. Restarting an already running schedule simply re-anchors it, which
// the authority can use to fold newly funded rewards into a new horizon.
func (k *Keeper) StartRewards(ctx context.Context, blockTimeEstimate int64) error {
	if blockTimeEstimate <= 0 {
		return types.ErrInvalidBlockTime.Wrapf("estimate must be positive, got %d", blockTimeEstimate)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()
	height := sdkCtx.BlockHeight()
	endTime := now.Add(types.RewardsHorizon)

	schedule := types.RewardSchedule{
		Started:                true,
		EndTime:                endTime,
		BlockTimeEstimate:      blockTimeEstimate,
		BlocksRemaining:        types.RemainingBlocks(endTime, now, blockTimeEstimate),
		LastDistributionHeight: height,
		LastCalibrationTime:    now,
		LastCalibrationHeight:  height,
	}
	if err := k.SetSchedule(ctx, schedule); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRewardsStarted,
		sdk.NewAttribute(types.AttributeKeyEndTime, endTime.String()),
		sdk.NewAttribute(types.AttributeKeyNewEstimate, strconv.FormatInt(blockTimeEstimate, 10)),
		sdk.NewAttribute(types.AttributeKeyBlocksRemaining, strconv.FormatInt(schedule.BlocksRemaining, 10)),
	))

	return nil
}

// AccruedSinceLast returns the yield earned by the flexible pool since the
// last distribution, at the schedule's per block rate, capped by what the
// rewards account actually holds.
func (k *Keeper) AccruedSinceLast(ctx context.Context) (math.Int, error) {
	schedule, err := k.GetSchedule(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	if !schedule.Started || schedule.BlocksRemaining <= 0 {
		return math.ZeroInt(), nil
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if !sdkCtx.BlockTime().Before(schedule.EndTime) {
		return math.ZeroInt(), nil
	}

	reserve := k.bank.GetBalance(ctx, types.RewardsAddress, k.denom).Amount
	if !reserve.IsPositive() {
		return math.ZeroInt(), nil
	}

	elapsed := sdkCtx.BlockHeight() - schedule.LastDistributionHeight
	if elapsed <= 0 {
		return math.ZeroInt(), nil
	}
	if elapsed > schedule.BlocksRemaining {
		elapsed = schedule.BlocksRemaining
	}

	rate := reserve.QuoRaw(schedule.BlocksRemaining)
	accrued := rate.MulRaw(elapsed)
	if accrued.GT(reserve) {
		accrued = reserve
	}

	return accrued, nil
}

// BeforeRedeem sweeps accrued yield from the rewards account into the
// flexible pool and advances the distribution cursor. Only the pool itself
// may call this. A failed sweep is logged and reported by event but does not
// abort the caller's exit, the undelivered amount stays in the reserve and
// folds into future per block rates. The returned flag tells the caller
// whether a calibration pass is due.
func (k *Keeper) BeforeRedeem(ctx context.Context, caller sdk.AccAddress) (bool, error) {
	if !caller.Equals(types.ModuleAddress) {
		return false, types.ErrNotTheVault.Wrapf("got %s", caller.String())
	}

	schedule, err := k.GetSchedule(ctx)
	if err != nil {
		return false, err
	}
	if !schedule.Started {
		return false, nil
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	height := sdkCtx.BlockHeight()

	accrued, err := k.AccruedSinceLast(ctx)
	if err != nil {
		return false, err
	}

	if accrued.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(k.denom, accrued))
		if err := k.bank.SendCoins(ctx, types.RewardsAddress, types.ModuleAddress, coins); err != nil {
			k.logger.Error("unable to distribute yield", "amount", accrued.String(), "err", err)
			sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
				types.EventTypeYieldFailed,
				sdk.NewAttribute(types.AttributeKeyAmount, accrued.String()),
				sdk.NewAttribute(types.AttributeKeyReason, err.Error()),
			))
			accrued = math.ZeroInt()
		}
	}

	elapsed := height - schedule.LastDistributionHeight
	if elapsed > schedule.BlocksRemaining {
		elapsed = schedule.BlocksRemaining
	}
	if elapsed > 0 {
		schedule.BlocksRemaining -= elapsed
		schedule.LastDistributionHeight = height
		if err := k.SetSchedule(ctx, schedule); err != nil {
			return false, err
		}
	}

	if accrued.IsPositive() {
		stats, err := k.GetStats(ctx)
		if err != nil {
			return false, err
		}
		stats.TotalYieldDistributed, err = stats.TotalYieldDistributed.SafeAdd(accrued)
		if err != nil {
			return false, err
		}
		if err := k.SetStats(ctx, stats); err != nil {
			return false, err
		}

		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeYieldDistributed,
			sdk.NewAttribute(types.AttributeKeyAmount, accrued.String()),
			sdk.NewAttribute(types.AttributeKeyHeight, strconv.FormatInt(height, 10)),
		))
	}

	calibrate := sdkCtx.BlockTime().Sub(schedule.LastCalibrationTime) > types.CalibrationInterval
	return calibrate, nil
}

// AfterRedeem nudges the block time estimate toward observed chain speed.
// One unit per pass: if fewer blocks arrived than the estimate predicted the
// chain is slower and the estimate grows, if more arrived it shrinks. Only
// the pool itself may call this, and only while the horizon is open, at most
// once per calibration interval, and never twice at the same height.
func (k *Keeper) AfterRedeem(ctx context.Context, caller sdk.AccAddress) error {
	if !caller.Equals(types.ModuleAddress) {
		return types.ErrNotTheVault.Wrapf("got %s", caller.String())
	}

	schedule, err := k.GetSchedule(ctx)
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()
	height := sdkCtx.BlockHeight()

	switch {
	case !schedule.Started:
		return nil
	case !now.Before(schedule.EndTime):
		return nil
	case now.Sub(schedule.LastCalibrationTime) <= types.CalibrationInterval:
		return nil
	case height <= schedule.LastCalibrationHeight:
		return nil
	}

	expected := int64(now.Sub(schedule.LastCalibrationTime).Seconds()) / schedule.BlockTimeEstimate
	actual := height - schedule.LastCalibrationHeight

	oldEstimate := schedule.BlockTimeEstimate
	newEstimate, err := types.NextBlockTimeEstimate(oldEstimate, expected, actual)
	if err != nil {
		return err
	}

	schedule.BlockTimeEstimate = newEstimate
	schedule.BlocksRemaining = types.RemainingBlocks(schedule.EndTime, now, newEstimate)
	schedule.LastCalibrationTime = now
	schedule.LastCalibrationHeight = height
	if err := k.SetSchedule(ctx, schedule); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCalibrated,
		sdk.NewAttribute(types.AttributeKeyOldEstimate, strconv.FormatInt(oldEstimate, 10)),
		sdk.NewAttribute(types.AttributeKeyNewEstimate, strconv.FormatInt(newEstimate, 10)),
		sdk.NewAttribute(types.AttributeKeyBlocksExpected, strconv.FormatInt(expected, 10)),
		sdk.NewAttribute(types.AttributeKeyBlocksActual, strconv.FormatInt(actual, 10)),
		sdk.NewAttribute(types.AttributeKeyBlocksRemaining, strconv.FormatInt(schedule.BlocksRemaining, 10)),
	))

	k.logger.Info(fmt.Sprintf("block time estimate recalibrated from %ds to %ds", oldEstimate, newEstimate))

	return nil
}
