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

package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basevault.dev/types"
	"basevault.dev/utils"
	"basevault.dev/utils/mocks"
)

func TestStartRewards(t *testing.T) {
	k, server, bank, ctx, authority := setupTest(t)

	// ARRANGE: Fund the reward reserve.
	fund(bank, types.RewardsAddress.String(), 10_000_000)

	bob := utils.TestAccount()

	// ACT: Only the authority can start the schedule.
	_, err := server.StartRewards(ctx, &types.MsgStartRewards{
		Authority:         bob.Address,
		BlockTimeEstimate: 4,
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	resp, err := server.StartRewards(ctx, &types.MsgStartRewards{
		Authority:         authority.Address,
		BlockTimeEstimate: 4,
	})

	// ASSERT: A 93 day horizon at 4 second blocks.
	require.NoError(t, err)
	assert.Equal(t, int64(93*86400/4+1), resp.BlocksRemaining)
	assert.Equal(t, ctx.BlockTime().Add(types.RewardsHorizon), resp.EndTime)

	schedule, err := k.GetSchedule(ctx)
	require.NoError(t, err)
	assert.True(t, schedule.Started)
	assert.Equal(t, int64(4), schedule.BlockTimeEstimate)
	assert.Equal(t, ctx.BlockHeight(), schedule.LastDistributionHeight)
}

func TestStartRewardsInvalidEstimate(t *testing.T) {
	_, server, _, ctx, authority := setupTest(t)

	_, err := server.StartRewards(ctx, &types.MsgStartRewards{
		Authority:         authority.Address,
		BlockTimeEstimate: 0,
	})
	require.ErrorIs(t, err, types.ErrInvalidBlockTime)
}

func TestAccruedSinceLast(t *testing.T) {
	k, server, bank, ctx, authority := setupTest(t)

	// ARRANGE: A reserve of 10,000,000 over 2,008,801 blocks releases 4 per
	// block.
	fund(bank, types.RewardsAddress.String(), 10_000_000)
	_, err := server.StartRewards(ctx, &types.MsgStartRewards{
		Authority:         authority.Address,
		BlockTimeEstimate: 4,
	})
	require.NoError(t, err)

	// ASSERT: Nothing accrues at the starting height.
	accrued, err := k.AccruedSinceLast(ctx)
	require.NoError(t, err)
	assert.True(t, accrued.IsZero())

	// ACT: One block passes.
	ctx = ctx.WithBlockHeight(ctx.BlockHeight() + 1)

	// ASSERT: floor(10,000,000 / 2,008,801) = 4.
	accrued, err = k.AccruedSinceLast(ctx)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(4), accrued)

	// ACT: Ten more blocks.
	ctx = ctx.WithBlockHeight(ctx.BlockHeight() + 10)

	// ASSERT: Accrual is linear in elapsed blocks.
	accrued, err = k.AccruedSinceLast(ctx)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(44), accrued)

	// ASSERT: Nothing accrues once the horizon has elapsed.
	expired := ctx.WithBlockTime(ctx.BlockTime().Add(types.RewardsHorizon))
	accrued, err = k.AccruedSinceLast(expired)
	require.NoError(t, err)
	assert.True(t, accrued.IsZero())
}

func TestAccruedBeforeStart(t *testing.T) {
	k, _, bank, ctx, _ := setupTest(t)

	// ARRANGE: A funded reserve without a started schedule.
	fund(bank, types.RewardsAddress.String(), 10_000_000)
	ctx = ctx.WithBlockHeight(100)

	// ASSERT: Nothing accrues.
	accrued, err := k.AccruedSinceLast(ctx)
	require.NoError(t, err)
	assert.True(t, accrued.IsZero())
}

func TestYieldDistributedOnWithdrawal(t *testing.T) {
	k, server, bank, ctx, authority := setupTest(t)

	// ARRANGE: Bob deposits 1,000, the reserve is funded and started.
	bob := utils.TestAccount()
	fund(bank, bob.Address, 1_000)
	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Signer:   bob.Address,
		Receiver: bob.Address,
		Assets:   math.NewInt(1_000),
	})
	require.NoError(t, err)

	fund(bank, types.RewardsAddress.String(), 10_000_000)
	_, err = server.StartRewards(ctx, &types.MsgStartRewards{
		Authority:         authority.Address,
		BlockTimeEstimate: 4,
	})
	require.NoError(t, err)

	// ACT: One block later Bob redeems his whole position.
	ctx = ctx.WithBlockHeight(ctx.BlockHeight() + 1)
	resp, err := server.Redeem(ctx, &types.MsgRedeem{
		Signer:   bob.Address,
		Receiver: bob.Address,
		Owner:    bob.Address,
		Shares:   math.NewInt(1_000_000),
	})

	// ASSERT: The 4 units of accrued yield were swept into the pool before
	// pricing, and the payout reflects them minus rounding.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1_003), resp.Assets)
	assert.Equal(t, math.NewInt(1_003), bank.Balances[bob.Address].AmountOf(mocks.Denom))
	assert.Equal(t, math.NewInt(10_000_000-4), bank.Balances[types.RewardsAddress.String()].AmountOf(mocks.Denom))

	stats, err := k.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(4), stats.TotalYieldDistributed)

	schedule, err := k.GetSchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, ctx.BlockHeight(), schedule.LastDistributionHeight)
	assert.Equal(t, int64(93*86400/4), schedule.BlocksRemaining)
}

func TestYieldSoftFailure(t *testing.T) {
	k, server, bank, ctx, authority := setupTest(t)

	// ARRANGE: Same as above, but the reserve account cannot send.
	bob := utils.TestAccount()
	fund(bank, bob.Address, 1_000)
	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Signer:   bob.Address,
		Receiver: bob.Address,
		Assets:   math.NewInt(1_000),
	})
	require.NoError(t, err)

	fund(bank, types.RewardsAddress.String(), 10_000_000)
	_, err = server.StartRewards(ctx, &types.MsgStartRewards{
		Authority:         authority.Address,
		BlockTimeEstimate: 4,
	})
	require.NoError(t, err)
	bank.Failing[types.RewardsAddress.String()] = true

	// ACT: Bob withdraws despite the broken reserve.
	ctx = ctx.WithBlockHeight(ctx.BlockHeight() + 1)
	_, err = server.Withdraw(ctx, &types.MsgWithdraw{
		Signer:   bob.Address,
		Receiver: bob.Address,
		Owner:    bob.Address,
		Assets:   math.NewInt(500),
	})

	// ASSERT: The withdrawal succeeds, the reserve is untouched and nothing
	// was recorded as distributed.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(500), bank.Balances[bob.Address].AmountOf(mocks.Denom))
	assert.Equal(t, math.NewInt(10_000_000), bank.Balances[types.RewardsAddress.String()].AmountOf(mocks.Denom))

	stats, err := k.GetStats(ctx)
	require.NoError(t, err)
	assert.True(t, stats.TotalYieldDistributed.IsZero())
}

func TestBeforeRedeemAuthorization(t *testing.T) {
	k, _, _, ctx, _ := setupTest(t)

	bob := utils.TestAccount()

	// ACT & ASSERT: Only the pool account may drive the hooks.
	_, err := k.BeforeRedeem(ctx, bob.Bytes)
	require.ErrorIs(t, err, types.ErrNotTheVault)
	err = k.AfterRedeem(ctx, bob.Bytes)
	require.ErrorIs(t, err, types.ErrNotTheVault)
}

func TestCalibrationSlowsEstimate(t *testing.T) {
	k, server, bank, ctx, authority := setupTest(t)

	// ARRANGE: Started schedule at 4 second blocks.
	fund(bank, types.RewardsAddress.String(), 10_000_000)
	_, err := server.StartRewards(ctx, &types.MsgStartRewards{
		Authority:         authority.Address,
		BlockTimeEstimate: 4,
	})
	require.NoError(t, err)
	started, err := k.GetSchedule(ctx)
	require.NoError(t, err)

	// ACT: 25 hours later only 20,000 blocks arrived where 22,500 were
	// expected, so blocks are slower than assumed.
	ctx = ctx.
		WithBlockTime(ctx.BlockTime().Add(25 * time.Hour)).
		WithBlockHeight(ctx.BlockHeight() + 20_000)
	require.NoError(t, k.AfterRedeem(ctx, types.ModuleAddress))

	// ASSERT: The estimate grows by exactly one second and the remaining
	// block count is recomputed against it.
	schedule, err := k.GetSchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), schedule.BlockTimeEstimate)
	assert.Equal(t, ctx.BlockTime(), schedule.LastCalibrationTime)
	assert.Equal(t, ctx.BlockHeight(), schedule.LastCalibrationHeight)
	remaining := started.EndTime.Unix() - ctx.BlockTime().Unix()
	assert.Equal(t, remaining/5+1, schedule.BlocksRemaining)
}

func TestCalibrationSpeedsUpEstimate(t *testing.T) {
	k, server, bank, ctx, authority := setupTest(t)

	fund(bank, types.RewardsAddress.String(), 10_000_000)
	_, err := server.StartRewards(ctx, &types.MsgStartRewards{
		Authority:         authority.Address,
		BlockTimeEstimate: 4,
	})
	require.NoError(t, err)

	// ACT: 25 hours later 25,000 blocks arrived where 22,500 were expected,
	// so blocks are faster than assumed.
	ctx = ctx.
		WithBlockTime(ctx.BlockTime().Add(25 * time.Hour)).
		WithBlockHeight(ctx.BlockHeight() + 25_000)
	require.NoError(t, k.AfterRedeem(ctx, types.ModuleAddress))

	// ASSERT
	schedule, err := k.GetSchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), schedule.BlockTimeEstimate)
}

func TestCalibrationGates(t *testing.T) {
	k, server, bank, ctx, authority := setupTest(t)

	fund(bank, types.RewardsAddress.String(), 10_000_000)
	_, err := server.StartRewards(ctx, &types.MsgStartRewards{
		Authority:         authority.Address,
		BlockTimeEstimate: 4,
	})
	require.NoError(t, err)

	// ACT: Less than a day since the last calibration.
	early := ctx.
		WithBlockTime(ctx.BlockTime().Add(12 * time.Hour)).
		WithBlockHeight(ctx.BlockHeight() + 10_000)
	require.NoError(t, k.AfterRedeem(early, types.ModuleAddress))

	// ASSERT: No adjustment.
	schedule, err := k.GetSchedule(early)
	require.NoError(t, err)
	assert.Equal(t, int64(4), schedule.BlockTimeEstimate)

	// ACT: Time has passed but the height has not advanced.
	stalled := ctx.WithBlockTime(ctx.BlockTime().Add(25 * time.Hour))
	require.NoError(t, k.AfterRedeem(stalled, types.ModuleAddress))
	schedule, err = k.GetSchedule(stalled)
	require.NoError(t, err)
	assert.Equal(t, int64(4), schedule.BlockTimeEstimate)

	// ACT: The horizon has already closed.
	closed := ctx.
		WithBlockTime(ctx.BlockTime().Add(types.RewardsHorizon + time.Hour)).
		WithBlockHeight(ctx.BlockHeight() + 2_000_000)
	require.NoError(t, k.AfterRedeem(closed, types.ModuleAddress))
	schedule, err = k.GetSchedule(closed)
	require.NoError(t, err)
	assert.Equal(t, int64(4), schedule.BlockTimeEstimate)
}

func TestCalibrationThroughWithdrawal(t *testing.T) {
	k, server, bank, ctx, authority := setupTest(t)

	// ARRANGE: Bob deposits, the schedule runs for over a day.
	bob := utils.TestAccount()
	fund(bank, bob.Address, 1_000)
	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Signer:   bob.Address,
		Receiver: bob.Address,
		Assets:   math.NewInt(1_000),
	})
	require.NoError(t, err)

	fund(bank, types.RewardsAddress.String(), 10_000_000)
	_, err = server.StartRewards(ctx, &types.MsgStartRewards{
		Authority:         authority.Address,
		BlockTimeEstimate: 4,
	})
	require.NoError(t, err)

	// ACT: A withdrawal 25 hours later, with fewer blocks than expected.
	ctx = ctx.
		WithBlockTime(ctx.BlockTime().Add(25 * time.Hour)).
		WithBlockHeight(ctx.BlockHeight() + 20_000)
	_, err = server.Withdraw(ctx, &types.MsgWithdraw{
		Signer:   bob.Address,
		Receiver: bob.Address,
		Owner:    bob.Address,
		Assets:   math.NewInt(100),
	})

	// ASSERT: The exit itself recalibrated the schedule.
	require.NoError(t, err)
	schedule, err := k.GetSchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), schedule.BlockTimeEstimate)
	assert.Equal(t, ctx.BlockHeight(), schedule.LastCalibrationHeight)
}
