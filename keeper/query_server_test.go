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

	"basevault.dev/keeper"
	"basevault.dev/types"
	"basevault.dev/utils"
)

func TestQueries(t *testing.T) {
	k, server, bank, ctx, authority := setupTest(t)
	queries := keeper.NewQueryServer(k)

	// ARRANGE: Bob holds positions in both pools and the schedule runs.
	bob := utils.TestAccount()
	fund(bank, bob.Address, 3_000)
	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Signer:   bob.Address,
		Receiver: bob.Address,
		Assets:   math.NewInt(1_000),
	})
	require.NoError(t, err)
	deadline := ctx.BlockTime().Add(60 * 24 * time.Hour)
	_, err = server.StakedDeposit(ctx, &types.MsgStakedDeposit{
		Signer:      bob.Address,
		Receiver:    bob.Address,
		Assets:      math.NewInt(2_000),
		VestingTime: deadline,
	})
	require.NoError(t, err)
	fund(bank, types.RewardsAddress.String(), 10_000_000)
	_, err = server.StartRewards(ctx, &types.MsgStartRewards{
		Authority:         authority.Address,
		BlockTimeEstimate: 4,
	})
	require.NoError(t, err)
	ctx = ctx.WithBlockHeight(ctx.BlockHeight() + 1)

	// ACT & ASSERT: Params.
	paramsRes, err := queries.Params(ctx, &types.QueryParams{})
	require.NoError(t, err)
	assert.Equal(t, uint32(3), paramsRes.Params.DecimalsOffset)
	assert.False(t, paramsRes.Paused)

	// ACT & ASSERT: Pool totals include the unswept accrual.
	poolRes, err := queries.Pool(ctx, &types.QueryPool{Vault: types.VaultFlexible})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1_004), poolRes.TotalAssets)
	assert.Equal(t, math.NewInt(1_000_000), poolRes.TotalShares)

	// ACT & ASSERT: Schedule exposes the pending accrual and reserve.
	scheduleRes, err := queries.Schedule(ctx, &types.QuerySchedule{})
	require.NoError(t, err)
	assert.True(t, scheduleRes.Schedule.Started)
	assert.Equal(t, math.NewInt(4), scheduleRes.Accrued)
	assert.Equal(t, math.NewInt(10_000_000), scheduleRes.Reserve)

	// ACT & ASSERT: Positions carry the vesting record for the staked pool.
	positionRes, err := queries.Position(ctx, &types.QueryPosition{
		Address: bob.Address,
		Vault:   types.VaultStaked,
	})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(2_000_000), positionRes.Shares)
	assert.Equal(t, deadline, positionRes.VestingDeadline)
	assert.Equal(t, math.NewInt(2_000), positionRes.LockedAmount)

	// ACT & ASSERT: Previews match the mutating paths without touching
	// state.
	depositRes, err := queries.PreviewDeposit(ctx, &types.QueryPreviewDeposit{Assets: math.NewInt(500)})
	require.NoError(t, err)
	redeemRes, err := queries.PreviewRedeem(ctx, &types.QueryPreviewRedeem{Shares: depositRes.Shares})
	require.NoError(t, err)
	assert.True(t, redeemRes.Assets.LTE(math.NewInt(500)))

	stakedRes, err := queries.PreviewStakedRedeem(ctx, &types.QueryPreviewStakedRedeem{Address: bob.Address})
	require.NoError(t, err)
	assert.True(t, stakedRes.Assets.Add(stakedRes.Fee).LTE(math.NewInt(2_000)))

	// ACT & ASSERT: Invalid addresses are rejected.
	_, err = queries.Position(ctx, &types.QueryPosition{Address: "nope", Vault: types.VaultFlexible})
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}
