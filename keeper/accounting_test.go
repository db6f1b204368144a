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
)

func TestConversionEmptyPool(t *testing.T) {
	k, _, _, ctx, _ := setupTest(t)

	// ASSERT: With nothing deposited the virtual offset alone sets the rate
	// at 1,000 shares per asset.
	shares, err := k.ConvertToShares(ctx, types.VaultFlexible, math.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(7_000), shares)

	assets, err := k.ConvertToAssets(ctx, types.VaultFlexible, math.NewInt(7_000))
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(7), assets)
}

func TestConversionRoundTripNeverProfits(t *testing.T) {
	k, server, bank, ctx, _ := setupTest(t)

	// ARRANGE: An uneven pool so the share price is not a round number.
	bob := utils.TestAccount()
	fund(bank, bob.Address, 3_333)
	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Signer:   bob.Address,
		Receiver: bob.Address,
		Assets:   math.NewInt(3_333),
	})
	require.NoError(t, err)
	fund(bank, types.ModuleAddress.String(), 777)

	// ASSERT: For a range of amounts, converting in and straight back out
	// never yields more than went in.
	for _, amount := range []int64{1, 17, 999, 3_333, 123_456} {
		assets := math.NewInt(amount)
		shares, err := k.ConvertToShares(ctx, types.VaultFlexible, assets)
		require.NoError(t, err)
		back, err := k.ConvertToAssets(ctx, types.VaultFlexible, shares)
		require.NoError(t, err)
		assert.True(t, back.LTE(assets), "round trip of %s returned %s", assets, back)
	}
}

func TestTotalAssetsIncludesAccrual(t *testing.T) {
	k, server, bank, ctx, authority := setupTest(t)

	// ARRANGE: A funded pool and a running schedule.
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

	// ACT: One block later.
	ctx = ctx.WithBlockHeight(ctx.BlockHeight() + 1)

	// ASSERT: The flexible pool is priced with the earned but unswept yield;
	// the staked pool is not.
	flexible, err := k.TotalAssets(ctx, types.VaultFlexible)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1_004), flexible)

	staked, err := k.TotalAssets(ctx, types.VaultStaked)
	require.NoError(t, err)
	assert.True(t, staked.IsZero())
}

func TestVaultIsolation(t *testing.T) {
	k, server, bank, ctx, _ := setupTest(t)

	// ARRANGE: Bob funds both pools.
	bob := utils.TestAccount()
	fund(bank, bob.Address, 3_000)
	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Signer:   bob.Address,
		Receiver: bob.Address,
		Assets:   math.NewInt(1_000),
	})
	require.NoError(t, err)
	_, err = server.StakedDeposit(ctx, &types.MsgStakedDeposit{
		Signer:      bob.Address,
		Receiver:    bob.Address,
		Assets:      math.NewInt(2_000),
		VestingTime: ctx.BlockTime().Add(60 * 24 * time.Hour),
	})
	require.NoError(t, err)

	// ASSERT: Each pool tracks its own totals and positions.
	flexible, err := k.GetTotalShares(ctx, types.VaultFlexible)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1_000_000), flexible)

	staked, err := k.GetTotalShares(ctx, types.VaultStaked)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(2_000_000), staked)

	flexibleShares, err := k.GetUserShares(ctx, bob.Bytes, types.VaultFlexible)
	require.NoError(t, err)
	stakedShares, err := k.GetUserShares(ctx, bob.Bytes, types.VaultStaked)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1_000_000), flexibleShares)
	assert.Equal(t, math.NewInt(2_000_000), stakedShares)
}
