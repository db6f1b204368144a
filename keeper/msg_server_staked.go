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
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"basevault.dev/types"
)

// StakedDeposit transfers assets into the staked pool under a vesting
// deadline. Deposits into an existing position accumulate the locked amount;
// the deadline only ever moves forward, and only the position owner can move
// it. A third party topping up someone else's position cannot extend their
// lock.
func (k msgServer) StakedDeposit(ctx context.Context, msg *types.MsgStakedDeposit) (*types.MsgStakedDepositResponse, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.checkPaused(ctx); err != nil {
		return nil, err
	}

	signer := sdk.MustAccAddressFromBech32(msg.Signer)
	receiver := sdk.MustAccAddressFromBech32(msg.Receiver)

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	now := sdk.UnwrapSDKContext(ctx).BlockTime()

	record, found, err := k.GetVestingRecord(ctx, receiver)
	if err != nil {
		return nil, err
	}

	deadline := record.VestingDeadline
	if msg.VestingTime.After(deadline) && (signer.Equals(receiver) || !found) {
		deadline = msg.VestingTime
	}
	if deadline.Before(now.Add(time.Duration(params.MinStakingTime) * time.Second)) {
		return nil, types.ErrInvalidValue.Wrapf(
			"vesting deadline %s is less than %d seconds in the future", deadline, params.MinStakingTime,
		)
	}

	shares, err := k.prepareDeposit(ctx, types.VaultStaked, msg.Assets)
	if err != nil {
		return nil, err
	}

	if err := k.executeDeposit(ctx, types.VaultStaked, signer, receiver, msg.Assets, shares); err != nil {
		return nil, err
	}

	record.VestingDeadline = deadline
	record.LockedAmount, err = record.LockedAmount.SafeAdd(msg.Assets)
	if err != nil {
		return nil, err
	}
	if err := k.SetVestingRecord(ctx, receiver, record); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeStakedDeposit,
		sdk.NewAttribute(types.AttributeKeySigner, msg.Signer),
		sdk.NewAttribute(types.AttributeKeyReceiver, msg.Receiver),
		sdk.NewAttribute(types.AttributeKeyAssets, msg.Assets.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		sdk.NewAttribute(types.AttributeKeyVestingDeadline, deadline.String()),
	))

	return &types.MsgStakedDepositResponse{Shares: shares, VestingDeadline: deadline}, nil
}

// StakedRedeem exits the owner's entire staked position. Before the vesting
// deadline the payout is capped at the locked principal, so accrued fees stay
// in the pool; afterwards the full share value pays out. An exit fee in basis
// points is carved out of the payout either way, and the position's record is
// fully reset.
func (k msgServer) StakedRedeem(ctx context.Context, msg *types.MsgStakedRedeem) (*types.MsgStakedRedeemResponse, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Signer != msg.Owner {
		return nil, types.ErrUnauthorized.Wrap("signer must be the owner of the position")
	}

	owner := sdk.MustAccAddressFromBech32(msg.Owner)
	receiver := sdk.MustAccAddressFromBech32(msg.Receiver)

	shares, err := k.GetUserShares(ctx, owner, types.VaultStaked)
	if err != nil {
		return nil, err
	}
	if !shares.IsPositive() {
		return nil, types.ErrInsufficientBalance.Wrap("no staked position to redeem")
	}

	payout, fee, err := k.previewStakedRedeem(ctx, owner, shares)
	if err != nil {
		return nil, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	// Reset the position before any transfer so a repeated redemption in
	// the same transaction cannot double pay.
	if err := k.SetUserShares(ctx, owner, types.VaultStaked, math.ZeroInt()); err != nil {
		return nil, err
	}
	total, err := k.GetTotalShares(ctx, types.VaultStaked)
	if err != nil {
		return nil, err
	}
	total, err = total.SafeSub(shares)
	if err != nil {
		return nil, err
	}
	if err := k.SetTotalShares(ctx, types.VaultStaked, total); err != nil {
		return nil, err
	}
	if err := k.DeleteVestingRecord(ctx, owner); err != nil {
		return nil, err
	}

	if payout.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(k.denom, payout))
		if err := k.bank.SendCoins(ctx, types.StakedAddress, receiver, coins); err != nil {
			return nil, types.ErrTransferFailed.Wrap(err.Error())
		}
	}
	if fee.IsPositive() && params.FeeRecipient != "" {
		feeRecipient := sdk.MustAccAddressFromBech32(params.FeeRecipient)
		coins := sdk.NewCoins(sdk.NewCoin(k.denom, fee))
		if err := k.bank.SendCoins(ctx, types.StakedAddress, feeRecipient, coins); err != nil {
			return nil, types.ErrTransferFailed.Wrap(err.Error())
		}
	}

	stats, err := k.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	if stats.StakedDepositors > 0 {
		stats.StakedDepositors--
	}
	stats.TotalWithdrawn, err = stats.TotalWithdrawn.SafeAdd(payout)
	if err != nil {
		return nil, err
	}
	stats.TotalFeesCollected, err = stats.TotalFeesCollected.SafeAdd(fee)
	if err != nil {
		return nil, err
	}
	if err := k.SetStats(ctx, stats); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeStakedRedeem,
		sdk.NewAttribute(types.AttributeKeySigner, msg.Signer),
		sdk.NewAttribute(types.AttributeKeyReceiver, msg.Receiver),
		sdk.NewAttribute(types.AttributeKeyAssets, payout.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
	))

	return &types.MsgStakedRedeemResponse{Assets: payout, Fee: fee}, nil
}

// previewStakedRedeem prices a full staked exit without mutating state,
// returning the net payout and the exit fee.
func (k *Keeper) previewStakedRedeem(ctx context.Context, owner sdk.AccAddress, shares math.Int) (payout, fee math.Int, err error) {
	gross, err := k.ConvertToAssets(ctx, types.VaultStaked, shares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	record, found, err := k.GetVestingRecord(ctx, owner)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime()
	if found && now.Before(record.VestingDeadline) && gross.GT(record.LockedAmount) {
		gross = record.LockedAmount
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	// The fee is FeeBps of the net payout, carved out of the gross amount:
	// fee = ceil(gross * bps / (bps + denominator)).
	if params.FeeBps > 0 && gross.IsPositive() {
		fee = ceilDiv(gross.MulRaw(params.FeeBps), math.NewInt(params.FeeBps+types.FeeDenominator))
	} else {
		fee = math.ZeroInt()
	}

	return gross.Sub(fee), fee, nil
}
