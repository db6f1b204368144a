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
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"basevault.dev/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

// NewMsgServer returns an implementation of the module MsgServer interface.
func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// Deposit transfers assets from the signer into the flexible pool and mints
// shares at the current exchange rate to the receiver.
func (k msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
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

	shares, err := k.prepareDeposit(ctx, types.VaultFlexible, msg.Assets)
	if err != nil {
		return nil, err
	}

	if err := k.executeDeposit(ctx, types.VaultFlexible, signer, receiver, msg.Assets, shares); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDeposit,
		sdk.NewAttribute(types.AttributeKeySigner, msg.Signer),
		sdk.NewAttribute(types.AttributeKeyReceiver, msg.Receiver),
		sdk.NewAttribute(types.AttributeKeyAssets, msg.Assets.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
	))

	return &types.MsgDepositResponse{Shares: shares}, nil
}

// Mint deposits exactly enough assets to mint the requested number of
// shares, rounding the asset charge up.
func (k msgServer) Mint(ctx context.Context, msg *types.MsgMint) (*types.MsgMintResponse, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.checkPaused(ctx); err != nil {
		return nil, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	if params.MaxMint.IsPositive() && msg.Shares.GT(params.MaxMint) {
		return nil, types.ErrInvalidValue.Wrapf("requested %s shares exceeds mint cap %s", msg.Shares, params.MaxMint)
	}
	if msg.Shares.LT(math.NewInt(types.MinimumShares)) {
		return nil, types.ErrInvalidValue.Wrapf("cannot mint fewer than %d shares", types.MinimumShares)
	}

	assets, err := k.assetsForMint(ctx, types.VaultFlexible, msg.Shares)
	if err != nil {
		return nil, err
	}
	if assets.LT(params.MinDeposit) {
		return nil, types.ErrInvalidValue.Wrapf("deposit of %s is below the minimum of %s", assets, params.MinDeposit)
	}

	signer := sdk.MustAccAddressFromBech32(msg.Signer)
	receiver := sdk.MustAccAddressFromBech32(msg.Receiver)

	if err := k.executeDeposit(ctx, types.VaultFlexible, signer, receiver, assets, msg.Shares); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeMint,
		sdk.NewAttribute(types.AttributeKeySigner, msg.Signer),
		sdk.NewAttribute(types.AttributeKeyReceiver, msg.Receiver),
		sdk.NewAttribute(types.AttributeKeyAssets, assets.String()),
		sdk.NewAttribute(types.AttributeKeyShares, msg.Shares.String()),
	))

	return &types.MsgMintResponse{Assets: assets}, nil
}

// Withdraw pays out an exact asset amount from the flexible pool, burning
// the owner's shares rounded up. The signer must be the owner.
func (k msgServer) Withdraw(ctx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Assets.IsZero() {
		return nil, types.ErrInvalidValue.Wrap("cannot withdraw zero assets")
	}
	if msg.Signer != msg.Owner {
		return nil, types.ErrUnauthorized.Wrap("signer must be the owner of the shares")
	}

	owner := sdk.MustAccAddressFromBech32(msg.Owner)
	receiver := sdk.MustAccAddressFromBech32(msg.Receiver)

	shares, err := k.sharesForWithdraw(ctx, types.VaultFlexible, msg.Assets)
	if err != nil {
		return nil, err
	}

	if err := k.executeWithdrawal(ctx, owner, receiver, msg.Assets, shares); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeWithdraw,
		sdk.NewAttribute(types.AttributeKeySigner, msg.Signer),
		sdk.NewAttribute(types.AttributeKeyOwner, msg.Owner),
		sdk.NewAttribute(types.AttributeKeyReceiver, msg.Receiver),
		sdk.NewAttribute(types.AttributeKeyAssets, msg.Assets.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
	))

	return &types.MsgWithdrawResponse{Shares: shares}, nil
}

// Redeem burns an exact number of the owner's shares and pays out their
// current asset value, rounded down. The signer must be the owner.
func (k msgServer) Redeem(ctx context.Context, msg *types.MsgRedeem) (*types.MsgRedeemResponse, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Shares.IsZero() {
		return nil, types.ErrInvalidValue.Wrap("cannot redeem zero shares")
	}
	if msg.Signer != msg.Owner {
		return nil, types.ErrUnauthorized.Wrap("signer must be the owner of the shares")
	}

	owner := sdk.MustAccAddressFromBech32(msg.Owner)
	receiver := sdk.MustAccAddressFromBech32(msg.Receiver)

	assets, err := k.ConvertToAssets(ctx, types.VaultFlexible, msg.Shares)
	if err != nil {
		return nil, err
	}

	if err := k.executeWithdrawal(ctx, owner, receiver, assets, msg.Shares); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeWithdraw,
		sdk.NewAttribute(types.AttributeKeySigner, msg.Signer),
		sdk.NewAttribute(types.AttributeKeyOwner, msg.Owner),
		sdk.NewAttribute(types.AttributeKeyReceiver, msg.Receiver),
		sdk.NewAttribute(types.AttributeKeyAssets, assets.String()),
		sdk.NewAttribute(types.AttributeKeyShares, msg.Shares.String()),
	))

	return &types.MsgRedeemResponse{Assets: assets}, nil
}

// StartRewards opens a release horizon over the rewards account balance.
// Restricted to the module authority.
func (k msgServer) StartRewards(ctx context.Context, msg *types.MsgStartRewards) (*types.MsgStartRewardsResponse, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Authority != k.authority {
		return nil, types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, msg.Authority)
	}

	if err := k.Keeper.StartRewards(ctx, msg.BlockTimeEstimate); err != nil {
		return nil, err
	}

	schedule, err := k.GetSchedule(ctx)
	if err != nil {
		return nil, err
	}

	return &types.MsgStartRewardsResponse{
		EndTime:         schedule.EndTime,
		BlocksRemaining: schedule.BlocksRemaining,
	}, nil
}

// UpdateParams replaces the module parameters. Restricted to the module
// authority. The decimals offset is immutable after genesis.
func (k msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Authority != k.authority {
		return nil, types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, msg.Authority)
	}

	current, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	if msg.Params.DecimalsOffset != current.DecimalsOffset {
		return nil, types.ErrInvalidValue.Wrap("decimals offset cannot be changed")
	}

	if err := k.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeParamsUpdated,
		sdk.NewAttribute(types.AttributeKeySigner, msg.Authority),
	))

	return &types.MsgUpdateParamsResponse{}, nil
}

// SetPaused flips the pause switch gating mutating entries. Restricted to
// the module authority.
func (k msgServer) SetPaused(ctx context.Context, msg *types.MsgSetPaused) (*types.MsgSetPausedResponse, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Authority != k.authority {
		return nil, types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, msg.Authority)
	}

	if err := k.Keeper.SetPaused(ctx, msg.Paused); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePaused,
		sdk.NewAttribute(types.AttributeKeySigner, msg.Authority),
		sdk.NewAttribute(types.AttributeKeyPaused, strconv.FormatBool(msg.Paused)),
	))

	return &types.MsgSetPausedResponse{}, nil
}

// checkPaused rejects entries while the pause switch is on.
func (k msgServer) checkPaused(ctx context.Context) error {
	if k.GetPaused(ctx) {
		return types.ErrPaused
	}
	return nil
}

// prepareDeposit validates the deposit floors and prices the shares, without
// touching state.
func (k msgServer) prepareDeposit(ctx context.Context, vault types.VaultType, assets math.Int) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	if assets.LT(params.MinDeposit) {
		return math.ZeroInt(), types.ErrInvalidValue.Wrapf("deposit of %s is below the minimum of %s", assets, params.MinDeposit)
	}

	shares, err := k.ConvertToShares(ctx, vault, assets)
	if err != nil {
		return math.ZeroInt(), err
	}
	if shares.LT(math.NewInt(types.MinimumShares)) {
		return math.ZeroInt(), types.ErrInvalidValue.Wrapf("deposit would mint %s shares, fewer than the minimum of %d", shares, types.MinimumShares)
	}

	return shares, nil
}

// executeDeposit moves assets into the vault account and credits shares to
// the receiver. The transfer happens first so a bank failure leaves the
// ledger untouched.
func (k msgServer) executeDeposit(ctx context.Context, vault types.VaultType, signer, receiver sdk.AccAddress, assets, shares math.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(k.denom, assets))
	balance := k.bank.GetBalance(ctx, signer, k.denom)
	if balance.Amount.LT(assets) {
		return types.ErrInsufficientBalance.Wrapf("have %s, need %s", balance.Amount, assets)
	}

	existing, err := k.GetUserShares(ctx, receiver, vault)
	if err != nil {
		return err
	}

	if err := k.bank.SendCoins(ctx, signer, vault.Account(), coins); err != nil {
		return types.ErrTransferFailed.Wrap(err.Error())
	}

	newBalance, err := existing.SafeAdd(shares)
	if err != nil {
		return err
	}
	if err := k.SetUserShares(ctx, receiver, vault, newBalance); err != nil {
		return err
	}

	total, err := k.GetTotalShares(ctx, vault)
	if err != nil {
		return err
	}
	total, err = total.SafeAdd(shares)
	if err != nil {
		return err
	}
	if err := k.SetTotalShares(ctx, vault, total); err != nil {
		return err
	}

	stats, err := k.GetStats(ctx)
	if err != nil {
		return err
	}
	if existing.IsZero() {
		if vault == types.VaultStaked {
			stats.StakedDepositors++
		} else {
			stats.FlexibleDepositors++
		}
	}
	stats.TotalDeposited, err = stats.TotalDeposited.SafeAdd(assets)
	if err != nil {
		return err
	}

	return k.SetStats(ctx, stats)
}

// executeWithdrawal runs a flexible pool exit: sweep due yield into the pool,
// debit the owner's shares and pay the receiver, then calibrate the schedule
// when a pass is due. All validation must already have happened.
func (k msgServer) executeWithdrawal(ctx context.Context, owner, receiver sdk.AccAddress, assets, shares math.Int) error {
	balance, err := k.GetUserShares(ctx, owner, types.VaultFlexible)
	if err != nil {
		return err
	}
	if balance.LT(shares) {
		return types.ErrInsufficientBalance.Wrapf("have %s shares, need %s", balance, shares)
	}

	calibrate, err := k.BeforeRedeem(ctx, types.ModuleAddress)
	if err != nil {
		return err
	}

	if err := k.SetUserShares(ctx, owner, types.VaultFlexible, balance.Sub(shares)); err != nil {
		return err
	}

	total, err := k.GetTotalShares(ctx, types.VaultFlexible)
	if err != nil {
		return err
	}
	total, err = total.SafeSub(shares)
	if err != nil {
		return err
	}
	if err := k.SetTotalShares(ctx, types.VaultFlexible, total); err != nil {
		return err
	}

	if assets.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(k.denom, assets))
		if err := k.bank.SendCoins(ctx, types.ModuleAddress, receiver, coins); err != nil {
			return types.ErrTransferFailed.Wrap(err.Error())
		}
	}

	stats, err := k.GetStats(ctx)
	if err != nil {
		return err
	}
	if balance.Equal(shares) && stats.FlexibleDepositors > 0 {
		stats.FlexibleDepositors--
	}
	stats.TotalWithdrawn, err = stats.TotalWithdrawn.SafeAdd(assets)
	if err != nil {
		return err
	}
	if err := k.SetStats(ctx, stats); err != nil {
		return err
	}

	if calibrate {
		if err := k.AfterRedeem(ctx, types.ModuleAddress); err != nil {
			return err
		}
	}

	return nil
}
